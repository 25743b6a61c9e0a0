// Package render turns a quotation or tax invoice into a self-contained
// printable HTML document. The same output string feeds the preview pane,
// the browser print window and the downloaded file, so rendering must be
// deterministic: everything comes from the document and the static company
// and bank profiles, never from the wall clock.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"invoice_manager/internal/models"
)

type Renderer struct {
	logoPath     string
	invoiceTpl   *template.Template
	quotationTpl *template.Template
}

type documentData struct {
	Doc      *models.Quotation
	Company  models.CompanyProfile
	Bank     models.BankDetails
	LogoPath string
}

func New(logoPath string) *Renderer {
	funcs := template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"inc":   func(i int) int { return i + 1 },
		"orNA": func(s string) string {
			if s == "" {
				return "N/A"
			}
			return s
		},
	}
	return &Renderer{
		logoPath:     logoPath,
		invoiceTpl:   template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceTemplate)),
		quotationTpl: template.Must(template.New("quotation").Funcs(funcs).Parse(quotationTemplate)),
	}
}

// Invoice renders the tax-invoice document.
func (r *Renderer) Invoice(doc *models.Quotation, company models.CompanyProfile, bank models.BankDetails) (string, error) {
	return r.execute(r.invoiceTpl, doc, company, bank)
}

// Quotation renders the plain quotation document.
func (r *Renderer) Quotation(doc *models.Quotation, company models.CompanyProfile, bank models.BankDetails) (string, error) {
	return r.execute(r.quotationTpl, doc, company, bank)
}

// Document picks the template from the record's invoice flag.
func (r *Renderer) Document(doc *models.Quotation, company models.CompanyProfile, bank models.BankDetails) (string, error) {
	if doc.IsInvoice {
		return r.Invoice(doc, company, bank)
	}
	return r.Quotation(doc, company, bank)
}

func (r *Renderer) execute(tpl *template.Template, doc *models.Quotation, company models.CompanyProfile, bank models.BankDetails) (string, error) {
	var buf bytes.Buffer
	data := documentData{Doc: doc, Company: company, Bank: bank, LogoPath: r.logoPath}
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return buf.String(), nil
}

// Filename builds the download name from the business number, falling back
// to the store-assigned id.
func Filename(doc *models.Quotation) string {
	if doc.IsInvoice {
		return fmt.Sprintf("Invoice_%s.html", doc.BusinessNumber())
	}
	return fmt.Sprintf("Quotation_%s.html", doc.BusinessNumber())
}
