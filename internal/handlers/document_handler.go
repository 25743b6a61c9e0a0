package handlers

import (
	"fmt"
	"invoice_manager/internal/render"
	"invoice_manager/internal/services"
	"invoice_manager/pkg/whatsapp"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	quotationService services.QuotationService
	companyService   services.CompanyService
	renderer         *render.Renderer
}

func NewDocumentHandler(quotationService services.QuotationService, companyService services.CompanyService, renderer *render.Renderer) *DocumentHandler {
	return &DocumentHandler{
		quotationService: quotationService,
		companyService:   companyService,
		renderer:         renderer,
	}
}

// Document serves the printable HTML. The same bytes back the preview pane,
// the print window and the download; only the delivery headers differ.
func (h *DocumentHandler) Document(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quotation id"})
		return
	}

	quotation, err := h.quotationService.GetQuotationByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := h.renderer.Document(quotation, h.companyService.GetCompanyInfo(), h.companyService.GetBankDetails())
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("download") != "" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.Filename(quotation)))
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Share returns the wa.me payload for the document.
func (h *DocumentHandler) Share(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quotation id"})
		return
	}

	quotation, err := h.quotationService.GetQuotationByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	company := h.companyService.GetCompanyInfo()
	var message string
	if quotation.IsInvoice {
		message = whatsapp.InvoiceMessage(
			quotation.CustomerInfo.BillTo,
			quotation.BusinessNumber(),
			quotation.Totals.GrandTotal,
			company.Name,
		)
	} else {
		message = whatsapp.QuotationMessage(
			quotation.BusinessNumber(),
			quotation.CustomerInfo.BillTo,
			quotation.Totals.TotalAmount,
			quotation.CustomerInfo.EstimateDate,
		)
	}

	link, err := whatsapp.ShareLink(quotation.CustomerInfo.ContactNo, message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phone":   whatsapp.NormalizePhone(quotation.CustomerInfo.ContactNo),
		"message": message,
		"url":     link,
	})
}
