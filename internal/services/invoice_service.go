package services

import (
	"errors"
	"fmt"
	"invoice_manager/internal/models"
	"invoice_manager/internal/repository"
	"invoice_manager/internal/tax"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type InvoiceService interface {
	// BuildInvoice locates a quotation by its business number and returns the
	// invoice-shaped preview without persisting anything.
	BuildInvoice(number, gstin string) (*models.Quotation, error)
	// PromoteQuotation converts the stored record into a tax invoice in place.
	PromoteQuotation(id uint, incoming *models.Quotation) (*models.Quotation, error)
}

type invoiceService struct {
	quotationRepo repository.QuotationRepository
}

func NewInvoiceService(quotationRepo repository.QuotationRepository) InvoiceService {
	return &invoiceService{quotationRepo: quotationRepo}
}

// resolver is one step of the lookup chain. A nil result with a nil error
// means the step missed and the next one should run.
type resolver func(number string) (*models.Quotation, error)

// resolvers returns the ordered lookup strategies: exact estimate number,
// exact id, number lookup, then a search filtered by the same two exact
// predicates. The first hit short-circuits.
func (s *invoiceService) resolvers() []resolver {
	return []resolver{
		s.byEstimateNo,
		s.byID,
		s.byNumber,
		s.bySearch,
	}
}

func (s *invoiceService) resolve(number string) (*models.Quotation, error) {
	for _, step := range s.resolvers() {
		quotation, err := step(number)
		if err != nil {
			return nil, err
		}
		if quotation != nil {
			return quotation, nil
		}
	}
	return nil, &models.NotFoundError{Number: number}
}

func (s *invoiceService) byEstimateNo(number string) (*models.Quotation, error) {
	quotations, _, err := s.quotationRepo.List(1, 100, "")
	if err != nil {
		return nil, err
	}
	for i := range quotations {
		if quotations[i].CustomerInfo.EstimateNo == number {
			return &quotations[i], nil
		}
	}
	return nil, nil
}

func (s *invoiceService) byID(number string) (*models.Quotation, error) {
	id, err := strconv.ParseUint(number, 10, 64)
	if err != nil {
		return nil, nil
	}
	quotation, err := s.quotationRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return quotation, nil
}

func (s *invoiceService) byNumber(number string) (*models.Quotation, error) {
	quotation, err := s.quotationRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return quotation, nil
}

func (s *invoiceService) bySearch(number string) (*models.Quotation, error) {
	quotations, _, err := s.quotationRepo.List(1, 100, number)
	if err != nil {
		return nil, err
	}
	for i := range quotations {
		if quotations[i].CustomerInfo.EstimateNo == number ||
			strconv.FormatUint(uint64(quotations[i].ID), 10) == number {
			return &quotations[i], nil
		}
	}
	return nil, nil
}

func (s *invoiceService) BuildInvoice(number, gstin string) (*models.Quotation, error) {
	quotation, err := s.resolve(number)
	if err != nil {
		return nil, err
	}
	return assembleInvoice(quotation, gstin)
}

// assembleInvoice fills placeholder defaults and recomputes the tax split
// from the subtotal. Stored CGST/SGST/grand-total values are never trusted.
func assembleInvoice(quotation *models.Quotation, gstin string) (*models.Quotation, error) {
	if len(quotation.Items) == 0 {
		return nil, models.ErrIncompleteDocument
	}

	doc := *quotation
	doc.Items = append([]models.LineItem(nil), quotation.Items...)

	info := &doc.CustomerInfo
	if info.BillTo == "" {
		info.BillTo = "N/A"
	}
	if info.ContactNo == "" {
		info.ContactNo = "N/A"
	}
	if info.StateName == "" {
		info.StateName = "N/A"
	}
	if info.EstimateNo == "" {
		info.EstimateNo = fmt.Sprintf("QTN-%d", doc.ID)
	}
	if info.EstimateDate == "" {
		info.EstimateDate = "N/A"
	}
	if gstin != "" {
		info.GSTIN = gstin
	}

	breakdown := tax.Compute(doc.Totals.TotalAmount)
	doc.Totals.CGST = breakdown.CGST
	doc.Totals.SGST = breakdown.SGST
	doc.Totals.GrandTotal = breakdown.GrandTotal
	return &doc, nil
}

func (s *invoiceService) PromoteQuotation(id uint, incoming *models.Quotation) (*models.Quotation, error) {
	existing, err := s.quotationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Number: strconv.FormatUint(uint64(id), 10)}
		}
		return nil, err
	}

	if existing.IsInvoice {
		return nil, models.ErrAlreadyInvoice
	}
	if len(existing.Items) == 0 {
		return nil, models.ErrIncompleteDocument
	}
	if incoming.CustomerInfo.GSTIN == "" {
		return nil, &models.ValidationError{Field: "gstin", Message: "GSTIN is required to generate a tax invoice"}
	}

	existing.CustomerInfo = incoming.CustomerInfo
	if len(incoming.Items) > 0 {
		existing.Items = incoming.Items
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	existing.RecomputeAmounts()
	breakdown := tax.Compute(existing.Totals.TotalAmount)
	existing.Totals.CGST = breakdown.CGST
	existing.Totals.SGST = breakdown.SGST
	existing.Totals.GrandTotal = breakdown.GrandTotal

	existing.IsInvoice = true
	if incoming.InvoiceDate != "" {
		existing.InvoiceDate = incoming.InvoiceDate
	} else {
		existing.InvoiceDate = time.Now().Format("2006-01-02")
	}
	if existing.CustomerInfo.EstimateNo != "" {
		existing.InvoiceNumber = existing.CustomerInfo.EstimateNo
	} else {
		existing.InvoiceNumber = fmt.Sprintf("INV-%d", existing.ID)
	}

	if err := s.quotationRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
