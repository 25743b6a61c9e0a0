package services

import (
	"errors"
	"invoice_manager/internal/models"
	"invoice_manager/internal/redis"
	"invoice_manager/internal/repository"
	"invoice_manager/internal/tax"

	"gorm.io/gorm"
)

const statsCacheKey = "quotations:stats"

type QuotationService interface {
	CreateQuotation(quotation *models.Quotation) error
	GetQuotationByID(id uint) (*models.Quotation, error)
	GetQuotationByNumber(number string) (*models.Quotation, error)
	UpdateQuotation(id uint, incoming *models.Quotation) (*models.Quotation, error)
	DeleteQuotation(id uint) error
	ListQuotations(page, perPage int, search string) (*models.QuotationPage, error)
}

type quotationService struct {
	quotationRepo repository.QuotationRepository
	cache         *redis.Client
	cacheTTL      int
}

func NewQuotationService(quotationRepo repository.QuotationRepository, cache *redis.Client, cacheTTL int) QuotationService {
	return &quotationService{quotationRepo: quotationRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *quotationService) CreateQuotation(quotation *models.Quotation) error {
	if err := quotation.Validate(); err != nil {
		return err
	}

	// A new record is always a plain quotation; promotion happens through an
	// update on the assigned id.
	quotation.ID = 0
	quotation.IsInvoice = false
	quotation.InvoiceDate = ""
	quotation.InvoiceNumber = ""
	quotation.Totals = models.Totals{}
	quotation.RecomputeAmounts()

	if err := s.quotationRepo.Create(quotation); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

func (s *quotationService) GetQuotationByID(id uint) (*models.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{}
		}
		return nil, err
	}
	return quotation, nil
}

func (s *quotationService) GetQuotationByNumber(number string) (*models.Quotation, error) {
	quotation, err := s.quotationRepo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Number: number}
		}
		return nil, err
	}
	return quotation, nil
}

// UpdateQuotation applies an edit to an existing record. Invoice fields are
// carried over from the stored record: a plain edit can never demote an
// invoice or change its identity, and promotion goes through InvoiceService.
func (s *quotationService) UpdateQuotation(id uint, incoming *models.Quotation) (*models.Quotation, error) {
	existing, err := s.GetQuotationByID(id)
	if err != nil {
		return nil, err
	}

	if err := incoming.Validate(); err != nil {
		return nil, err
	}

	existing.CustomerInfo = incoming.CustomerInfo
	existing.Items = incoming.Items
	existing.RecomputeAmounts()

	if existing.IsInvoice {
		if existing.CustomerInfo.GSTIN == "" {
			return nil, &models.ValidationError{Field: "gstin", Message: "GSTIN is required on an invoice"}
		}
		breakdown := tax.Compute(existing.Totals.TotalAmount)
		existing.Totals.CGST = breakdown.CGST
		existing.Totals.SGST = breakdown.SGST
		existing.Totals.GrandTotal = breakdown.GrandTotal
	} else {
		existing.Totals.CGST = 0
		existing.Totals.SGST = 0
		existing.Totals.GrandTotal = 0
	}

	if err := s.quotationRepo.Update(existing); err != nil {
		return nil, err
	}
	s.invalidateStats()
	return existing, nil
}

func (s *quotationService) DeleteQuotation(id uint) error {
	if _, err := s.GetQuotationByID(id); err != nil {
		return err
	}
	if err := s.quotationRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

func (s *quotationService) ListQuotations(page, perPage int, search string) (*models.QuotationPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	quotations, total, err := s.quotationRepo.List(page, perPage, search)
	if err != nil {
		return nil, err
	}

	stats, err := s.getStats()
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}

	return &models.QuotationPage{
		Quotations: quotations,
		Pagination: models.Pagination{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Pages:   pages,
		},
		Stats: *stats,
	}, nil
}

func (s *quotationService) getStats() (*models.QuotationStats, error) {
	if s.cache != nil {
		var cached models.QuotationStats
		if err := s.cache.GetCached(statsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.quotationRepo.Stats()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetCached(statsCacheKey, stats, cacheTTL(s.cacheTTL))
	}
	return stats, nil
}

func (s *quotationService) invalidateStats() {
	if s.cache != nil {
		s.cache.DeleteCached(statsCacheKey)
	}
}
