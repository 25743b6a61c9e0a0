package repository

import (
	"invoice_manager/internal/models"
	"time"

	"gorm.io/gorm"
)

type QuotationRepository interface {
	Create(quotation *models.Quotation) error
	GetByID(id uint) (*models.Quotation, error)
	GetByNumber(number string) (*models.Quotation, error)
	Update(quotation *models.Quotation) error
	Delete(id uint) error
	List(page, perPage int, search string) ([]models.Quotation, int64, error)
	Stats() (*models.QuotationStats, error)
}

type quotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(quotation *models.Quotation) error {
	return r.db.Create(quotation).Error
}

func (r *quotationRepository) GetByID(id uint) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.db.Preload("Items").First(&quotation, id).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *quotationRepository) GetByNumber(number string) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.db.Preload("Items").
		Where("estimate_no = ? OR invoice_number = ?", number, number).
		First(&quotation).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// Update replaces the line items wholesale; amounts were already recomputed
// by the service, so stale rows must not survive an edit.
func (r *quotationRepository) Update(quotation *models.Quotation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", quotation.ID).Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		for i := range quotation.Items {
			quotation.Items[i].ID = 0
			quotation.Items[i].QuotationID = quotation.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(quotation).Error
	})
}

func (r *quotationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Quotation{}, id).Error
	})
}

func (r *quotationRepository) List(page, perPage int, search string) ([]models.Quotation, int64, error) {
	var quotations []models.Quotation
	var total int64

	query := r.db.Model(&models.Quotation{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("bill_to LIKE ? OR estimate_no LIKE ? OR contact_no LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&quotations).Error
	return quotations, total, err
}

func (r *quotationRepository) Stats() (*models.QuotationStats, error) {
	stats := &models.QuotationStats{}

	if err := r.db.Model(&models.Quotation{}).Count(&stats.TotalQuotations).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Quotation{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalValue).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)

	if err := r.db.Model(&models.Quotation{}).
		Where("created_at >= ?", monthStart).
		Count(&stats.ThisMonth).Error; err != nil {
		return nil, err
	}

	var prevMonth int64
	if err := r.db.Model(&models.Quotation{}).
		Where("created_at >= ? AND created_at < ?", prevStart, monthStart).
		Count(&prevMonth).Error; err != nil {
		return nil, err
	}

	if prevMonth > 0 {
		stats.GrowthPercentage = float64(stats.ThisMonth-prevMonth) / float64(prevMonth) * 100
	} else if stats.ThisMonth > 0 {
		stats.GrowthPercentage = 100
	}

	return stats, nil
}
