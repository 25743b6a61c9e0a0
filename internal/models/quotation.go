package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// CustomerInfo is the billing block captured on every quotation. EstimateNo
// is the human-assigned business number, distinct from the database id.
type CustomerInfo struct {
	BillTo       string `json:"billTo" gorm:"not null"`
	ContactNo    string `json:"contactNo" gorm:"not null"`
	StateName    string `json:"stateName"`
	EstimateNo   string `json:"estimateNo" gorm:"index"`
	EstimateDate string `json:"estimateDate"`
	GSTIN        string `json:"gstin" gorm:"column:gstin"`
}

type LineItem struct {
	ID          uint           `json:"-" gorm:"primaryKey"`
	QuotationID uint           `json:"-" gorm:"not null;index"`
	Description string         `json:"description" gorm:"not null"`
	Qty         float64        `json:"qty" gorm:"not null"`
	Rate        float64        `json:"rate" gorm:"not null"`
	Amount      float64        `json:"amount" gorm:"not null"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Totals holds the financial summary. CGST/SGST/GrandTotal stay zero until a
// quotation is promoted to an invoice.
type Totals struct {
	TotalAmount float64 `json:"totalAmount"`
	CGST        float64 `json:"cgst" gorm:"column:cgst"`
	SGST        float64 `json:"sgst" gorm:"column:sgst"`
	GrandTotal  float64 `json:"grandTotal"`
}

// Quotation is the single stored document entity. An invoice is the same
// record with IsInvoice set, the customer GSTIN filled and GST computed;
// its id never changes across promotion.
type Quotation struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	CustomerInfo  CustomerInfo   `json:"customerInfo" gorm:"embedded"`
	Items         []LineItem     `json:"items" gorm:"foreignKey:QuotationID"`
	Totals        Totals         `json:"totals" gorm:"embedded"`
	IsInvoice     bool           `json:"isInvoice" gorm:"default:false"`
	InvoiceDate   string         `json:"invoiceDate"`
	InvoiceNumber string         `json:"invoiceNumber"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// BusinessNumber returns the human-facing reference for the document,
// falling back to the store-assigned id when no estimate number was given.
func (q *Quotation) BusinessNumber() string {
	if q.CustomerInfo.EstimateNo != "" {
		return q.CustomerInfo.EstimateNo
	}
	return fmt.Sprintf("%d", q.ID)
}

// RecomputeAmounts re-derives every line amount from qty and rate and the
// subtotal from the line amounts. Must be called before any persistence.
func (q *Quotation) RecomputeAmounts() {
	var total float64
	for i := range q.Items {
		q.Items[i].Amount = q.Items[i].Qty * q.Items[i].Rate
		total += q.Items[i].Amount
	}
	q.Totals.TotalAmount = total
}

// Validate checks the fields a caller must correct before saving.
func (q *Quotation) Validate() error {
	if q.CustomerInfo.BillTo == "" {
		return &ValidationError{Field: "billTo", Message: "Customer name is required"}
	}
	if q.CustomerInfo.ContactNo == "" {
		return &ValidationError{Field: "contactNo", Message: "Contact number is required"}
	}
	if len(q.Items) == 0 {
		return &ValidationError{Field: "items", Message: "At least one item is required"}
	}
	for _, item := range q.Items {
		if item.Description == "" {
			return &ValidationError{Field: "items", Message: "All items must have a description"}
		}
		if item.Qty <= 0 {
			return &ValidationError{Field: "items", Message: "Item quantity must be positive"}
		}
		if item.Rate < 0 {
			return &ValidationError{Field: "items", Message: "Item rate cannot be negative"}
		}
	}
	return nil
}

// QuotationStats is the aggregate block returned with the paginated list.
type QuotationStats struct {
	TotalQuotations  int64   `json:"total_quotations"`
	TotalValue       float64 `json:"total_value"`
	ThisMonth        int64   `json:"this_month"`
	GrowthPercentage float64 `json:"growth_percentage"`
}

type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

type QuotationPage struct {
	Quotations []Quotation    `json:"quotations"`
	Pagination Pagination     `json:"pagination"`
	Stats      QuotationStats `json:"stats"`
}
