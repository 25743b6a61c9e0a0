package services

import (
	"errors"
	"invoice_manager/internal/models"
	"invoice_manager/internal/repository"
	"math"
	"testing"
)

func TestResolutionPrecedence(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewQuotationRepository(db)
	svc := NewInvoiceService(repo)

	first := newQuotation("Asha", "Q1")
	if err := repo.Create(first); err != nil {
		t.Fatalf("seed: %v", err)
	}
	second := newQuotation("Ravi", "2")
	if err := repo.Create(second); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// "2" must hit the exact-match rules, never a partial match on "Q1".
	doc, err := svc.BuildInvoice("2", "")
	if err != nil {
		t.Fatalf("resolve 2: %v", err)
	}
	if doc.ID != second.ID {
		t.Fatalf("resolved wrong record: got id %d want %d", doc.ID, second.ID)
	}

	doc, err = svc.BuildInvoice("Q1", "")
	if err != nil {
		t.Fatalf("resolve Q1: %v", err)
	}
	if doc.ID != first.ID {
		t.Fatalf("resolved wrong record: got id %d want %d", doc.ID, first.ID)
	}
}

func TestResolutionByStoreID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewQuotationRepository(db)
	svc := NewInvoiceService(repo)

	q := newQuotation("Asha", "QTN-1001")
	if err := repo.Create(q); err != nil {
		t.Fatalf("seed: %v", err)
	}

	doc, err := svc.BuildInvoice("1", "")
	if err != nil {
		t.Fatalf("resolve by id: %v", err)
	}
	if doc.ID != q.ID {
		t.Fatalf("got id %d want %d", doc.ID, q.ID)
	}
}

func TestResolutionNotFoundCarriesNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(repository.NewQuotationRepository(db))

	_, err := svc.BuildInvoice("78965", "")
	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if notFound.Number != "78965" {
		t.Fatalf("error lost the lookup key: %+v", notFound)
	}
}

func TestBuildInvoiceFillsDefaultsAndTax(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewQuotationRepository(db)
	svc := NewInvoiceService(repo)

	q := &models.Quotation{
		CustomerInfo: models.CustomerInfo{BillTo: "Asha", ContactNo: "9876543210"},
		Items:        []models.LineItem{{Description: "Net 6x4", Qty: 2, Rate: 500, Amount: 1000}},
		Totals: models.Totals{
			TotalAmount: 1000,
			// Stale tax values that must never be trusted.
			CGST:       1,
			SGST:       2,
			GrandTotal: 3,
		},
	}
	if err := repo.Create(q); err != nil {
		t.Fatalf("seed: %v", err)
	}

	doc, err := svc.BuildInvoice("1", "33AAAAA0000A1Z5")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if doc.CustomerInfo.StateName != "N/A" || doc.CustomerInfo.EstimateDate != "N/A" {
		t.Fatalf("missing fields not defaulted: %+v", doc.CustomerInfo)
	}
	if doc.CustomerInfo.EstimateNo != "QTN-1" {
		t.Fatalf("estimate number fallback: got %q", doc.CustomerInfo.EstimateNo)
	}
	if doc.CustomerInfo.GSTIN != "33AAAAA0000A1Z5" {
		t.Fatalf("gstin not applied: %q", doc.CustomerInfo.GSTIN)
	}
	if math.Abs(doc.Totals.CGST-90) > 1e-9 || math.Abs(doc.Totals.SGST-90) > 1e-9 || math.Abs(doc.Totals.GrandTotal-1180) > 1e-9 {
		t.Fatalf("tax not recomputed: %+v", doc.Totals)
	}
}

func TestBuildInvoiceGSTINFallsBackToRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewQuotationRepository(db)
	svc := NewInvoiceService(repo)

	q := newQuotation("Asha", "QTN-1001")
	q.CustomerInfo.GSTIN = "33BECPR927M1ZU"
	q.Items[0].Amount = 1000
	q.Totals.TotalAmount = 1000
	if err := repo.Create(q); err != nil {
		t.Fatalf("seed: %v", err)
	}

	doc, err := svc.BuildInvoice("QTN-1001", "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if doc.CustomerInfo.GSTIN != "33BECPR927M1ZU" {
		t.Fatalf("record gstin lost: %q", doc.CustomerInfo.GSTIN)
	}
}

func TestBuildInvoiceIncompleteRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewQuotationRepository(db)
	svc := NewInvoiceService(repo)

	// A record missing its financial data cannot become an invoice.
	q := &models.Quotation{CustomerInfo: models.CustomerInfo{BillTo: "Asha", ContactNo: "9876543210", EstimateNo: "QTN-9"}}
	if err := repo.Create(q); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.BuildInvoice("QTN-9", "33AAAAA0000A1Z5")
	if !errors.Is(err, models.ErrIncompleteDocument) {
		t.Fatalf("expected ErrIncompleteDocument, got %v", err)
	}
}

func TestPromoteQuotation(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewQuotationRepository(db)
	svc := NewInvoiceService(repo)

	q := newQuotation("Asha", "QTN-1001")
	q.Items[0].Amount = 1000
	q.Totals.TotalAmount = 1000
	if err := repo.Create(q); err != nil {
		t.Fatalf("seed: %v", err)
	}

	incoming := newQuotation("Asha", "QTN-1001")
	incoming.CustomerInfo.GSTIN = "33AAAAA0000A1Z5"
	promoted, err := svc.PromoteQuotation(q.ID, incoming)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}

	if promoted.ID != q.ID {
		t.Fatalf("identity changed across promotion: %d -> %d", q.ID, promoted.ID)
	}
	if !promoted.IsInvoice {
		t.Fatal("record not marked as invoice")
	}
	if promoted.InvoiceNumber != "QTN-1001" {
		t.Fatalf("invoice number: got %q", promoted.InvoiceNumber)
	}
	if promoted.InvoiceDate == "" {
		t.Fatal("invoice date not stamped")
	}
	if math.Abs(promoted.Totals.CGST-90) > 1e-9 || math.Abs(promoted.Totals.GrandTotal-1180) > 1e-9 {
		t.Fatalf("gst not computed: %+v", promoted.Totals)
	}
}

func TestPromoteRequiresGSTIN(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewQuotationRepository(db)
	svc := NewInvoiceService(repo)

	q := newQuotation("Asha", "QTN-1001")
	if err := repo.Create(q); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.PromoteQuotation(q.ID, newQuotation("Asha", "QTN-1001"))
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestPromoteTwiceIsRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewQuotationRepository(db)
	svc := NewInvoiceService(repo)

	q := newQuotation("Asha", "QTN-1001")
	if err := repo.Create(q); err != nil {
		t.Fatalf("seed: %v", err)
	}

	incoming := newQuotation("Asha", "QTN-1001")
	incoming.CustomerInfo.GSTIN = "33AAAAA0000A1Z5"
	if _, err := svc.PromoteQuotation(q.ID, incoming); err != nil {
		t.Fatalf("first promotion: %v", err)
	}

	_, err := svc.PromoteQuotation(q.ID, incoming)
	if !errors.Is(err, models.ErrAlreadyInvoice) {
		t.Fatalf("expected ErrAlreadyInvoice, got %v", err)
	}
}
