package whatsapp

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+91 9790569529":  "919790569529",
		"9876543210":      "9876543210",
		" +91 98765 432 ": "9198765432",
		"":                "",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShareLink(t *testing.T) {
	link, err := ShareLink("+91 9876543210", "Dear Asha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
		t.Fatalf("unexpected link: %s", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("link not encoded: %s", link)
	}
}

func TestShareLinkMissingContact(t *testing.T) {
	if _, err := ShareLink("  + ", "msg"); err != ErrMissingContact {
		t.Fatalf("expected ErrMissingContact, got %v", err)
	}
}

func TestInvoiceMessage(t *testing.T) {
	msg := InvoiceMessage("Asha", "QTN-1001", 1180, "SRI RAJA MOSQUITO NETLON SERVICES")
	for _, want := range []string{"Dear Asha", "QTN-1001", "₹1180.00", "Thank you for your business!", "SRI RAJA MOSQUITO NETLON SERVICES"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("invoice message missing %q: %s", want, msg)
		}
	}
}

func TestQuotationMessage(t *testing.T) {
	msg := QuotationMessage("77", "Asha", 1000, "")
	for _, want := range []string{"Quotation 77", "Customer: Asha", "₹1000.00", "Date: N/A"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("quotation message missing %q: %s", want, msg)
		}
	}

	dated := QuotationMessage("QTN-5", "Ravi", 250.5, "2025-04-01")
	if !strings.Contains(dated, "Date: 2025-04-01") {
		t.Fatalf("quotation message missing date: %s", dated)
	}
}
