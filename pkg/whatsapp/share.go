// Package whatsapp builds the share messages and wa.me deep links used to
// send documents to customers. Delivery happens in the customer's browser;
// this package only produces the link and its text payload.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrMissingContact = errors.New("customer contact number is required for WhatsApp sharing")

// InvoiceMessage is the share text for a promoted tax invoice.
func InvoiceMessage(customerName, businessNumber string, grandTotal float64, companyName string) string {
	return fmt.Sprintf(
		"Dear %s,\n\nYour invoice %s has been generated.\nTotal Amount: ₹%.2f\n\nThank you for your business!\n%s",
		customerName, businessNumber, grandTotal, companyName,
	)
}

// QuotationMessage is the share text for a plain quotation. It is a
// deliberately different template from the invoice one, including a date
// line the invoice message does not carry.
func QuotationMessage(businessNumber, customerName string, totalAmount float64, date string) string {
	if date == "" {
		date = "N/A"
	}
	return fmt.Sprintf(
		"Quotation %s\nCustomer: %s\nTotal Amount: ₹%.2f\nDate: %s\nThank you for your business!",
		businessNumber, customerName, totalAmount, date,
	)
}

// NormalizePhone strips the leading plus sign and all whitespace, the form
// wa.me expects.
func NormalizePhone(contactNo string) string {
	cleaned := strings.ReplaceAll(contactNo, "+", "")
	return strings.Join(strings.Fields(cleaned), "")
}

// ShareLink builds the wa.me deep link carrying the message. The contact
// number must resolve to something dialable after normalization.
func ShareLink(contactNo, message string) (string, error) {
	phone := NormalizePhone(contactNo)
	if phone == "" {
		return "", ErrMissingContact
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message)), nil
}
