package models

import (
	"errors"
	"fmt"
)

// ErrIncompleteDocument marks a stored record that cannot become an invoice
// because its financial data (items/totals) is missing. Not recoverable
// without repairing the record.
var ErrIncompleteDocument = errors.New("quotation data is incomplete")

// ErrAlreadyInvoice marks an attempt to promote a record twice.
var ErrAlreadyInvoice = errors.New("quotation has already been converted to an invoice")

// ValidationError is a user-correctable input problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError carries the original lookup key so callers can show it.
type NotFoundError struct {
	Number string
}

func (e *NotFoundError) Error() string {
	if e.Number == "" {
		return "Quotation not found"
	}
	return fmt.Sprintf("No quotation found with number: %s. Please check the number and try again.", e.Number)
}
