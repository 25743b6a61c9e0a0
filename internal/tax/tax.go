// Package tax computes the GST split applied when a quotation becomes a tax
// invoice. Current policy is a fixed 18% split into equal 9% central and
// state components.
package tax

const (
	CGSTRate = 0.09
	SGSTRate = 0.09
)

// Breakdown is the result of applying GST to a taxable subtotal.
type Breakdown struct {
	CGST       float64 `json:"cgst"`
	SGST       float64 `json:"sgst"`
	GrandTotal float64 `json:"grandTotal"`
}

// Compute derives the tax components and grand total for a subtotal. Pure
// and deterministic; a zero subtotal yields an all-zero breakdown. Negative
// input is a caller bug and is not clamped here.
func Compute(totalAmount float64) Breakdown {
	cgst := totalAmount * CGSTRate
	sgst := totalAmount * SGSTRate
	return Breakdown{
		CGST:       cgst,
		SGST:       sgst,
		GrandTotal: totalAmount + cgst + sgst,
	}
}
