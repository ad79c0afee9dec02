package invoicing

// This file holds the monetary calculation primitives. They are pure and
// deterministic; amounts are plain float64, matching the native JSON
// numbers of the persisted format.
//
// There is no validation layer: negative quantities or prices propagate
// arithmetically.

// Subtotal returns the sum of quantity × unit price over the line items.
// An empty sequence yields 0.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Quantity * it.UnitPrice
	}
	return sum
}

// TaxAmount returns the tax due on a subtotal for a fractional tax rate
// (0.1 means 10%).
func TaxAmount(subtotal, taxRate float64) float64 {
	return subtotal * taxRate
}

// GrandTotal returns the tax-inclusive total of the line items.
func GrandTotal(items []LineItem, taxRate float64) float64 {
	sub := Subtotal(items)
	return sub + TaxAmount(sub, taxRate)
}
