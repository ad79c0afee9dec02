package invoicing

import (
	"fmt"

	"github.com/etnz/invoicing/date"
)

// ConvertQuoteToInvoice materializes a new invoice from a quote and marks
// the quote accepted. The invoice copies the quote's client, line items,
// notes and tax rate; it is issued today, due in 30 days, and starts in
// status sent.
//
// The conversion is two sequential store mutations, not an atomic commit:
// an interruption between them can leave the invoice created with the quote
// still unaccepted. See docs/conversion.md.
//
// On a strict store, a quote whose status cannot move to accepted is
// refused before the invoice is created.
func (s *Store) ConvertQuoteToInvoice(quoteID string) (string, error) {
	q, ok := s.Quote(quoteID)
	if !ok {
		return "", fmt.Errorf("unknown quote %q", quoteID)
	}
	if q.Status == QuoteRejected {
		return "", fmt.Errorf("quote %s is rejected and cannot be converted", q.Number)
	}
	if s.strict && !legalQuoteTransition(q.Status, QuoteAccepted) {
		return "", fmt.Errorf("quote %s is %s and cannot be accepted", q.Number, q.Status)
	}

	today := date.Today()
	id := s.AddInvoice(InvoiceData{
		ClientID:  q.ClientID,
		IssueDate: today,
		DueDate:   today.Add(30),
		LineItems: q.LineItems,
		Notes:     q.Notes,
		Status:    InvoiceSent,
		TaxRate:   q.TaxRate,
	})
	s.SetQuoteStatus(quoteID, QuoteAccepted)
	return id, nil
}
