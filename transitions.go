package invoicing

// The status diagrams are intended usage, not an enforced invariant:
//
//	invoices: draft → sent → {paid, overdue}
//	quotes:   draft → sent → {accepted, rejected}
//
// By default any status may be set from any status. The tables below back
// the optional strict mode (WithStrictTransitions). Setting the current
// status again is always legal.

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft: {InvoiceSent},
	InvoiceSent:  {InvoicePaid, InvoiceOverdue},
	// paid and overdue are terminal
}

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteDraft: {QuoteSent},
	QuoteSent:  {QuoteAccepted, QuoteRejected},
	// accepted and rejected are terminal
}

func legalInvoiceTransition(from, to InvoiceStatus) bool {
	if from == to {
		return true
	}
	for _, next := range invoiceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func legalQuoteTransition(from, to QuoteStatus) bool {
	if from == to {
		return true
	}
	for _, next := range quoteTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
