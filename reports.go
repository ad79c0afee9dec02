package invoicing

import "github.com/etnz/invoicing/date"

// Summary provides an at-a-glance overview of the billing activity on a
// given date. All figures use the stored pre-tax totals.
type Summary struct {
	Date date.Date

	ClientCount  int
	InvoiceCount int
	QuoteCount   int

	Revenue      float64 // total of paid invoices
	Outstanding  float64 // total of sent and overdue invoices
	DraftCount   int
	OverdueCount int

	PendingQuotes int // quotes still in draft or sent

	Months []MonthActivity // trailing months, oldest first
}

// MonthActivity aggregates invoices issued within one month.
type MonthActivity struct {
	Month     date.Range
	Billed    float64 // every invoice issued that month
	Collected float64 // the paid ones
}

// NewSummary computes the billing summary on a given date, with monthly
// activity for the trailing months (including the current one).
func NewSummary(s *Store, on date.Date, months int) *Summary {
	sum := &Summary{Date: on}
	sum.ClientCount, sum.InvoiceCount, sum.QuoteCount = s.Counts()

	for inv := range s.Invoices() {
		switch inv.Status {
		case InvoicePaid:
			sum.Revenue += inv.TotalAmount
		case InvoiceSent:
			sum.Outstanding += inv.TotalAmount
		case InvoiceOverdue:
			sum.Outstanding += inv.TotalAmount
			sum.OverdueCount++
		case InvoiceDraft:
			sum.DraftCount++
		}
	}

	for q := range s.Quotes() {
		if q.Status == QuoteDraft || q.Status == QuoteSent {
			sum.PendingQuotes++
		}
	}

	for i := months - 1; i >= 0; i-- {
		month := date.NewRange(on.AddMonth(-i), date.Monthly)
		activity := MonthActivity{Month: month}
		for inv := range s.Invoices() {
			if !month.Contains(inv.IssueDate) {
				continue
			}
			activity.Billed += inv.TotalAmount
			if inv.Status == InvoicePaid {
				activity.Collected += inv.TotalAmount
			}
		}
		sum.Months = append(sum.Months, activity)
	}
	return sum
}
