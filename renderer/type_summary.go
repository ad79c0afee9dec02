package renderer

import (
	"github.com/etnz/invoicing"
)

// SummaryView is the render-ready dashboard summary.
type SummaryView struct {
	Date string `json:"date"`

	ClientCount  int `json:"clientCount"`
	InvoiceCount int `json:"invoiceCount"`
	QuoteCount   int `json:"quoteCount"`

	Revenue       string `json:"revenue"`
	Outstanding   string `json:"outstanding"`
	DraftCount    int    `json:"draftCount"`
	OverdueCount  int    `json:"overdueCount"`
	PendingQuotes int    `json:"pendingQuotes"`

	Months []MonthRow `json:"months"`
}

// MonthRow is one month of billing activity, oldest first.
type MonthRow struct {
	Month     string `json:"month"`
	Billed    string `json:"billed"`
	Collected string `json:"collected"`
}

// NewSummaryView builds the dashboard view from a computed summary.
func NewSummaryView(sum *invoicing.Summary, currency string) *SummaryView {
	v := &SummaryView{
		Date:          sum.Date.String(),
		ClientCount:   sum.ClientCount,
		InvoiceCount:  sum.InvoiceCount,
		QuoteCount:    sum.QuoteCount,
		Revenue:       Currency(sum.Revenue, currency),
		Outstanding:   Currency(sum.Outstanding, currency),
		DraftCount:    sum.DraftCount,
		OverdueCount:  sum.OverdueCount,
		PendingQuotes: sum.PendingQuotes,
		Months:        make([]MonthRow, 0, len(sum.Months)),
	}
	for _, m := range sum.Months {
		v.Months = append(v.Months, MonthRow{
			Month:     m.Month.Identifier(),
			Billed:    Currency(m.Billed, currency),
			Collected: Currency(m.Collected, currency),
		})
	}
	return v
}
