package renderer

import (
	"github.com/etnz/invoicing"
)

// ClientListView is the render-ready client directory.
type ClientListView struct {
	Clients []ClientRow `json:"clients"`
}

// ClientRow is one line of the client directory.
type ClientRow struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	// Billed is the pre-tax total of this client's invoices.
	Billed string `json:"billed"`
}

// NewClientListView builds the client directory, with the billed total per
// client from the invoice collection.
func NewClientListView(s *invoicing.Store, currency string) *ClientListView {
	billed := make(map[string]float64)
	for inv := range s.Invoices() {
		billed[inv.ClientID] += inv.TotalAmount
	}

	v := &ClientListView{Clients: make([]ClientRow, 0)}
	for c := range s.Clients() {
		v.Clients = append(v.Clients, ClientRow{
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.Phone,
			Address: c.Address,
			Billed:  Currency(billed[c.ID], currency),
		})
	}
	return v
}

// DocumentListView is a render-ready list of invoices or quotes.
type DocumentListView struct {
	// Kind of documents listed: "Invoices" or "Quotes".
	Kind string `json:"kind"`
	// EndDateLabel is the header of the last date column.
	EndDateLabel string        `json:"endDateLabel"`
	Rows         []DocumentRow `json:"rows"`
	// Total is the pre-tax sum over the listed documents.
	Total string `json:"total"`
}

// DocumentRow is one line of a document list.
type DocumentRow struct {
	Number     string `json:"number"`
	ClientName string `json:"clientName"`
	IssueDate  string `json:"issueDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
	Amount     string `json:"amount"`
}

// NewInvoiceListView builds the list view of the given invoices. Deleted
// clients show as unknown.
func NewInvoiceListView(s *invoicing.Store, invoices []invoicing.Invoice, currency string) *DocumentListView {
	v := &DocumentListView{Kind: "Invoices", EndDateLabel: "Due", Rows: make([]DocumentRow, 0, len(invoices))}
	var total float64
	for _, inv := range invoices {
		v.Rows = append(v.Rows, DocumentRow{
			Number:     inv.Number,
			ClientName: clientName(s, inv.ClientID),
			IssueDate:  inv.IssueDate.String(),
			EndDate:    inv.DueDate.String(),
			Status:     capitalize(string(inv.Status)),
			Amount:     Currency(inv.TotalAmount, currency),
		})
		total += inv.TotalAmount
	}
	v.Total = Currency(total, currency)
	return v
}

// NewQuoteListView builds the list view of the given quotes.
func NewQuoteListView(s *invoicing.Store, quotes []invoicing.Quote, currency string) *DocumentListView {
	v := &DocumentListView{Kind: "Quotes", EndDateLabel: "Valid until", Rows: make([]DocumentRow, 0, len(quotes))}
	var total float64
	for _, q := range quotes {
		v.Rows = append(v.Rows, DocumentRow{
			Number:     q.Number,
			ClientName: clientName(s, q.ClientID),
			IssueDate:  q.IssueDate.String(),
			EndDate:    q.ValidUntil.String(),
			Status:     capitalize(string(q.Status)),
			Amount:     Currency(q.TotalAmount, currency),
		})
		total += q.TotalAmount
	}
	v.Total = Currency(total, currency)
	return v
}

func clientName(s *invoicing.Store, id string) string {
	if c, ok := s.Client(id); ok {
		return c.Name
	}
	return "Unknown client"
}
