package renderer

import (
	"github.com/etnz/invoicing"
)

// DocumentView is the render-ready form of an invoice or a quote. Every
// numeric field is pre-formatted so the templates and the PDF exporter
// share one source of truth for presentation.
type DocumentView struct {
	// Kind of document: "Invoice" or "Quote".
	Kind string `json:"kind"`
	// Number is the human-facing document number (INV-00001).
	Number string `json:"number"`
	// Status of the document, capitalized for display.
	Status string `json:"status"`

	// Company is the issuing company profile.
	Company invoicing.CompanyProfile `json:"company"`

	// ClientName and the other client fields describe the billed party.
	// A dangling client reference renders as an unknown client, never an error.
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail,omitempty"`
	ClientAddress string `json:"clientAddress,omitempty"`

	// IssueDate and EndDate are ISO-8601. EndDateLabel distinguishes an
	// invoice's "Due date" from a quote's "Valid until".
	IssueDate    string `json:"issueDate"`
	EndDateLabel string `json:"endDateLabel"`
	EndDate      string `json:"endDate"`

	Items []LineItemView `json:"items"`

	// Subtotal, Tax and Total are currency strings; Total includes tax,
	// unlike the stored document total.
	Subtotal string `json:"subtotal"`
	TaxRate  string `json:"taxRate"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`

	Notes string `json:"notes,omitempty"`
}

// LineItemView is a render-ready line item.
type LineItemView struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Amount      string `json:"amount"`
}

// NewInvoiceView builds the view of an invoice. A nil client stands for a
// deleted one.
func NewInvoiceView(inv invoicing.Invoice, client *invoicing.Client, company invoicing.CompanyProfile, currency string) *DocumentView {
	v := newDocumentView("Invoice", inv.Number, string(inv.Status), client, company, currency)
	v.IssueDate = inv.IssueDate.String()
	v.EndDateLabel = "Due date"
	v.EndDate = inv.DueDate.String()
	v.Notes = inv.Notes
	v.fillAmounts(inv.LineItems, inv.TaxRate, currency)
	return v
}

// NewQuoteView builds the view of a quote. A nil client stands for a
// deleted one.
func NewQuoteView(q invoicing.Quote, client *invoicing.Client, company invoicing.CompanyProfile, currency string) *DocumentView {
	v := newDocumentView("Quote", q.Number, string(q.Status), client, company, currency)
	v.IssueDate = q.IssueDate.String()
	v.EndDateLabel = "Valid until"
	v.EndDate = q.ValidUntil.String()
	v.Notes = q.Notes
	v.fillAmounts(q.LineItems, q.TaxRate, currency)
	return v
}

func newDocumentView(kind, number, status string, client *invoicing.Client, company invoicing.CompanyProfile, currency string) *DocumentView {
	v := &DocumentView{
		Kind:       kind,
		Number:     number,
		Status:     capitalize(status),
		Company:    company,
		ClientName: "Unknown client",
	}
	if client != nil {
		v.ClientName = client.Name
		v.ClientEmail = client.Email
		v.ClientAddress = client.Address
	}
	return v
}

func (v *DocumentView) fillAmounts(items []invoicing.LineItem, taxRate float64, currency string) {
	v.Items = make([]LineItemView, 0, len(items))
	for _, it := range items {
		v.Items = append(v.Items, LineItemView{
			Description: it.Description,
			Quantity:    Quantity(it.Quantity),
			UnitPrice:   Currency(it.UnitPrice, currency),
			Amount:      Currency(it.Quantity*it.UnitPrice, currency),
		})
	}
	subtotal := invoicing.Subtotal(items)
	v.Subtotal = Currency(subtotal, currency)
	v.TaxRate = Percent(taxRate)
	v.Tax = Currency(invoicing.TaxAmount(subtotal, taxRate), currency)
	v.Total = Currency(invoicing.GrandTotal(items, taxRate), currency)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
