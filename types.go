package invoicing

import (
	"fmt"
	"time"

	"github.com/etnz/invoicing/date"
)

// Client is a billable customer. The identifier is immutable and unique
// within the client collection.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// LineItem is one priced row inside an invoice or quote. Line items are
// owned by their document and have no independent lifecycle.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// InvoiceStatus is the lifecycle stage of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// ParseInvoiceStatus parses a string into an InvoiceStatus.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return InvoiceStatus(s), nil
	default:
		return "", fmt.Errorf("unknown invoice status: %q", s)
	}
}

// QuoteStatus is the lifecycle stage of a quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

// ParseQuoteStatus parses a string into a QuoteStatus.
func ParseQuoteStatus(s string) (QuoteStatus, error) {
	switch QuoteStatus(s) {
	case QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected:
		return QuoteStatus(s), nil
	default:
		return "", fmt.Errorf("unknown quote status: %q", s)
	}
}

// Invoice is a priced document issued to a client.
//
// ClientID is a weak reference: it must be resolved against the client
// collection, and deleting the client leaves it dangling.
//
// TotalAmount caches the pre-tax sum of the line items. Tax is computed
// separately at display time and is never folded into the stored total.
// See docs/storage.md.
type Invoice struct {
	ID          string        `json:"id"`
	Number      string        `json:"number"`
	ClientID    string        `json:"clientId"`
	IssueDate   date.Date     `json:"issueDate"`
	DueDate     date.Date     `json:"dueDate"`
	LineItems   []LineItem    `json:"lineItems"`
	Notes       string        `json:"notes"`
	Status      InvoiceStatus `json:"status"`
	TotalAmount float64       `json:"totalAmount"`
	TaxRate     float64       `json:"taxRate"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Quote has the same shape as Invoice, with a validity deadline instead of a
// due date and its own status set.
type Quote struct {
	ID          string      `json:"id"`
	Number      string      `json:"number"`
	ClientID    string      `json:"clientId"`
	IssueDate   date.Date   `json:"issueDate"`
	ValidUntil  date.Date   `json:"validUntil"`
	LineItems   []LineItem  `json:"lineItems"`
	Notes       string      `json:"notes"`
	Status      QuoteStatus `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	TaxRate     float64     `json:"taxRate"`
	CreatedAt   time.Time   `json:"createdAt"`
}
