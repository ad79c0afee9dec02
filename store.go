package invoicing

import (
	"iter"
	"slices"
	"time"

	"github.com/etnz/invoicing/date"
)

// Store is the owning collection manager for clients, invoices and quotes.
//
// It is an explicit, constructor-injected object: tests and callers create
// their own instance with NewStore, there is no package-level singleton.
// The Store itself has no storage dependency; persistence subscribes to
// mutations with OnChange (see loader.go).
//
// Operations on unknown identifiers are silent no-ops reporting false,
// never errors.
type Store struct {
	clients  []Client
	invoices []Invoice
	quotes   []Quote

	strict    bool
	observers []func()
}

// Option configures a Store.
type Option func(*Store)

// WithStrictTransitions makes SetInvoiceStatus and SetQuoteStatus reject
// transitions outside the draft → sent → terminal diagram. The default is
// permissive: any status may be set from any status.
func WithStrictTransitions() Option {
	return func(s *Store) { s.strict = true }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clients:  make([]Client, 0),
		invoices: make([]Invoice, 0),
		quotes:   make([]Quote, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers an observer invoked after every applied mutation.
func (s *Store) OnChange(fn func()) { s.observers = append(s.observers, fn) }

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	return slices.Clone(items)
}

// Clients

// ClientData carries the editable fields of a client.
type ClientData struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ClientPatch carries a partial client update; nil fields are left untouched.
type ClientPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// AddClient creates a client, assigns its identifier and creation
// timestamp, and returns the new identifier.
func (s *Store) AddClient(data ClientData) string {
	c := Client{
		ID:        NewID(),
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: time.Now(),
	}
	s.clients = append(s.clients, c)
	s.notify()
	return c.ID
}

// UpdateClient merges the patch into the client with that identifier.
// Unknown identifiers are a no-op reporting false.
func (s *Store) UpdateClient(id string, patch ClientPatch) bool {
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		c := &s.clients[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		s.notify()
		return true
	}
	return false
}

// DeleteClient removes the client with that identifier. It does not cascade:
// documents referencing the client keep their dangling ClientID.
func (s *Store) DeleteClient(id string) bool {
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = slices.Delete(s.clients, i, i+1)
			s.notify()
			return true
		}
	}
	return false
}

// Client returns the client with that identifier.
func (s *Store) Client(id string) (Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// FindClient resolves a reference that is either a client identifier or an
// exact client name.
func (s *Store) FindClient(ref string) (Client, bool) {
	if c, ok := s.Client(ref); ok {
		return c, true
	}
	for _, c := range s.clients {
		if c.Name == ref {
			return c, true
		}
	}
	return Client{}, false
}

// Clients iterates over all clients in insertion order.
func (s *Store) Clients() iter.Seq[Client] {
	return func(yield func(Client) bool) {
		for _, c := range s.clients {
			if !yield(c) {
				return
			}
		}
	}
}

// Invoices

// InvoiceData carries the editable fields of a new invoice. Identifier,
// number, total and creation timestamp are assigned by the store.
type InvoiceData struct {
	ClientID  string
	IssueDate date.Date
	DueDate   date.Date
	LineItems []LineItem
	Notes     string
	Status    InvoiceStatus
	TaxRate   float64
}

// InvoicePatch carries a partial invoice update; nil fields are left
// untouched. A non-nil LineItems replaces the whole sequence and the cached
// total is recomputed from it.
type InvoicePatch struct {
	ClientID  *string
	IssueDate *date.Date
	DueDate   *date.Date
	LineItems []LineItem
	Notes     *string
	Status    *InvoiceStatus
	TaxRate   *float64
}

// AddInvoice creates an invoice, assigning identifier, document number,
// cached total and creation timestamp, and returns the new identifier.
//
// The number derives from the current collection size; see DocumentNumber
// for the collision caveat.
func (s *Store) AddInvoice(data InvoiceData) string {
	status := data.Status
	if status == "" {
		status = InvoiceDraft
	}
	inv := Invoice{
		ID:          NewID(),
		Number:      DocumentNumber(InvoicePrefix, len(s.invoices)),
		ClientID:    data.ClientID,
		IssueDate:   data.IssueDate,
		DueDate:     data.DueDate,
		LineItems:   cloneItems(data.LineItems),
		Notes:       data.Notes,
		Status:      status,
		TotalAmount: Subtotal(data.LineItems),
		TaxRate:     data.TaxRate,
		CreatedAt:   time.Now(),
	}
	s.invoices = append(s.invoices, inv)
	s.notify()
	return inv.ID
}

// UpdateInvoice merges the patch into the invoice with that identifier.
// Unknown identifiers are a no-op reporting false.
func (s *Store) UpdateInvoice(id string, patch InvoicePatch) bool {
	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}
		inv := &s.invoices[i]
		if patch.ClientID != nil {
			inv.ClientID = *patch.ClientID
		}
		if patch.IssueDate != nil {
			inv.IssueDate = *patch.IssueDate
		}
		if patch.DueDate != nil {
			inv.DueDate = *patch.DueDate
		}
		if patch.LineItems != nil {
			inv.LineItems = cloneItems(patch.LineItems)
			inv.TotalAmount = Subtotal(inv.LineItems)
		}
		if patch.Notes != nil {
			inv.Notes = *patch.Notes
		}
		if patch.Status != nil {
			inv.Status = *patch.Status
		}
		if patch.TaxRate != nil {
			inv.TaxRate = *patch.TaxRate
		}
		s.notify()
		return true
	}
	return false
}

// DeleteInvoice removes the invoice with that identifier.
func (s *Store) DeleteInvoice(id string) bool {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = slices.Delete(s.invoices, i, i+1)
			s.notify()
			return true
		}
	}
	return false
}

// SetInvoiceStatus sets the status field directly. In the default permissive
// mode any transition is allowed, including backwards ones like paid → draft.
func (s *Store) SetInvoiceStatus(id string, status InvoiceStatus) bool {
	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}
		if s.strict && !legalInvoiceTransition(s.invoices[i].Status, status) {
			return false
		}
		s.invoices[i].Status = status
		s.notify()
		return true
	}
	return false
}

// Invoice returns the invoice with that identifier.
func (s *Store) Invoice(id string) (Invoice, bool) {
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return Invoice{}, false
}

// FindInvoice resolves a reference that is either an invoice identifier or a
// document number.
func (s *Store) FindInvoice(ref string) (Invoice, bool) {
	for _, inv := range s.invoices {
		if inv.ID == ref || inv.Number == ref {
			return inv, true
		}
	}
	return Invoice{}, false
}

// Invoices iterates over all invoices in insertion order.
func (s *Store) Invoices() iter.Seq[Invoice] {
	return func(yield func(Invoice) bool) {
		for _, inv := range s.invoices {
			if !yield(inv) {
				return
			}
		}
	}
}

// Quotes

// QuoteData carries the editable fields of a new quote.
type QuoteData struct {
	ClientID   string
	IssueDate  date.Date
	ValidUntil date.Date
	LineItems  []LineItem
	Notes      string
	Status     QuoteStatus
	TaxRate    float64
}

// QuotePatch carries a partial quote update; nil fields are left untouched.
type QuotePatch struct {
	ClientID   *string
	IssueDate  *date.Date
	ValidUntil *date.Date
	LineItems  []LineItem
	Notes      *string
	Status     *QuoteStatus
	TaxRate    *float64
}

// AddQuote creates a quote, assigning identifier, document number, cached
// total and creation timestamp, and returns the new identifier.
func (s *Store) AddQuote(data QuoteData) string {
	status := data.Status
	if status == "" {
		status = QuoteDraft
	}
	q := Quote{
		ID:          NewID(),
		Number:      DocumentNumber(QuotePrefix, len(s.quotes)),
		ClientID:    data.ClientID,
		IssueDate:   data.IssueDate,
		ValidUntil:  data.ValidUntil,
		LineItems:   cloneItems(data.LineItems),
		Notes:       data.Notes,
		Status:      status,
		TotalAmount: Subtotal(data.LineItems),
		TaxRate:     data.TaxRate,
		CreatedAt:   time.Now(),
	}
	s.quotes = append(s.quotes, q)
	s.notify()
	return q.ID
}

// UpdateQuote merges the patch into the quote with that identifier.
func (s *Store) UpdateQuote(id string, patch QuotePatch) bool {
	for i := range s.quotes {
		if s.quotes[i].ID != id {
			continue
		}
		q := &s.quotes[i]
		if patch.ClientID != nil {
			q.ClientID = *patch.ClientID
		}
		if patch.IssueDate != nil {
			q.IssueDate = *patch.IssueDate
		}
		if patch.ValidUntil != nil {
			q.ValidUntil = *patch.ValidUntil
		}
		if patch.LineItems != nil {
			q.LineItems = cloneItems(patch.LineItems)
			q.TotalAmount = Subtotal(q.LineItems)
		}
		if patch.Notes != nil {
			q.Notes = *patch.Notes
		}
		if patch.Status != nil {
			q.Status = *patch.Status
		}
		if patch.TaxRate != nil {
			q.TaxRate = *patch.TaxRate
		}
		s.notify()
		return true
	}
	return false
}

// DeleteQuote removes the quote with that identifier.
func (s *Store) DeleteQuote(id string) bool {
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			s.quotes = slices.Delete(s.quotes, i, i+1)
			s.notify()
			return true
		}
	}
	return false
}

// SetQuoteStatus sets the status field directly, with the same permissive
// default as SetInvoiceStatus.
func (s *Store) SetQuoteStatus(id string, status QuoteStatus) bool {
	for i := range s.quotes {
		if s.quotes[i].ID != id {
			continue
		}
		if s.strict && !legalQuoteTransition(s.quotes[i].Status, status) {
			return false
		}
		s.quotes[i].Status = status
		s.notify()
		return true
	}
	return false
}

// Quote returns the quote with that identifier.
func (s *Store) Quote(id string) (Quote, bool) {
	for _, q := range s.quotes {
		if q.ID == id {
			return q, true
		}
	}
	return Quote{}, false
}

// FindQuote resolves a reference that is either a quote identifier or a
// document number.
func (s *Store) FindQuote(ref string) (Quote, bool) {
	for _, q := range s.quotes {
		if q.ID == ref || q.Number == ref {
			return q, true
		}
	}
	return Quote{}, false
}

// Quotes iterates over all quotes in insertion order.
func (s *Store) Quotes() iter.Seq[Quote] {
	return func(yield func(Quote) bool) {
		for _, q := range s.quotes {
			if !yield(q) {
				return
			}
		}
	}
}

// IsEmpty reports whether the store holds no clients. The demo seeder uses
// it to run only on a fresh store.
func (s *Store) IsEmpty() bool { return len(s.clients) == 0 }

// Counts returns the collection sizes (clients, invoices, quotes).
func (s *Store) Counts() (clients, invoices, quotes int) {
	return len(s.clients), len(s.invoices), len(s.quotes)
}
