package invoicing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/etnz/invoicing/date"
)

// SeedDemoData populates an empty store with representative data: five
// clients, around three months of invoices, and two quotes. It is a no-op
// on a store that already has clients, so it runs at most once per data set.
//
// rnd drives the pseudo-random parts (client assignment, line items,
// statuses). Passing nil uses a time-seeded source, which makes the output
// non-reproducible across runs; tests pass a fixed seed.
func SeedDemoData(s *Store, rnd *rand.Rand) bool {
	if !s.IsEmpty() {
		return false
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	clients := []struct {
		data ClientData
		age  int // days since creation
	}{
		{ClientData{Name: "Acme Corporation", Email: "contact@acme.example", Phone: "+1 (555) 123-4567", Address: "123 Business St, New York, NY 10001"}, 90},
		{ClientData{Name: "Globex Corporation", Email: "info@globex.example", Phone: "+1 (555) 987-6543", Address: "456 Industry Ave, San Francisco, CA 94107"}, 60},
		{ClientData{Name: "Stark Industries", Email: "sales@stark.example", Phone: "+1 (555) 333-2222", Address: "789 Tech Blvd, Malibu, CA 90265"}, 45},
		{ClientData{Name: "Wayne Enterprises", Email: "contact@wayne.example", Phone: "+1 (555) 888-9999", Address: "1007 Mountain Drive, Gotham, NJ 07001"}, 30},
		{ClientData{Name: "Soylent Corp", Email: "info@soylent.example", Phone: "+1 (555) 444-3333", Address: "555 Food Processing Way, Chicago, IL 60601"}, 15},
	}
	clientIDs := make([]string, 0, len(clients))
	for _, c := range clients {
		id := s.AddClient(c.data)
		// Backdate the creation timestamp so the demo set looks lived-in.
		s.clients[len(s.clients)-1].CreatedAt = time.Now().Add(-time.Duration(c.age) * 24 * time.Hour)
		clientIDs = append(clientIDs, id)
	}

	// Three months of invoices, 3 to 5 per month.
	today := date.Today()
	for m := 2; m >= 0; m-- {
		month := date.NewRange(today.AddMonth(-m), date.Monthly)
		count := 3 + rnd.Intn(3)
		for j := 0; j < count; j++ {
			issue := month.From.Add(rnd.Intn(28))
			due := issue.Add(30)

			// Status inferred from the due date plus a random factor.
			var status InvoiceStatus
			if due.Before(today) {
				if rnd.Float64() > 0.7 {
					status = InvoiceOverdue
				} else {
					status = InvoicePaid
				}
			} else {
				if rnd.Float64() > 0.5 {
					status = InvoiceSent
				} else {
					status = InvoicePaid
				}
			}

			items := make([]LineItem, 1+rnd.Intn(5))
			for k := range items {
				items[k] = LineItem{
					ID:          NewID(),
					Description: fmt.Sprintf("Service %d", k+1),
					Quantity:    float64(1 + rnd.Intn(10)),
					UnitPrice:   float64(100 + rnd.Intn(1000)),
				}
			}

			s.AddInvoice(InvoiceData{
				ClientID:  clientIDs[rnd.Intn(len(clientIDs))],
				IssueDate: issue,
				DueDate:   due,
				LineItems: items,
				Notes:     "Thank you for your business!",
				Status:    status,
				TaxRate:   0.1,
			})
		}
	}

	// Two representative quotes: one pending, one ready to convert.
	s.AddQuote(QuoteData{
		ClientID:   clientIDs[0],
		IssueDate:  today.Add(-20),
		ValidUntil: today.Add(30),
		LineItems: []LineItem{
			{ID: NewID(), Description: "Website Development", Quantity: 1, UnitPrice: 5000},
			{ID: NewID(), Description: "SEO Setup", Quantity: 1, UnitPrice: 1500},
		},
		Notes:   "This quote is valid for 30 days.",
		Status:  QuoteSent,
		TaxRate: 0.1,
	})
	s.AddQuote(QuoteData{
		ClientID:   clientIDs[2],
		IssueDate:  today.Add(-15),
		ValidUntil: today.Add(15),
		LineItems: []LineItem{
			{ID: NewID(), Description: "Mobile App Development", Quantity: 1, UnitPrice: 12000},
		},
		Notes:   "Payment terms: 50% upfront, 50% upon completion.",
		Status:  QuoteAccepted,
		TaxRate: 0.1,
	})

	return true
}
