package invoicing

import (
	"math/rand"
	"testing"
)

func TestSeedDemoData(t *testing.T) {
	s := NewStore()
	if !SeedDemoData(s, rand.New(rand.NewSource(1))) {
		t.Fatal("SeedDemoData on an empty store = false, want true")
	}

	clients, invoices, quotes := s.Counts()
	if clients != 5 {
		t.Errorf("seeded %d clients, want 5", clients)
	}
	if invoices < 9 || invoices > 15 {
		t.Errorf("seeded %d invoices, want 3 to 5 per month over 3 months", invoices)
	}
	if quotes != 2 {
		t.Errorf("seeded %d quotes, want 2", quotes)
	}

	for inv := range s.Invoices() {
		if _, ok := s.Client(inv.ClientID); !ok {
			t.Errorf("invoice %s references unknown client %q", inv.Number, inv.ClientID)
		}
		if len(inv.LineItems) == 0 {
			t.Errorf("invoice %s has no line items", inv.Number)
		}
		if inv.TotalAmount != Subtotal(inv.LineItems) {
			t.Errorf("invoice %s total %v does not match its items", inv.Number, inv.TotalAmount)
		}
		if inv.DueDate != inv.IssueDate.Add(30) {
			t.Errorf("invoice %s due %v, want issue+30d", inv.Number, inv.DueDate)
		}
	}
}

func TestSeedDemoData_refusesNonEmpty(t *testing.T) {
	s := NewStore()
	s.AddClient(ClientData{Name: "Existing"})

	if SeedDemoData(s, rand.New(rand.NewSource(1))) {
		t.Error("SeedDemoData on a non-empty store = true, want false")
	}
	if clients, _, _ := s.Counts(); clients != 1 {
		t.Errorf("seeding a non-empty store changed it: %d clients", clients)
	}
}

func TestSeedDemoData_deterministicWithSeed(t *testing.T) {
	a, b := NewStore(), NewStore()
	SeedDemoData(a, rand.New(rand.NewSource(42)))
	SeedDemoData(b, rand.New(rand.NewSource(42)))

	ca, ia, qa := a.Counts()
	cb, ib, qb := b.Counts()
	if ca != cb || ia != ib || qa != qb {
		t.Errorf("same seed produced different shapes: %d/%d/%d vs %d/%d/%d", ca, ia, qa, cb, ib, qb)
	}
}
