package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/invoicing"
)

// itemsFlag collects repeated -item flags of the form
// "description:quantity:unit price". The description may itself contain
// colons; the last two fields are always the numbers.
type itemsFlag []invoicing.LineItem

func (i *itemsFlag) String() string {
	var parts []string
	for _, item := range *i {
		parts = append(parts, fmt.Sprintf("%s:%g:%g", item.Description, item.Quantity, item.UnitPrice))
	}
	return strings.Join(parts, ", ")
}

func (i *itemsFlag) Set(value string) error {
	fields := strings.Split(value, ":")
	if len(fields) < 3 {
		return fmt.Errorf("item %q: want \"description:quantity:unit price\"", value)
	}
	qty, err := strconv.ParseFloat(fields[len(fields)-2], 64)
	if err != nil {
		return fmt.Errorf("item %q: invalid quantity: %w", value, err)
	}
	price, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return fmt.Errorf("item %q: invalid unit price: %w", value, err)
	}
	*i = append(*i, invoicing.LineItem{
		ID:          invoicing.NewID(),
		Description: strings.Join(fields[:len(fields)-2], ":"),
		Quantity:    qty,
		UnitPrice:   price,
	})
	return nil
}
