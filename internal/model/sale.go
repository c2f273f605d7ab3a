package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is a cart line as it was at checkout. Name and Price are
// snapshots and never follow later catalog edits.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Sale struct {
	ID               string          `json:"id"`
	Items            []SaleItem      `json:"items"`
	CustomerID       string          `json:"customerId,omitempty"`
	PaymentMethod    string          `json:"paymentMethod"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	Notes            string          `json:"notes"`
	Date             time.Time       `json:"date"`
	Total            decimal.Decimal `json:"total"`
}

func (s Sale) Quantity() int {
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

func (s Sale) Clone() Sale {
	items := make([]SaleItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// SaleTotal sums price x quantity over the given lines.
func SaleTotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
