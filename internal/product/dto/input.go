package dto

import (
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/shopspring/decimal"
)

// UpsertProductInput creates a product when ID is empty or unknown, and
// otherwise overwrites only the fields that are present. Nil pointers and a
// nil StockBySize mean "not provided".
type UpsertProductInput struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	SKU         *string           `json:"sku,omitempty"`
	Price       *decimal.Decimal  `json:"price,omitempty"`
	StockBySize model.StockBySize `json:"stockBySize,omitempty"`
}
