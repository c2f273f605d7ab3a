package dto

import "github.com/shopspring/decimal"

// SaleItemInput is one cart line. Price is what the cashier charged when
// the line was added and is required; Name defaults to the catalog name.
type SaleItemInput struct {
	ProductID string           `json:"productId"`
	Name      string           `json:"name,omitempty"`
	Size      string           `json:"size"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

type RecordSaleInput struct {
	Items            []SaleItemInput `json:"items"`
	CustomerID       string          `json:"customerId,omitempty"`
	PaymentMethod    string          `json:"paymentMethod"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}
