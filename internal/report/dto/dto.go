package dto

import (
	"time"

	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	SaleCount     int             `json:"saleCount"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	TotalStock    int             `json:"totalStock"`
	CustomerCount int             `json:"customerCount"`
	RecentSales   []RecentSale    `json:"recentSales"`
}

type RecentSale struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName"`
	Quantity      int             `json:"quantity"`
	PaymentMethod string          `json:"paymentMethod"`
	Total         decimal.Decimal `json:"total"`
}

type ProductStock struct {
	ProductID   string            `json:"productId"`
	Name        string            `json:"name"`
	Total       int               `json:"total"`
	InStock     []string          `json:"inStock"`
	StockBySize model.StockBySize `json:"stockBySize"`
}
