package model

// StockLevel is one size counter of one product, flattened for listing.
type StockLevel struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
}
