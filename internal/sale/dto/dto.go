package dto

type SaleFilters struct {
	CustomerID string
	Limit      int // newest first; 0 means all
}
