package dto

type InventoryFilters struct {
	ProductID string
	LowStock  bool
	Threshold int // with LowStock, counters at or below this value
}
