package dto

type AdjustInventoryInput struct {
	ProductID      string `json:"productId"`
	Size           string `json:"size"`
	QuantityChange int    `json:"quantityChange"`
	Reason         string `json:"reason,omitempty"` // 'restock', 'count', 'damage'
}
