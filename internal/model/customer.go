package model

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	CI      string `json:"ci"` // identity document number
	Address string `json:"address"`
}
