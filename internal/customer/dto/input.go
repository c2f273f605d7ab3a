package dto

// UpsertCustomerInput follows the same create-or-merge rules as products:
// nil optional fields are left untouched on update.
type UpsertCustomerInput struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	CI      *string `json:"ci,omitempty"`
	Address *string `json:"address,omitempty"`
}
