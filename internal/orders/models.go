package orders

import "github.com/ariefcatur/demo-backends/internal/money"

// Order references a user and a product of the sibling services by id only.
// Those references are never checked.
type Order struct {
	ID        int          `json:"id"`
	UserID    int          `json:"user_id"`
	ProductID int          `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Total     money.Amount `json:"total"`
	Status    Status       `json:"status"`
	Date      string       `json:"date"` // YYYY-MM-DD
}

func (o Order) RecordID() int { return o.ID }
