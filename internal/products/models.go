package products

import "github.com/ariefcatur/demo-backends/internal/money"

type Product struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Price    money.Amount `json:"price"`
	Category string       `json:"category"`
	Stock    int          `json:"stock"`
}

func (p Product) RecordID() int { return p.ID }
