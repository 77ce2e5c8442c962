package products

import "github.com/ariefcatur/demo-backends/internal/money"

func Seed() []Product {
	return []Product{
		{ID: 1, Name: "Laptop Pro", Price: money.MustParse("1299.99"), Category: "electronics", Stock: 15},
		{ID: 2, Name: "Wireless Mouse", Price: money.MustParse("29.99"), Category: "electronics", Stock: 50},
		{ID: 3, Name: "Coffee Mug", Price: money.MustParse("12.99"), Category: "home", Stock: 100},
		{ID: 4, Name: "Notebook", Price: money.MustParse("5.99"), Category: "office", Stock: 200},
	}
}
