package orders

import (
	"fmt"
	"time"

	"github.com/ariefcatur/demo-backends/internal/money"
)

const dateLayout = "2006-01-02"

func Seed() []Order {
	return []Order{
		{ID: 1, UserID: 1, ProductID: 1, Quantity: 1, Total: money.MustParse("1299.99"), Status: StatusCompleted, Date: "2025-12-20"},
		{ID: 2, UserID: 2, ProductID: 2, Quantity: 2, Total: money.MustParse("59.98"), Status: StatusPending, Date: "2025-12-22"},
		{ID: 3, UserID: 1, ProductID: 3, Quantity: 3, Total: money.MustParse("38.97"), Status: StatusShipped, Date: "2025-12-23"},
		{ID: 4, UserID: 3, ProductID: 4, Quantity: 5, Total: money.MustParse("29.95"), Status: StatusCompleted, Date: "2025-12-24"},
	}
}

func validate(o Order) error {
	if o.ID <= 0 {
		return fmt.Errorf("order %d: id must be positive", o.ID)
	}
	if _, err := time.Parse(dateLayout, o.Date); err != nil {
		return fmt.Errorf("order %d: bad date %q: %w", o.ID, o.Date, err)
	}
	return nil
}
