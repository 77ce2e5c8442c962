package orders

type Status string

// Statuses present in the seed. Filtering accepts any string, so an unknown
// status is simply an empty result.
const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusCompleted Status = "completed"
)
