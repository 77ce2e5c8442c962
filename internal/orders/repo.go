package orders

import (
	"github.com/ariefcatur/demo-backends/internal/dataset"
)

type Repo struct{ store *dataset.Store[Order] }

// NewRepo validates every record before building the store.
func NewRepo(records []Order) (*Repo, error) {
	for _, o := range records {
		if err := validate(o); err != nil {
			return nil, err
		}
	}
	s, err := dataset.New(records...)
	if err != nil {
		return nil, err
	}
	return &Repo{store: s}, nil
}

// MustSeedRepo builds the repo over Seed and panics if the literals are bad.
func MustSeedRepo() *Repo {
	r, err := NewRepo(Seed())
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Repo) List() []Order { return r.store.List() }

// Get returns dataset.ErrNotFound (wrapped) when no order has the id.
func (r *Repo) Get(id int) (Order, error) { return r.store.Get(id) }

func (r *Repo) ByUser(userID int) []Order {
	return r.store.Filter(func(o Order) bool { return o.UserID == userID })
}

func (r *Repo) ByStatus(status string) []Order {
	return r.store.Filter(func(o Order) bool { return string(o.Status) == status })
}
