package products

import (
	"fmt"

	"github.com/ariefcatur/demo-backends/internal/dataset"
)

type Repo struct{ store *dataset.Store[Product] }

func NewRepo(records []Product) (*Repo, error) {
	for _, p := range records {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %d: id must be positive", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %d: negative price %s", p.ID, p.Price)
		}
	}
	s, err := dataset.New(records...)
	if err != nil {
		return nil, err
	}
	return &Repo{store: s}, nil
}

func MustSeedRepo() *Repo {
	r, err := NewRepo(Seed())
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Repo) List() []Product { return r.store.List() }

func (r *Repo) Get(id int) (Product, error) { return r.store.Get(id) }

// ByCategory matches the category exactly, case included.
func (r *Repo) ByCategory(category string) []Product {
	return r.store.Filter(func(p Product) bool { return p.Category == category })
}
