package users

import (
	"fmt"
	"strings"

	"github.com/ariefcatur/demo-backends/internal/dataset"
)

type Repo struct{ store *dataset.Store[User] }

func NewRepo(records []User) (*Repo, error) {
	for _, u := range records {
		if u.ID <= 0 {
			return nil, fmt.Errorf("user %d: id must be positive", u.ID)
		}
		if !strings.Contains(u.Email, "@") {
			return nil, fmt.Errorf("user %d: bad email %q", u.ID, u.Email)
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

func (r *Repo) List() []User { return r.store.List() }

func (r *Repo) Get(id int) (User, error) { return r.store.Get(id) }

func (r *Repo) ByRole(role string) []User {
	return r.store.Filter(func(u User) bool { return u.Role == role })
}
