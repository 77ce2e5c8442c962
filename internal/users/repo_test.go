package users

import (
	"testing"

	"github.com/ariefcatur/demo-backends/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByRole(t *testing.T) {
	r := MustSeedRepo()

	admins := r.ByRole("admin")
	require.Len(t, admins, 1)
	assert.Equal(t, 1, admins[0].ID)
	assert.Equal(t, "Alice Johnson", admins[0].Name)

	regular := r.ByRole("user")
	require.Len(t, regular, 2)
	assert.Equal(t, 2, regular[0].ID)
	assert.Equal(t, 3, regular[1].ID)

	assert.Empty(t, r.ByRole("ADMIN"))
}

func TestGetUser(t *testing.T) {
	r := MustSeedRepo()

	for _, want := range Seed() {
		got, err := r.Get(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.Get(0)
	assert.ErrorIs(t, err, dataset.ErrNotFound)
}

func TestNewRepoValidation(t *testing.T) {
	bad := Seed()
	bad[2].Email = "carol"
	_, err := NewRepo(bad)
	assert.Error(t, err)

	bad = Seed()
	bad[0].ID = 0
	_, err = NewRepo(bad)
	assert.Error(t, err)
}
