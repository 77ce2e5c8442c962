package products

import (
	"encoding/json"
	"testing"

	"github.com/ariefcatur/demo-backends/internal/dataset"
	"github.com/ariefcatur/demo-backends/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProduct(t *testing.T) {
	r := MustSeedRepo()

	p, err := r.Get(2)
	require.NoError(t, err)
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":2,"name":"Wireless Mouse","price":29.99,"category":"electronics","stock":50}`,
		string(b))

	_, err = r.Get(999)
	assert.ErrorIs(t, err, dataset.ErrNotFound)
}

func TestByCategory(t *testing.T) {
	r := MustSeedRepo()

	electronics := r.ByCategory("electronics")
	require.Len(t, electronics, 2)
	assert.Equal(t, "Laptop Pro", electronics[0].Name)
	assert.Equal(t, "Wireless Mouse", electronics[1].Name)

	assert.Empty(t, r.ByCategory("nonexistent"))
	assert.Empty(t, r.ByCategory("Electronics"))
}

func TestListOrder(t *testing.T) {
	all := MustSeedRepo().List()
	require.Len(t, all, 4)
	for i, p := range all {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestNewRepoRejectsNegativePrice(t *testing.T) {
	bad := Seed()
	bad[0].Price = money.Amount{Decimal: decimal.NewFromInt(-1)}
	_, err := NewRepo(bad)
	assert.Error(t, err)
}
