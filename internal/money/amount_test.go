package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountMarshalsAsNumber(t *testing.T) {
	b, err := json.Marshal(struct {
		Price Amount `json:"price"`
	}{Price: MustParse("29.99")})
	require.NoError(t, err)
	assert.Equal(t, `{"price":29.99}`, string(b))
}

func TestAmountUnmarshal(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`1299.99`), &a))
	assert.Equal(t, "1299.99", a.String())

	require.NoError(t, json.Unmarshal([]byte(`"5.99"`), &a))
	assert.True(t, a.Equal(decimal.RequireFromString("5.99")))
}

func TestMustParsePanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { MustParse("abc") })
}
