package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	catalog := sampleCatalog()

	t.Run("Side by side", func(t *testing.T) {
		rows, err := Compare(catalog[0], catalog[1])
		require.NoError(t, err)
		require.Len(t, rows, 11)

		byLabel := map[string]CompareRow{}
		for _, r := range rows {
			byLabel[r.Label] = r
		}

		assert.Equal(t, "₹64,999", byLabel["Price"].Left)
		assert.Equal(t, 2, byLabel["Price"].Better)
		assert.Equal(t, "8 GB", byLabel["RAM"].Left)
		assert.Equal(t, 1, byLabel["RAM"].Better)
		assert.Equal(t, 1, byLabel["Storage"].Better)
		assert.Equal(t, 0, byLabel["Brand"].Better)
		assert.Equal(t, "13%", byLabel["Discount"].Left)
	})

	t.Run("Same phone", func(t *testing.T) {
		_, err := Compare(catalog[0], catalog[0])
		assert.ErrorIs(t, err, ErrSameProduct)
	})

	t.Run("Missing selection", func(t *testing.T) {
		_, err := Compare(catalog[0], Product{})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
