// internal/seed/seed_test.go
package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	products, err := Load("")
	require.NoError(t, err)
	require.Len(t, products, 12)

	assert.Equal(t, "Organic Bananas", products[0].Name)
	assert.Equal(t, 1.25, products[0].Price)
	assert.Equal(t, "🍌", products[0].Image)
	assert.Len(t, products[1].Reviews, 2)
	assert.InDelta(t, 4.5, products[1].AverageRating(), 1e-9)
	assert.NotNil(t, products[2].Reviews)
	assert.Empty(t, products[2].Reviews)
	assert.Equal(t, "Meat", products[11].Category)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - id: 3
    name: Tea
    price: 2
    category: Drinks
    image: "🍵"
`), 0o644))

	products, err := Load(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tea", products[0].Name)
	assert.NotNil(t, products[0].Reviews)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		wantErr string
	}{
		{"duplicate product id", "products:\n  - {id: 1, name: A}\n  - {id: 1, name: B}\n", "duplicate id"},
		{"missing id", "products:\n  - {name: A}\n", "id must be positive"},
		{"negative price", "products:\n  - {id: 1, name: A, price: -3}\n", "price must be a non-negative number"},
		{"not a number price", "products:\n  - {id: 1, name: A, price: .nan}\n", "price must be a non-negative number"},
		{"rating too high", "products:\n  - {id: 1, name: A, reviews: [{id: 1, rating: 9}]}\n", "out of range"},
		{"rating zero", "products:\n  - {id: 1, name: A, reviews: [{id: 1, rating: 0}]}\n", "out of range"},
		{"duplicate review id", "products:\n  - {id: 1, name: A, reviews: [{id: 1, rating: 5}, {id: 1, rating: 4}]}\n", "duplicate review id"},
		{"duplicate review id across products", "products:\n  - {id: 1, name: A, reviews: [{id: 2, rating: 5}]}\n  - {id: 2, name: B, reviews: [{id: 2, rating: 4}]}\n", "duplicate review id"},
		{"review without id", "products:\n  - {id: 1, name: A, reviews: [{rating: 5}]}\n", "review id must be positive"},
		{"malformed yaml", "products: [", "failed to parse catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := Parse([]byte(tt.catalog))
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Nil(t, products)
		})
	}
}
