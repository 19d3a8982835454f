// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/grocer/internal/models"
)

func TestFilterByCategory(t *testing.T) {
	catalog := NewCatalogService(testSeed())

	assert.Len(t, catalog.FilterByCategory(models.CategoryAll), 4)

	fruits := catalog.FilterByCategory("Fruits")
	require.Len(t, fruits, 2)
	assert.Equal(t, "Organic Bananas", fruits[0].Name)
	assert.Equal(t, "Crisp Apples", fruits[1].Name)

	assert.Empty(t, catalog.FilterByCategory("fruits"))
	assert.Empty(t, catalog.FilterByCategory("Bakery"))
}

func TestCategoriesKeepFirstSeenOrder(t *testing.T) {
	catalog := NewCatalogService(testSeed())
	assert.Equal(t, []string{"All", "Fruits", "Vegetables", "Dairy"}, catalog.Categories())
}

func TestAddProductAssignsFreshIDAndEmptyReviews(t *testing.T) {
	catalog := NewCatalogService(testSeed())

	first := catalog.AddProduct(models.ProductFields{Name: "Croissants", Price: 3, Category: "Bakery", Image: "🥐"})
	second := catalog.AddProduct(models.ProductFields{Name: "Croissants", Price: 3, Category: "Bakery", Image: "🥐"})

	assert.Greater(t, first.ID, int64(7))
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotNil(t, first.Reviews)
	assert.Empty(t, first.Reviews)
	assert.Len(t, catalog.Products(), 6)
	assert.Equal(t, []string{"All", "Fruits", "Vegetables", "Dairy", "Bakery"}, catalog.Categories())
}

func TestUpdateProduct(t *testing.T) {
	catalog := NewCatalogService(testSeed())

	updated, ok := catalog.UpdateProduct(2, models.ProductFields{Name: "Gala Apples", Price: 2.95, Category: "Fruits", Image: "🍏"})
	require.True(t, ok)
	assert.Equal(t, int64(2), updated.ID)
	assert.Equal(t, "Gala Apples", updated.Name)
	assert.Len(t, updated.Reviews, 2, "reviews survive an edit")

	before := catalog.Products()
	_, ok = catalog.UpdateProduct(999, models.ProductFields{Name: "Ghost"})
	assert.False(t, ok)
	assert.Equal(t, before, catalog.Products())
}

func TestRemoveProduct(t *testing.T) {
	catalog := NewCatalogService(testSeed())

	assert.True(t, catalog.RemoveProduct(4))
	assert.False(t, catalog.RemoveProduct(4))
	_, ok := catalog.GetProduct(4)
	assert.False(t, ok)
	assert.Len(t, catalog.Products(), 3)
}

func TestAddReview(t *testing.T) {
	catalog := NewCatalogService(testSeed())

	review, ok := catalog.AddReview(4, CreateReviewRequest{Author: "David", Rating: 5, Comment: "Kids love it"})
	require.True(t, ok)
	assert.Greater(t, review.ID, int64(3))

	product := mustProduct(catalog, 4)
	require.Len(t, product.Reviews, 1)
	assert.Equal(t, review, product.Reviews[0])

	_, ok = catalog.AddReview(999, CreateReviewRequest{Author: "X", Rating: 1, Comment: "y"})
	assert.False(t, ok)
}

func TestAverageRating(t *testing.T) {
	catalog := NewCatalogService(testSeed())

	assert.Equal(t, 4.5, mustProduct(catalog, 2).AverageRating())
	assert.Equal(t, 5.0, mustProduct(catalog, 1).AverageRating())
	assert.Equal(t, 0.0, mustProduct(catalog, 4).AverageRating())
}

func TestReturnedProductsAreCopies(t *testing.T) {
	catalog := NewCatalogService(testSeed())

	p := mustProduct(catalog, 1)
	p.Name = "Mutated"
	p.Reviews[0].Rating = 1

	fresh := mustProduct(catalog, 1)
	assert.Equal(t, "Organic Bananas", fresh.Name)
	assert.Equal(t, 5, fresh.Reviews[0].Rating)
}
