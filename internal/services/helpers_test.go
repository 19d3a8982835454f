// internal/services/helpers_test.go
package services

import (
	"context"
	"sync"

	"github.com/javajoker/grocer/internal/models"
)

func testSeed() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Organic Bananas", Price: 1.25, Category: "Fruits", Image: "🍌",
			Reviews: []models.Review{{ID: 1, Author: "Alice", Rating: 5, Comment: "So fresh and sweet!"}}},
		{ID: 2, Name: "Crisp Apples", Price: 2.50, Category: "Fruits", Image: "🍎",
			Reviews: []models.Review{
				{ID: 2, Author: "Bob", Rating: 4, Comment: "Great for snacking."},
				{ID: 3, Author: "Charlie", Rating: 5, Comment: "Perfectly crisp."},
			}},
		{ID: 4, Name: "Broccoli Florets", Price: 2.75, Category: "Vegetables", Image: "🥦"},
		{ID: 7, Name: "Whole Milk", Price: 3.50, Category: "Dairy", Image: "🥛"},
	}
}

func mustProduct(c *CatalogService, id int64) models.Product {
	p, ok := c.GetProduct(id)
	if !ok {
		panic("missing seeded product")
	}
	return p
}

type recordingNotifier struct {
	mu     sync.Mutex
	orders []models.Order
}

func (n *recordingNotifier) OrderPlaced(_ context.Context, order models.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, order)
}

func (n *recordingNotifier) placed() []models.Order {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Order(nil), n.orders...)
}
