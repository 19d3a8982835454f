// internal/services/order_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/grocer/internal/models"
)

var testShipping = models.ShippingInfo{
	FullName: "Ada Lovelace",
	Address:  "12 Analytical Way",
	City:     "London",
	ZipCode:  "N1 9GU",
}

func TestPlaceOrderScenario(t *testing.T) {
	catalog := NewCatalogService(testSeed())
	cart := NewCartService()
	notifier := &recordingNotifier{}
	orders := NewOrderService(cart, notifier)
	orders.now = func() time.Time { return time.UnixMilli(1700000123456) }

	cart.AddToCart(mustProduct(catalog, 1))
	cart.AddToCart(mustProduct(catalog, 1))
	cart.AddToCart(mustProduct(catalog, 2))
	before := cart.Items()
	totalBefore := cart.Total()

	order, err := orders.PlaceOrder(context.Background(), testShipping, models.PaymentMethodCreditCard)
	require.NoError(t, err)

	assert.Equal(t, "#123456", order.ID)
	assert.InDelta(t, 5.00, order.Total, 1e-9)
	assert.Equal(t, totalBefore, order.Total)
	assert.Equal(t, before, order.Items)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, testShipping, order.ShippingInfo)
	assert.Equal(t, time.UnixMilli(1700000123456), order.Date)

	assert.Empty(t, cart.Items())
	require.Len(t, orders.Orders(), 1)
	require.Len(t, notifier.placed(), 1)
	assert.Equal(t, order.ID, notifier.placed()[0].ID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	orders := NewOrderService(NewCartService(), nil)

	_, err := orders.PlaceOrder(context.Background(), testShipping, models.PaymentMethodPayPal)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.Orders())
}

func TestOrderSnapshotIsIndependentOfCatalog(t *testing.T) {
	catalog := NewCatalogService(testSeed())
	cart := NewCartService()
	orders := NewOrderService(cart, nil)

	cart.AddToCart(mustProduct(catalog, 7))
	order, err := orders.PlaceOrder(context.Background(), testShipping, models.PaymentMethodCreditCard)
	require.NoError(t, err)

	catalog.UpdateProduct(7, models.ProductFields{Name: "Oat Milk", Price: 4.10, Category: "Dairy", Image: "🥛"})
	catalog.RemoveProduct(7)

	stored, err := orders.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk", stored.Items[0].Name)
	assert.InDelta(t, 3.50, stored.Total, 1e-9)
}

func TestOrderIDsStayUniqueWithinTheSameMillisecond(t *testing.T) {
	catalog := NewCatalogService(testSeed())
	cart := NewCartService()
	orders := NewOrderService(cart, nil)
	orders.now = func() time.Time { return time.UnixMilli(1700000999999) }

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		cart.AddToCart(mustProduct(catalog, 1))
		order, err := orders.PlaceOrder(context.Background(), testShipping, models.PaymentMethodCreditCard)
		require.NoError(t, err)
		ids[order.ID] = true
	}
	assert.Len(t, ids, 3)
	assert.True(t, ids["#999999"])
}

func TestGetOrderNotFound(t *testing.T) {
	orders := NewOrderService(NewCartService(), nil)
	_, err := orders.GetOrder("#000000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
