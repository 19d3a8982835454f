// internal/models/order.go
package models

import "time"

type ShippingInfo struct {
	FullName string `json:"full_name" validate:"required,notblank"`
	Address  string `json:"address" validate:"required,notblank"`
	City     string `json:"city" validate:"required,notblank"`
	ZipCode  string `json:"zip_code" validate:"required,notblank"`
}

type Order struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	ShippingInfo  ShippingInfo  `json:"shipping_info"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"status"`
}

func (o Order) Clone() Order {
	out := o
	out.Items = make([]CartItem, len(o.Items))
	for i, item := range o.Items {
		out.Items[i] = item.Clone()
	}
	return out
}
