package models

import "time"

// CartLineItem binds a product snapshot, quantity, and chosen platform.
// The product is deep-copied at add time, never a live reference.
type CartLineItem struct {
	ID         int64   `json:"id" bson:"id"`
	Product    Product `json:"product" bson:"product"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	PlatformID string  `json:"platformId" bson:"platformId"`
}

// CartState is the whole cart. Total is derived from Items on every
// mutation and is never mutated independently.
type CartState struct {
	Items []CartLineItem `json:"items" bson:"items"`
	Total float64        `json:"total" bson:"total"`
}

// EmptyCart returns a fresh zero-value cart with a non-nil item slice so it
// serializes as {"items":[],"total":0}.
func EmptyCart() CartState {
	return CartState{Items: []CartLineItem{}, Total: 0}
}

// CheckoutSession represents a pre-order session for a cart.
type CheckoutSession struct {
	SessionID string         `json:"sessionId" bson:"sessionId"`
	Items     []CartLineItem `json:"items" bson:"items"`
	Address   string         `json:"address" bson:"address"`
	Total     float64        `json:"total" bson:"total"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// Order represents a finalized, simulated order.
type Order struct {
	OrderID       string         `json:"orderId" bson:"orderId"`
	SessionID     string         `json:"sessionId" bson:"sessionId"`
	Items         []CartLineItem `json:"items" bson:"items"`
	Address       string         `json:"address" bson:"address"`
	PaymentMethod string         `json:"paymentMethod" bson:"paymentMethod"`
	Total         float64        `json:"total" bson:"total"`
	Status        string         `json:"status" bson:"status"` // pending, confirmed, shipped, delivered
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
}
