package models

import "time"

// SellerProduct is a marketplace listing created through the seller
// dashboard. It is converted into a Product (with the storefront's own
// platform entry) before it reaches search results.
type SellerProduct struct {
	ID          int       `json:"id" bson:"id"`
	SellerID    int       `json:"sellerId" bson:"sellerId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	Image       string    `json:"image" bson:"image"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
