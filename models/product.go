package models

import "time"

// Platform is one retailer's listing (price + terms) for a product.
type Platform struct {
	ID            string   `json:"id" bson:"id"`
	Name          string   `json:"name" bson:"name"`
	Price         float64  `json:"price" bson:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	CODAvailable  bool     `json:"codAvailable" bson:"codAvailable"`
	FreeDelivery  bool     `json:"freeDelivery" bson:"freeDelivery"`
	DeliveryDate  string   `json:"deliveryDate" bson:"deliveryDate"`
	ReturnPolicy  string   `json:"returnPolicy" bson:"returnPolicy"`
	IsBestDeal    bool     `json:"isBestDeal,omitempty" bson:"isBestDeal,omitempty"`
}

// Product is a storefront product together with every platform that lists it.
type Product struct {
	ID          int        `json:"id" bson:"id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Category    string     `json:"category" bson:"category"`
	Image       string     `json:"image" bson:"image"`
	Rating      int        `json:"rating" bson:"rating"`
	ReviewCount int        `json:"reviewCount" bson:"reviewCount"`
	Platforms   []Platform `json:"platforms" bson:"platforms"`
	CreatedAt   time.Time  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// SelectedProduct marks comparison-set membership without removing the
// product from the backing list.
type SelectedProduct struct {
	Product  `bson:",inline"`
	Selected bool `json:"selected" bson:"selected"`
}

// DeliveryOptions narrows search results by fulfilment terms.
type DeliveryOptions struct {
	CODAvailable    bool `json:"codAvailable,omitempty"`
	FreeDelivery    bool `json:"freeDelivery,omitempty"`
	ExpressDelivery bool `json:"expressDelivery,omitempty"`
}

// SearchFilters holds the optional constraints a search request may carry.
// PriceRange is [min, max] when present.
type SearchFilters struct {
	Category        string           `json:"category,omitempty"`
	PriceRange      []float64        `json:"priceRange,omitempty"`
	Brands          []string         `json:"brands,omitempty"`
	DeliveryOptions *DeliveryOptions `json:"deliveryOptions,omitempty"`
	Rating          int              `json:"rating,omitempty"`
}
