package catalog

import (
	"strings"

	"dealaxe/models"
)

// MockProducts is the seed catalog served when the external search API is
// unreachable. Category matching is case-insensitive.
func MockProducts(category string) []models.Product {
	if category == "" {
		category = "electronics"
	}
	category = strings.ToLower(category)

	matched := []models.Product{}
	for _, p := range mockCatalog() {
		if strings.ToLower(p.Category) == category {
			matched = append(matched, p)
		}
	}
	return matched
}

func mockCatalog() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Samsung Galaxy S22 Ultra",
			Description: "Top-of-the-line smartphone with advanced camera system",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1605464315513-cbcb36c89961",
			Rating:      4,
			ReviewCount: 432,
			Platforms: []models.Platform{
				{
					ID: "amazon", Name: "Amazon", Price: 899.99,
					CODAvailable: true, FreeDelivery: true,
					DeliveryDate: "Aug 25", ReturnPolicy: "10 days replacement",
				},
				{
					ID: "flipkart", Name: "Flipkart", Price: 849.99,
					CODAvailable: true, FreeDelivery: true,
					DeliveryDate: "Aug 25", ReturnPolicy: "10 days replacement",
					IsBestDeal: true,
				},
				{
					ID: "bestbuy", Name: "BestBuy", Price: 899.99,
					CODAvailable: true, FreeDelivery: true,
					DeliveryDate: "Aug 25", ReturnPolicy: "10 days replacement",
				},
			},
		},
		{
			ID:          2,
			Name:        "Google Pixel 7 Pro",
			Description: "Google's flagship smartphone with the best camera",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab",
			Rating:      4,
			ReviewCount: 257,
			Platforms: []models.Platform{
				{
					ID: "amazon", Name: "Amazon", Price: 799.99,
					FreeDelivery: true,
					DeliveryDate: "Aug 24", ReturnPolicy: "30 days replacement",
					IsBestDeal: true,
				},
				{
					ID: "bestbuy", Name: "BestBuy", Price: 849.99,
					FreeDelivery: true,
					DeliveryDate: "Aug 26", ReturnPolicy: "15 days replacement",
				},
			},
		},
		{
			ID:          3,
			Name:        "Apple iPhone 14 Pro",
			Description: "Apple's premium iPhone with Dynamic Island and A16 Bionic chip",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1607936854279-55e8a4c64888",
			Rating:      5,
			ReviewCount: 512,
			Platforms: []models.Platform{
				{
					ID: "apple", Name: "Apple Store", Price: 999.99,
					FreeDelivery: true,
					DeliveryDate: "Aug 22", ReturnPolicy: "14 days replacement",
					IsBestDeal: true,
				},
				{
					ID: "amazon", Name: "Amazon", Price: 999.99,
					FreeDelivery: true,
					DeliveryDate: "Aug 27", ReturnPolicy: "30 days replacement",
				},
			},
		},
	}
}
