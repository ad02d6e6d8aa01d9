package catalog

import (
	"math"
	"strings"

	"dealaxe/models"
)

// priceCeiling mirrors the search UI's slider maximum; a range reaching it
// means "no upper bound".
const priceCeiling = 100000

// ApplyFilters narrows products by the constraints the external API cannot
// enforce itself: brand keywords, price range over the cheapest platform,
// and delivery options.
func ApplyFilters(products []models.Product, filters models.SearchFilters) []models.Product {
	out := products

	if len(filters.Brands) > 0 {
		out = filterProducts(out, func(p models.Product) bool {
			text := strings.ToLower(p.Name + " " + p.Description)
			for _, brand := range filters.Brands {
				if strings.Contains(text, strings.ToLower(brand)) {
					return true
				}
			}
			return false
		})
	}

	if len(filters.PriceRange) == 2 {
		minPrice, maxPrice := filters.PriceRange[0], filters.PriceRange[1]
		if minPrice > 0 || maxPrice < priceCeiling {
			out = filterProducts(out, func(p models.Product) bool {
				price := lowestPrice(p)
				return (minPrice <= 0 || price >= minPrice) &&
					(maxPrice >= priceCeiling || price <= maxPrice)
			})
		}
	}

	if opts := filters.DeliveryOptions; opts != nil {
		if opts.CODAvailable {
			out = filterProducts(out, func(p models.Product) bool {
				return anyPlatform(p, func(pl models.Platform) bool { return pl.CODAvailable })
			})
		}
		if opts.FreeDelivery {
			out = filterProducts(out, func(p models.Product) bool {
				return anyPlatform(p, func(pl models.Platform) bool { return pl.FreeDelivery })
			})
		}
		if opts.ExpressDelivery {
			out = filterProducts(out, func(p models.Product) bool {
				return anyPlatform(p, func(pl models.Platform) bool {
					return strings.Contains(strings.ToLower(pl.DeliveryDate), "express")
				})
			})
		}
	}

	return out
}

func filterProducts(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func anyPlatform(p models.Product, match func(models.Platform) bool) bool {
	for _, pl := range p.Platforms {
		if match(pl) {
			return true
		}
	}
	return false
}

func lowestPrice(p models.Product) float64 {
	lowest := math.Inf(1)
	for _, pl := range p.Platforms {
		if pl.Price < lowest {
			lowest = pl.Price
		}
	}
	return lowest
}
