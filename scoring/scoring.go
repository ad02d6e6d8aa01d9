package scoring

import (
	"math"
	"strings"

	"dealaxe/models"
)

// SellerReputationScore is a fixed placeholder; no real reputation signal
// is available yet, so every seller scores the same.
const SellerReputationScore = 0.8

const (
	factorWhenFree    = 1.0
	factorWhenNotFree = 0.3
)

// RepresentativeOffer picks the platform used to represent a product in
// scoring: the best-deal-flagged one, or the first listed. Returns nil when
// the product has no platforms.
func RepresentativeOffer(p models.Product) *models.Platform {
	for i := range p.Platforms {
		if p.Platforms[i].IsBestDeal {
			return &p.Platforms[i]
		}
	}
	if len(p.Platforms) > 0 {
		return &p.Platforms[0]
	}
	return nil
}

// representativePrice is the price used in the set-wide min/max scan. A
// product with no platforms contributes +Inf so it can never win on price.
func representativePrice(p models.Product) float64 {
	offer := RepresentativeOffer(p)
	if offer == nil {
		return math.Inf(1)
	}
	return offer.Price
}

// PriceFactor normalizes an offer price against the comparison set's price
// spread: 1 at the lowest price, 0 at the highest, 1 for everyone when all
// prices are equal.
func PriceFactor(price float64, set []models.Product) float64 {
	lowest := math.Inf(1)
	highest := math.Inf(-1)
	for _, p := range set {
		rp := representativePrice(p)
		if rp < lowest {
			lowest = rp
		}
		if rp > highest {
			highest = rp
		}
	}
	spread := highest - lowest
	if spread == 0 {
		return 1
	}
	return 1 - (price-lowest)/spread
}

// ReturnPolicyFactor scores a free-text return policy by substring match,
// longest window first. Crude, but kept isolated so a structured field can
// replace it without touching the rest of the engine.
func ReturnPolicyFactor(policy string) float64 {
	lower := strings.ToLower(policy)
	switch {
	case strings.Contains(lower, "30"):
		return 1.0
	case strings.Contains(lower, "15"):
		return 0.7
	case strings.Contains(lower, "10"):
		return 0.5
	case strings.Contains(lower, "7"):
		return 0.3
	default:
		return 0.1
	}
}

func deliveryFactor(offer models.Platform) float64 {
	if offer.FreeDelivery {
		return factorWhenFree
	}
	return factorWhenNotFree
}

func codFactor(offer models.Platform) float64 {
	if offer.CODAvailable {
		return factorWhenFree
	}
	return factorWhenNotFree
}

func ratingFactor(p models.Product) float64 {
	return float64(p.Rating) / 5
}

// Score computes the weighted desirability of one product relative to the
// comparison set it sits in. The result is not normalized: its scale depends
// on the preference weights and is only meaningful against other scores from
// the same set.
func Score(p models.Product, set []models.Product, prefs models.UserPreferences) float64 {
	offer := RepresentativeOffer(p)
	if offer == nil {
		return 0
	}

	factors := [6]float64{
		PriceFactor(offer.Price, set),
		deliveryFactor(*offer),
		codFactor(*offer),
		ReturnPolicyFactor(offer.ReturnPolicy),
		ratingFactor(p),
		SellerReputationScore,
	}
	weights := [6]int{
		prefs.PriceImportance,
		prefs.DeliveryImportance,
		prefs.CODImportance,
		prefs.ReturnPolicyImportance,
		prefs.RatingImportance,
		prefs.SellerReputationImportance,
	}

	var total float64
	for i, f := range factors {
		total += f * (float64(weights[i]) / 5)
	}
	return total
}
