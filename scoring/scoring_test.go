package scoring

import (
	"math"
	"testing"

	"dealaxe/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func product(id int, rating int, platforms ...models.Platform) models.Product {
	return models.Product{
		ID:        id,
		Name:      "p",
		Rating:    rating,
		Platforms: platforms,
	}
}

func TestScoreDefaultPreferencesScenario(t *testing.T) {
	a := product(1, 5, models.Platform{
		ID: "amazon", Price: 100, IsBestDeal: true,
		FreeDelivery: true, CODAvailable: true,
		ReturnPolicy: "30 days replacement",
	})
	b := product(2, 3, models.Platform{
		ID: "flipkart", Price: 200, IsBestDeal: true,
		ReturnPolicy: "7 days replacement",
	})
	set := []models.Product{a, b}
	prefs := models.DefaultPreferences()

	scoreA := Score(a, set, prefs)
	scoreB := Score(b, set, prefs)

	// Every weight is 3/5 = 0.6; A's factors sum to 5.8, B's to 2.3.
	if !almostEqual(scoreA, 3.48) {
		t.Errorf("score(A) = %v, want 3.48", scoreA)
	}
	if !almostEqual(scoreB, 1.38) {
		t.Errorf("score(B) = %v, want 1.38", scoreB)
	}
	if scoreA <= scoreB {
		t.Errorf("expected A to outscore B: %v vs %v", scoreA, scoreB)
	}
}

func TestPriceFactorDegenerateSet(t *testing.T) {
	set := []models.Product{
		product(1, 4, models.Platform{ID: "a", Price: 500}),
		product(2, 4, models.Platform{ID: "b", Price: 500}),
		product(3, 4, models.Platform{ID: "c", Price: 500}),
	}
	for _, p := range set {
		if got := PriceFactor(p.Platforms[0].Price, set); got != 1.0 {
			t.Errorf("product %d: price factor = %v, want 1.0", p.ID, got)
		}
	}
}

func TestScoreMonotonicInPrice(t *testing.T) {
	rival := product(2, 4, models.Platform{ID: "b", Price: 100})
	prefs := models.DefaultPreferences()

	prev := math.Inf(-1)
	for price := 300.0; price >= 100; price -= 50 {
		p := product(1, 4, models.Platform{ID: "a", Price: price})
		s := Score(p, []models.Product{p, rival}, prefs)
		if s < prev {
			t.Fatalf("score decreased from %v to %v when price dropped to %v", prev, s, price)
		}
		prev = s
	}
}

func TestRepresentativeOffer(t *testing.T) {
	first := models.Platform{ID: "first", Price: 10}
	best := models.Platform{ID: "best", Price: 20, IsBestDeal: true}

	p := product(1, 4, first, best)
	if got := RepresentativeOffer(p); got == nil || got.ID != "best" {
		t.Fatalf("expected best-deal platform, got %+v", got)
	}

	p = product(1, 4, first)
	if got := RepresentativeOffer(p); got == nil || got.ID != "first" {
		t.Fatalf("expected first platform, got %+v", got)
	}

	if got := RepresentativeOffer(product(1, 4)); got != nil {
		t.Fatalf("expected nil offer for product without platforms, got %+v", got)
	}
}

func TestReturnPolicyFactor(t *testing.T) {
	cases := []struct {
		policy string
		want   float64
	}{
		{"30 days replacement", 1.0},
		{"15 Days Return", 0.7},
		{"10 days return", 0.5},
		{"7 days replacement", 0.3},
		{"no returns", 0.1},
		{"", 0.1},
	}
	for _, tc := range cases {
		if got := ReturnPolicyFactor(tc.policy); got != tc.want {
			t.Errorf("ReturnPolicyFactor(%q) = %v, want %v", tc.policy, got, tc.want)
		}
	}
}

func TestScoreWithoutPlatformsIsZero(t *testing.T) {
	empty := product(1, 5)
	other := product(2, 4, models.Platform{ID: "a", Price: 100})
	set := []models.Product{empty, other}
	prefs := models.DefaultPreferences()

	if got := Score(empty, set, prefs); got != 0 {
		t.Errorf("score of platform-less product = %v, want 0", got)
	}
	// The platform-less member must not poison the other product's factor.
	if got := Score(other, set, prefs); got <= 0 {
		t.Errorf("score of normal product = %v, want > 0", got)
	}
}
