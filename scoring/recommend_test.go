package scoring

import (
	"testing"

	"dealaxe/models"
)

func selected(p models.Product) models.SelectedProduct {
	return models.SelectedProduct{Product: p, Selected: true}
}

func TestRecommendEmptyInput(t *testing.T) {
	if id, ok := Recommend(nil, models.DefaultPreferences()); ok || id != 0 {
		t.Fatalf("Recommend(nil) = (%d, %v), want (0, false)", id, ok)
	}
}

func TestRecommendPicksHighestScore(t *testing.T) {
	good := product(1, 5, models.Platform{
		ID: "a", Price: 100, FreeDelivery: true, CODAvailable: true,
		ReturnPolicy: "30 days replacement", IsBestDeal: true,
	})
	bad := product(2, 3, models.Platform{
		ID: "b", Price: 200, ReturnPolicy: "7 days replacement", IsBestDeal: true,
	})

	id, ok := Recommend([]models.SelectedProduct{selected(bad), selected(good)}, models.DefaultPreferences())
	if !ok || id != 1 {
		t.Fatalf("Recommend = (%d, %v), want (1, true)", id, ok)
	}
}

func TestRecommendTieKeepsFirst(t *testing.T) {
	// Identical offers produce identical scores; the earlier product wins.
	offer := models.Platform{ID: "a", Price: 150, FreeDelivery: true, ReturnPolicy: "30 days"}
	p1 := product(7, 4, offer)
	p2 := product(9, 4, offer)

	id, ok := Recommend([]models.SelectedProduct{selected(p1), selected(p2)}, models.DefaultPreferences())
	if !ok || id != 7 {
		t.Fatalf("Recommend = (%d, %v), want first product 7", id, ok)
	}

	id, ok = Recommend([]models.SelectedProduct{selected(p2), selected(p1)}, models.DefaultPreferences())
	if !ok || id != 9 {
		t.Fatalf("Recommend after reorder = (%d, %v), want first product 9", id, ok)
	}
}

func TestScoresKeyedByProductID(t *testing.T) {
	a := product(1, 5, models.Platform{ID: "a", Price: 100, IsBestDeal: true, ReturnPolicy: "30 days"})
	b := product(2, 2, models.Platform{ID: "b", Price: 300, IsBestDeal: true, ReturnPolicy: "7 days"})

	scores := Scores([]models.SelectedProduct{selected(a), selected(b)}, models.DefaultPreferences())
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[1] <= scores[2] {
		t.Errorf("expected product 1 to outscore product 2: %v vs %v", scores[1], scores[2])
	}
}
