package scoring

import "dealaxe/models"

// Recommend returns the id of the highest-scoring product among the selected
// entries, or (0, false) when nothing is selected. Ties keep the earliest
// product in input order; the fold starts from a {0, -1} sentinel so any
// real score wins over the sentinel. Pure: recomputed on every call.
func Recommend(selected []models.SelectedProduct, prefs models.UserPreferences) (int, bool) {
	if len(selected) == 0 {
		return 0, false
	}

	set := make([]models.Product, 0, len(selected))
	for _, sp := range selected {
		set = append(set, sp.Product)
	}

	bestID, bestScore := 0, -1.0
	for _, sp := range selected {
		if s := Score(sp.Product, set, prefs); s > bestScore {
			bestID, bestScore = sp.ID, s
		}
	}
	return bestID, true
}

// Scores returns the per-product scores for a selected set, keyed by product
// id, so the comparison view can render every score alongside the
// recommendation badge.
func Scores(selected []models.SelectedProduct, prefs models.UserPreferences) map[int]float64 {
	set := make([]models.Product, 0, len(selected))
	for _, sp := range selected {
		set = append(set, sp.Product)
	}
	out := make(map[int]float64, len(selected))
	for _, sp := range selected {
		out[sp.ID] = Score(sp.Product, set, prefs)
	}
	return out
}
