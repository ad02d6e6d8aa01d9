// Package prefs holds the per-session comparison preferences: the six
// importance weights that drive scoring, and a legacy boolean document kept
// as a second, independent blob (its consumer is unspecified; the schemas
// are deliberately not unified).
package prefs

import (
	"context"

	"dealaxe/kvstore"
	"dealaxe/models"
)

const (
	minImportance = 1
	maxImportance = 5
)

// Service persists saved preferences per session. Clients edit a local
// draft and submit the full document on save; the service never sees
// partial edits.
type Service struct {
	store *kvstore.Store
}

func NewService(store *kvstore.Store) *Service {
	return &Service{store: store}
}

// Get returns the session's saved preferences, or the neutral defaults when
// nothing was saved yet (or the stored document is corrupt).
func (s *Service) Get(ctx context.Context, sessionID string) models.UserPreferences {
	var p models.UserPreferences
	if !s.store.GetJSON(ctx, kvstore.PrefsKey(sessionID), &p) {
		return models.DefaultPreferences()
	}
	return Clamp(p)
}

// Set replaces the session's preferences wholesale. Out-of-range weights
// are clamped to [1,5]; there is no failure mode.
func (s *Service) Set(ctx context.Context, sessionID string, p models.UserPreferences) models.UserPreferences {
	clamped := Clamp(p)
	s.store.SetJSON(ctx, kvstore.PrefsKey(sessionID), clamped)
	return clamped
}

// Reset restores and persists the defaults.
func (s *Service) Reset(ctx context.Context, sessionID string) models.UserPreferences {
	defaults := models.DefaultPreferences()
	s.store.SetJSON(ctx, kvstore.PrefsKey(sessionID), defaults)
	return defaults
}

// GetCompare returns the legacy boolean preferences document.
func (s *Service) GetCompare(ctx context.Context, sessionID string) models.ComparePreferences {
	var p models.ComparePreferences
	if !s.store.GetJSON(ctx, kvstore.ComparePrefsKey(sessionID), &p) {
		return models.DefaultComparePreferences()
	}
	return p
}

// SetCompare replaces the legacy boolean preferences document.
func (s *Service) SetCompare(ctx context.Context, sessionID string, p models.ComparePreferences) models.ComparePreferences {
	s.store.SetJSON(ctx, kvstore.ComparePrefsKey(sessionID), p)
	return p
}

// Clamp forces every weight into [1,5].
func Clamp(p models.UserPreferences) models.UserPreferences {
	p.PriceImportance = clampWeight(p.PriceImportance)
	p.DeliveryImportance = clampWeight(p.DeliveryImportance)
	p.CODImportance = clampWeight(p.CODImportance)
	p.ReturnPolicyImportance = clampWeight(p.ReturnPolicyImportance)
	p.RatingImportance = clampWeight(p.RatingImportance)
	p.SellerReputationImportance = clampWeight(p.SellerReputationImportance)
	return p
}

func clampWeight(w int) int {
	if w < minImportance {
		return minImportance
	}
	if w > maxImportance {
		return maxImportance
	}
	return w
}
