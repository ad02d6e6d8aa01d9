package prefs

import (
	"context"
	"testing"

	"dealaxe/kvstore"
	"dealaxe/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewService(kvstore.New(rdb)), mr
}

func TestGetDefaultsWhenUnsaved(t *testing.T) {
	svc, _ := newTestService(t)

	got := svc.Get(context.Background(), "s1")
	if got != models.DefaultPreferences() {
		t.Errorf("got %+v, want neutral defaults", got)
	}
}

func TestSetPersistsAcrossReads(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved := svc.Set(ctx, "s1", models.UserPreferences{
		PriceImportance:            5,
		DeliveryImportance:         1,
		CODImportance:              2,
		ReturnPolicyImportance:     4,
		RatingImportance:           3,
		SellerReputationImportance: 1,
	})
	if got := svc.Get(ctx, "s1"); got != saved {
		t.Errorf("got %+v, want %+v", got, saved)
	}
	// Another session is unaffected.
	if got := svc.Get(ctx, "s2"); got != models.DefaultPreferences() {
		t.Errorf("other session got %+v, want defaults", got)
	}
}

func TestSetClampsOutOfRange(t *testing.T) {
	svc, _ := newTestService(t)

	saved := svc.Set(context.Background(), "s1", models.UserPreferences{
		PriceImportance:            9,
		DeliveryImportance:         -2,
		CODImportance:              0,
		ReturnPolicyImportance:     6,
		RatingImportance:           3,
		SellerReputationImportance: 100,
	})
	want := models.UserPreferences{
		PriceImportance:            5,
		DeliveryImportance:         1,
		CODImportance:              1,
		ReturnPolicyImportance:     5,
		RatingImportance:           3,
		SellerReputationImportance: 5,
	}
	if saved != want {
		t.Errorf("saved %+v, want %+v", saved, want)
	}
}

func TestReset(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.Set(ctx, "s1", models.UserPreferences{PriceImportance: 5, DeliveryImportance: 5,
		CODImportance: 5, ReturnPolicyImportance: 5, RatingImportance: 5, SellerReputationImportance: 5})

	if got := svc.Reset(ctx, "s1"); got != models.DefaultPreferences() {
		t.Errorf("reset returned %+v", got)
	}
	if got := svc.Get(ctx, "s1"); got != models.DefaultPreferences() {
		t.Errorf("get after reset returned %+v", got)
	}
}

func TestCorruptDocumentFallsBackToDefaults(t *testing.T) {
	svc, mr := newTestService(t)
	mr.Set(kvstore.PrefsKey("s1"), "][")

	if got := svc.Get(context.Background(), "s1"); got != models.DefaultPreferences() {
		t.Errorf("got %+v, want defaults on corrupt data", got)
	}
}

func TestComparePreferencesIndependentDocument(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if got := svc.GetCompare(ctx, "s1"); got != models.DefaultComparePreferences() {
		t.Errorf("got %+v, want all-true defaults", got)
	}

	saved := svc.SetCompare(ctx, "s1", models.ComparePreferences{Price: true})
	if got := svc.GetCompare(ctx, "s1"); got != saved {
		t.Errorf("got %+v, want %+v", got, saved)
	}
	// Writing the boolean blob must not disturb the six-factor weights.
	if got := svc.Get(ctx, "s1"); got != models.DefaultPreferences() {
		t.Errorf("six-factor prefs changed: %+v", got)
	}
}
