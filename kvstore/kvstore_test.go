package kvstore

import (
	"context"
	"reflect"
	"testing"

	"dealaxe/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(rdb), mr
}

func TestCartRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	state := models.CartState{
		Items: []models.CartLineItem{
			{
				ID: 7,
				Product: models.Product{
					ID:   1,
					Name: "Phone",
					Platforms: []models.Platform{
						{ID: "amazon", Name: "Amazon", Price: 899.99},
					},
				},
				Quantity:   2,
				PlatformID: "amazon",
			},
		},
		Total: 1799.98,
	}

	key := CartKey("session-1")
	store.SetJSON(ctx, key, state)

	var decoded models.CartState
	if !store.GetJSON(ctx, key, &decoded) {
		t.Fatal("expected document to exist")
	}
	if !reflect.DeepEqual(decoded, state) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, state)
	}
}

func TestMissingKeyReportsAbsence(t *testing.T) {
	store, _ := newTestStore(t)

	var state models.CartState
	if store.GetJSON(context.Background(), CartKey("nobody"), &state) {
		t.Error("GetJSON reported a document that does not exist")
	}
}

func TestCorruptDocumentTreatedAsAbsent(t *testing.T) {
	store, mr := newTestStore(t)
	key := CartKey("session-1")
	mr.Set(key, "{not json")

	var state models.CartState
	if store.GetJSON(context.Background(), key, &state) {
		t.Error("corrupt document was adopted")
	}
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	key := PrefsKey("session-1")

	store.SetJSON(ctx, key, models.DefaultPreferences())
	store.Delete(ctx, key)

	var prefs models.UserPreferences
	if store.GetJSON(ctx, key, &prefs) {
		t.Error("document survived delete")
	}
}

func TestKeysAreNamespaced(t *testing.T) {
	if CartKey("s") == PrefsKey("s") || PrefsKey("s") == ComparePrefsKey("s") {
		t.Error("document keys collide")
	}
}
