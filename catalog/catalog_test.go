package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealaxe/models"
)

func TestMockProductsFilterByCategory(t *testing.T) {
	if got := len(MockProducts("electronics")); got != 3 {
		t.Errorf("electronics seed = %d products, want 3", got)
	}
	if got := len(MockProducts("Electronics")); got != 3 {
		t.Errorf("category match should be case-insensitive, got %d", got)
	}
	if got := len(MockProducts("grocery")); got != 0 {
		t.Errorf("grocery seed = %d products, want 0", got)
	}
	// Blank category defaults to electronics.
	if got := len(MockProducts("")); got != 3 {
		t.Errorf("default seed = %d products, want 3", got)
	}
}

func TestApplyFiltersBrands(t *testing.T) {
	products := MockProducts("electronics")
	out := ApplyFilters(products, models.SearchFilters{Brands: []string{"apple"}})
	if len(out) != 1 || out[0].Name != "Apple iPhone 14 Pro" {
		t.Fatalf("brand filter returned %+v", names(out))
	}
}

func TestApplyFiltersPriceRange(t *testing.T) {
	products := MockProducts("electronics")

	// Cheapest platforms: Samsung 849.99, Pixel 799.99, iPhone 999.99.
	out := ApplyFilters(products, models.SearchFilters{PriceRange: []float64{700, 900}})
	if len(out) != 2 {
		t.Fatalf("price filter returned %v", names(out))
	}

	// A full-width range filters nothing.
	out = ApplyFilters(products, models.SearchFilters{PriceRange: []float64{0, 100000}})
	if len(out) != 3 {
		t.Fatalf("open price range returned %v", names(out))
	}
}

func TestApplyFiltersDeliveryOptions(t *testing.T) {
	products := MockProducts("electronics")

	out := ApplyFilters(products, models.SearchFilters{
		DeliveryOptions: &models.DeliveryOptions{CODAvailable: true},
	})
	if len(out) != 1 || out[0].Name != "Samsung Galaxy S22 Ultra" {
		t.Fatalf("COD filter returned %v", names(out))
	}

	out = ApplyFilters(products, models.SearchFilters{
		DeliveryOptions: &models.DeliveryOptions{FreeDelivery: true},
	})
	if len(out) != 3 {
		t.Fatalf("free delivery filter returned %v", names(out))
	}

	out = ApplyFilters(products, models.SearchFilters{
		DeliveryOptions: &models.DeliveryOptions{ExpressDelivery: true},
	})
	if len(out) != 0 {
		t.Fatalf("express filter returned %v", names(out))
	}
}

func TestSearchProductsMapsOffers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-RapidAPI-Key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "galaxy" {
			t.Errorf("query param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"products":[{
			"product_title":"Samsung Galaxy S22",
			"product_description":"flagship",
			"product_photos":["https://img.example/1.jpg"],
			"product_rating":4.6,
			"product_num_reviews":"128",
			"offer":{
				"price":"₹61,999.00",
				"store_name":"Croma Retail",
				"payment_options":["COD","UPI"],
				"shipping":"Free delivery"
			}
		}]}}`))
	}))
	defer srv.Close()

	client := &APIClient{
		BaseURL:    srv.URL,
		Host:       "test",
		APIKey:     "test-key",
		HTTPClient: srv.Client(),
	}

	products, err := client.SearchProducts(context.Background(), "galaxy", models.SearchFilters{})
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products", len(products))
	}

	p := products[0]
	if p.ID != 1 || p.Name != "Samsung Galaxy S22" || p.Rating != 5 || p.ReviewCount != 128 {
		t.Errorf("mapped product = %+v", p)
	}
	if len(p.Platforms) != 1 {
		t.Fatalf("platforms = %+v", p.Platforms)
	}
	offer := p.Platforms[0]
	if offer.ID != "cromaretail" || offer.Name != "Croma Retail" {
		t.Errorf("platform identity = %q/%q", offer.ID, offer.Name)
	}
	if offer.Price != 61999 {
		t.Errorf("parsed price = %v, want 61999", offer.Price)
	}
	if !offer.CODAvailable || !offer.FreeDelivery {
		t.Errorf("offer terms = %+v", offer)
	}
	if offer.ReturnPolicy != "10 days return" {
		t.Errorf("return policy = %q", offer.ReturnPolicy)
	}
}

func TestSearchProductsFallbackPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"products":[{"product_title":"Mystery Item"}]}}`))
	}))
	defer srv.Close()

	client := &APIClient{BaseURL: srv.URL, HTTPClient: srv.Client()}
	products, err := client.SearchProducts(context.Background(), "mystery", models.SearchFilters{})
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if got := products[0].Platforms[0].Price; got != fallbackPrice {
		t.Errorf("price = %v, want fallback %v", got, fallbackPrice)
	}
	if got := products[0].Platforms[0].ID; got != "online" {
		t.Errorf("offerless platform id = %q, want online", got)
	}
}

func TestSearchProductsEmptyQuery(t *testing.T) {
	client := &APIClient{BaseURL: "http://unreachable.invalid", HTTPClient: http.DefaultClient}
	products, err := client.SearchProducts(context.Background(), "", models.SearchFilters{})
	if err != nil {
		t.Fatalf("empty query should not hit the network: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("got %d products, want 0", len(products))
	}
}

func TestSearchProductsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := &APIClient{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := client.SearchProducts(context.Background(), "x", models.SearchFilters{}); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"₹8,350.00", 8350},
		{"$1,299.99", 1299.99},
		{"free", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := parsePrice(tc.in); got != tc.want {
			t.Errorf("parsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}
