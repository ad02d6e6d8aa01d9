package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dealaxe/models"
)

// APIClient talks to the real-time product-search API. One attempt per
// call; retry policy belongs to the caller's fallback chain.
type APIClient struct {
	BaseURL    string
	Host       string
	APIKey     string
	HTTPClient *http.Client
}

const (
	defaultAPIBaseURL = "https://real-time-product-search.p.rapidapi.com"
	defaultAPIHost    = "real-time-product-search.p.rapidapi.com"

	// Applied when the API returns no parseable price at all.
	fallbackPrice = 8350
)

func NewAPIClient() *APIClient {
	key := os.Getenv("RAPID_API_KEY")
	if key == "" {
		log.Println("No RAPID_API_KEY set; product search API calls will fail and fall back to mock data")
	}
	return &APIClient{
		BaseURL:    defaultAPIBaseURL,
		Host:       defaultAPIHost,
		APIKey:     key,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Wire shapes for the API's responses; only the fields the storefront maps
// are decoded.
type apiSearchResponse struct {
	Data struct {
		Products []apiProduct `json:"products"`
	} `json:"data"`
}

type apiDetailResponse struct {
	Data apiProduct `json:"data"`
}

type apiProduct struct {
	ProductTitle       string            `json:"product_title"`
	ProductDescription string            `json:"product_description"`
	ProductPhotos      []string          `json:"product_photos"`
	ProductAttributes  map[string]string `json:"product_attributes"`
	ProductRating      float64           `json:"product_rating"`
	ProductNumReviews  json.Number       `json:"product_num_reviews"`
	ProductNumOffers   int               `json:"product_num_offers"`
	TypicalPriceRange  []string          `json:"typical_price_range"`
	Offer              *apiOffer         `json:"offer"`
}

type apiOffer struct {
	Price          string   `json:"price"`
	StoreName      string   `json:"store_name"`
	PaymentOptions []string `json:"payment_options"`
	Shipping       string   `json:"shipping"`
}

// SearchProducts queries the API and maps the results into the storefront's
// product shape.
func (c *APIClient) SearchProducts(ctx context.Context, query string, filters models.SearchFilters) ([]models.Product, error) {
	if query == "" {
		return []models.Product{}, nil
	}

	params := url.Values{
		"q":                 {query},
		"country":           {"in"},
		"language":          {"en"},
		"page":              {"1"},
		"limit":             {"20"},
		"sort_by":           {"BEST_MATCH"},
		"product_condition": {"ANY"},
		"min_rating":        {"ANY"},
	}
	if filters.Category != "" {
		params.Set("category", apiCategory(filters.Category))
	}
	if filters.Rating > 0 {
		params.Set("min_rating", strconv.Itoa(filters.Rating))
	}
	if len(filters.PriceRange) == 2 {
		if filters.PriceRange[0] > 0 {
			params.Set("min_price", strconv.FormatFloat(filters.PriceRange[0], 'f', -1, 64))
		}
		if filters.PriceRange[1] < 100000 {
			params.Set("max_price", strconv.FormatFloat(filters.PriceRange[1], 'f', -1, 64))
		}
	}

	var decoded apiSearchResponse
	if err := c.get(ctx, "/search", params, &decoded); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(decoded.Data.Products))
	for i, item := range decoded.Data.Products {
		products = append(products, mapAPIProduct(item, i+1, filters.Category))
	}
	return products, nil
}

// ProductDetails fetches a single product by the API's product id.
func (c *APIClient) ProductDetails(ctx context.Context, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, fmt.Errorf("no product id")
	}

	params := url.Values{
		"product_id": {productID},
		"country":    {"in"},
		"language":   {"en"},
	}
	var decoded apiDetailResponse
	if err := c.get(ctx, "/product-details-v2", params, &decoded); err != nil {
		return nil, err
	}

	item := decoded.Data
	price, originalPrice := pricesFromRange(item.TypicalPriceRange)
	if price == 0 {
		price = 99.99
	}
	platform := models.Platform{
		ID:           "online",
		Name:         "Online Store",
		Price:        price,
		DeliveryDate: "Standard delivery",
		ReturnPolicy: "10days return",
	}
	if originalPrice > price {
		platform.OriginalPrice = &originalPrice
	}
	if item.ProductNumOffers > 0 {
		platform.Name = "Multiple Retailers"
	}

	id, _ := strconv.Atoi(productID)
	product := mapAPIProduct(item, id, "")
	product.Platforms = []models.Platform{platform}
	return &product, nil
}

func (c *APIClient) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-RapidAPI-Key", c.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.Host)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("product search API returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mapAPIProduct(item apiProduct, id int, categoryHint string) models.Product {
	price, originalPrice := offerPrices(item)

	var platform models.Platform
	if item.Offer != nil {
		platform = models.Platform{
			ID:           storeID(item.Offer.StoreName),
			Name:         nonEmpty(item.Offer.StoreName, "Store"),
			Price:        price,
			CODAvailable: containsString(item.Offer.PaymentOptions, "COD"),
			FreeDelivery: strings.Contains(strings.ToLower(item.Offer.Shipping), "free"),
			DeliveryDate: nonEmpty(item.Offer.Shipping, "Standard delivery"),
			ReturnPolicy: "10 days return",
		}
	} else {
		platform = models.Platform{
			ID:           "online",
			Name:         "Online Store",
			Price:        price,
			DeliveryDate: "Standard delivery",
			ReturnPolicy: "10 days return",
		}
	}
	if originalPrice > price {
		platform.OriginalPrice = &originalPrice
	}

	category := categoryHint
	if category == "" {
		category = item.ProductAttributes["Category"]
	}
	if category == "" {
		category = "Electronics"
	}

	image := "https://via.placeholder.com/300"
	if len(item.ProductPhotos) > 0 {
		image = item.ProductPhotos[0]
	}

	rating := 4
	if item.ProductRating > 0 {
		rating = int(item.ProductRating + 0.5)
	}

	reviewCount := 0
	if n, err := item.ProductNumReviews.Int64(); err == nil {
		reviewCount = int(n)
	}

	return models.Product{
		ID:          id,
		Name:        nonEmpty(item.ProductTitle, "Unknown Product"),
		Description: nonEmpty(item.ProductDescription, "No description available"),
		Category:    category,
		Image:       image,
		Rating:      rating,
		ReviewCount: reviewCount,
		Platforms:   []models.Platform{platform},
		CreatedAt:   time.Now(),
	}
}

// offerPrices extracts the listing price: the offer price when present,
// else the typical price range, else the fixed fallback.
func offerPrices(item apiProduct) (price, originalPrice float64) {
	if item.Offer != nil && item.Offer.Price != "" {
		price = parsePrice(item.Offer.Price)
		originalPrice = price
	}
	if price == 0 && len(item.TypicalPriceRange) > 0 {
		price, originalPrice = pricesFromRange(item.TypicalPriceRange)
	}
	if price == 0 {
		price = fallbackPrice
		originalPrice = fallbackPrice
	}
	return price, originalPrice
}

func pricesFromRange(priceRange []string) (price, originalPrice float64) {
	if len(priceRange) > 0 {
		price = parsePrice(priceRange[0])
	}
	if len(priceRange) > 1 {
		originalPrice = parsePrice(priceRange[1])
	} else {
		originalPrice = price
	}
	return price, originalPrice
}

var nonPrice = regexp.MustCompile(`[^0-9.]`)

// parsePrice strips currency symbols and separators from a price string.
func parsePrice(s string) float64 {
	cleaned := nonPrice.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

func storeID(storeName string) string {
	id := nonAlnum.ReplaceAllString(strings.ToLower(storeName), "")
	if id == "" {
		return "store"
	}
	return id
}

// apiCategory maps the storefront's category names onto the API's.
func apiCategory(category string) string {
	switch strings.ToLower(category) {
	case "electronics":
		return "Electronics"
	case "fashion", "clothing":
		return "Apparel"
	case "grocery":
		return "Grocery"
	case "beauty":
		return "Beauty"
	default:
		return category
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
