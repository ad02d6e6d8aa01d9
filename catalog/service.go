package catalog

import (
	"context"
	"fmt"
	"log"

	"dealaxe/models"
	"dealaxe/sellers"
)

// Search sources reported in response metadata.
const (
	SourceAPI      = "api"
	SourceMock     = "mock"
	SourceCombined = "combined"
)

// Service is the three-tier product catalog: external search API first,
// the marketplace database second, the mock seed last. It always yields
// something renderable; failures degrade, they don't propagate.
type Service struct {
	API     *APIClient
	Sellers *sellers.Store
}

func NewService(api *APIClient, sellerStore *sellers.Store) *Service {
	return &Service{API: api, Sellers: sellerStore}
}

// SearchResult carries the products plus where they came from.
type SearchResult struct {
	Products []models.Product
	Source   string
	Reason   string
}

// Search runs a query through the API tier and falls back to the mock seed
// when the API is unreachable. Filters the API cannot apply are enforced
// locally.
func (s *Service) Search(ctx context.Context, query string, filters models.SearchFilters) SearchResult {
	products, err := s.API.SearchProducts(ctx, query, filters)
	if err != nil {
		log.Println("Search API failed, serving mock products:", err)
		return SearchResult{
			Products: ApplyFilters(MockProducts(filters.Category), filters),
			Source:   SourceMock,
			Reason:   "API request failed",
		}
	}
	return SearchResult{
		Products: ApplyFilters(products, filters),
		Source:   SourceAPI,
	}
}

// CategoryResult carries a category browse plus per-tier counts.
type CategoryResult struct {
	Products    []models.Product
	MockCount   int
	SellerCount int
}

// ByCategory combines the mock seed with marketplace listings for a
// category, de-duplicated by product name (first occurrence wins).
func (s *Service) ByCategory(ctx context.Context, category string) CategoryResult {
	mock := MockProducts(category)

	var converted []models.Product
	sellerProducts, err := s.Sellers.ByCategory(ctx, category)
	if err != nil {
		log.Println("ByCategory seller lookup failed:", err)
	} else {
		for _, sp := range sellerProducts {
			converted = append(converted, sellers.AsProduct(sp))
		}
	}

	seen := make(map[string]bool)
	unique := []models.Product{}
	for _, p := range append(append([]models.Product{}, mock...), converted...) {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		unique = append(unique, p)
	}

	return CategoryResult{
		Products:    unique,
		MockCount:   len(mock),
		SellerCount: len(converted),
	}
}

// Detail resolves one product: marketplace listings live in the offset id
// range and come from the database; everything else goes to the API.
func (s *Service) Detail(ctx context.Context, productID int) (*models.Product, error) {
	if productID >= sellers.IDOffset {
		sp, err := s.Sellers.ByID(ctx, productID-sellers.IDOffset)
		if err == nil {
			product := sellers.AsProduct(*sp)
			return &product, nil
		}
		log.Printf("Detail: seller product %d not found, trying API: %v", productID, err)
	}

	product, err := s.API.ProductDetails(ctx, fmt.Sprintf("%d", productID))
	if err != nil {
		return nil, err
	}
	return product, nil
}
