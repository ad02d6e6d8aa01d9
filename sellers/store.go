package sellers

import (
	"context"
	"strings"
	"time"

	"dealaxe/db"
	"dealaxe/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Marketplace listings are exposed to the storefront with this fixed
// platform: the store itself is the single retailer.
const (
	PlatformID   = "dealaxe-store"
	PlatformName = "DealAxe Store"

	// Seller product ids are offset into their own range so they never
	// collide with search-result ids.
	IDOffset = 1000

	// Seed rows keep ids at or below this threshold and are excluded from
	// the dashboard listing.
	seedIDMax = 10

	placeholderImage = "https://via.placeholder.com/400x300"
)

type Store struct {
	coll *mongo.Collection
}

func NewStore() *Store {
	return &Store{coll: db.SellerProductsCollection}
}

// List returns non-seed listings, newest first.
func (s *Store) List(ctx context.Context) ([]models.SellerProduct, error) {
	opts := options.Find().SetSort(bson.M{"id": -1})
	cursor, err := s.coll.Find(ctx, bson.M{"id": bson.M{"$gt": seedIDMax}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.SellerProduct
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.SellerProduct{}
	}
	return out, nil
}

// ByCategory returns every listing in a category, matched case-insensitively.
func (s *Store) ByCategory(ctx context.Context, category string) ([]models.SellerProduct, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"category": strings.ToLower(category)})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.SellerProduct
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByID fetches one listing by its raw (un-offset) id.
func (s *Store) ByID(ctx context.Context, id int) (*models.SellerProduct, error) {
	var sp models.SellerProduct
	if err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// Create inserts a listing, assigning the next id from the shared counter.
// Category is stored lowercase; a missing image gets the placeholder.
func (s *Store) Create(ctx context.Context, sp models.SellerProduct) (models.SellerProduct, error) {
	id, err := db.NextSequence(ctx, "seller_products")
	if err != nil {
		return models.SellerProduct{}, err
	}
	sp.ID = id + seedIDMax
	if sp.SellerID == 0 {
		sp.SellerID = 1
	}
	sp.Category = strings.ToLower(sp.Category)
	if sp.Image == "" {
		sp.Image = placeholderImage
	}
	sp.CreatedAt = time.Now()

	if _, err := s.coll.InsertOne(ctx, sp); err != nil {
		return models.SellerProduct{}, err
	}
	return sp, nil
}

// AsProduct converts a marketplace listing into a storefront product with
// the fixed single-platform offer.
func AsProduct(sp models.SellerProduct) models.Product {
	description := sp.Description
	if description == "" {
		description = "No description available"
	}
	image := sp.Image
	if image == "" {
		image = "https://via.placeholder.com/300"
	}
	return models.Product{
		ID:          IDOffset + sp.ID,
		Name:        sp.Name,
		Description: description,
		Category:    sp.Category,
		Image:       image,
		Rating:      4,
		ReviewCount: 10,
		Platforms: []models.Platform{{
			ID:           PlatformID,
			Name:         PlatformName,
			Price:        sp.Price,
			CODAvailable: true,
			FreeDelivery: true,
			DeliveryDate: "3-5 business days",
			ReturnPolicy: "30 days replacement",
			IsBestDeal:   true,
		}},
		CreatedAt: sp.CreatedAt,
	}
}
