package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"dealaxe/models"
	"dealaxe/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// SearchProducts handles GET /api/products/search. Structured filters
// arrive JSON-encoded in individual query parameters; invalid ones are
// logged and skipped, never fatal.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	query := r.URL.Query().Get("query")
	filters := parseFilters(r)

	result := h.Service.Search(ctx, query, filters)

	payload := utils.M{"products": result.Products}
	if result.Source == SourceMock {
		payload["_meta"] = utils.M{"source": result.Source, "reason": result.Reason}
	}
	utils.RespondWithJSON(w, http.StatusOK, payload)
}

// ProductsByCategory handles GET /api/products/category/:category.
func (h *Handler) ProductsByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result := h.Service.ByCategory(ctx, ps.ByName("category"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"products": result.Products,
		"_meta": utils.M{
			"source":      SourceCombined,
			"count":       len(result.Products),
			"mockCount":   result.MockCount,
			"sellerCount": result.SellerCount,
		},
	})
}

// ProductDetails handles GET /api/products/:id.
func (h *Handler) ProductDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	productID, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.Service.Detail(ctx, productID)
	if err != nil {
		log.Println("ProductDetails error:", err)
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

func parseFilters(r *http.Request) models.SearchFilters {
	q := r.URL.Query()
	filters := models.SearchFilters{Category: q.Get("category")}

	if rating := q.Get("rating"); rating != "" {
		if n, err := strconv.Atoi(rating); err == nil {
			filters.Rating = n
		}
	}
	if raw := q.Get("priceRange"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filters.PriceRange); err != nil {
			log.Println("Invalid priceRange parameter:", raw)
		}
	}
	if raw := q.Get("brands"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &filters.Brands); err != nil {
			log.Println("Invalid brands parameter:", raw)
		}
	}
	if raw := q.Get("deliveryOptions"); raw != "" {
		var opts models.DeliveryOptions
		if err := json.Unmarshal([]byte(raw), &opts); err != nil {
			log.Println("Invalid deliveryOptions parameter:", raw)
		} else {
			filters.DeliveryOptions = &opts
		}
	}
	return filters
}
