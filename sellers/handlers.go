package sellers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"dealaxe/models"
	"dealaxe/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// ListProducts returns the seller dashboard's listings.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := h.Store.List(ctx)
	if err != nil {
		log.Println("ListProducts error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch seller products")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

// CreateProduct validates and inserts a new marketplace listing.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var sp models.SellerProduct
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		log.Println("CreateProduct decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if sp.Name == "" || sp.Category == "" || sp.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	created, err := h.Store.Create(ctx, sp)
	if err != nil {
		log.Println("CreateProduct insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add product")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}
