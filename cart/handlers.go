// Package cart is the HTTP surface over the cart reducer. Every mutation
// loads the session's state, runs one reducer dispatch, persists the result,
// and returns the new state. The reducer itself stays pure; this package
// owns the persistence side effect.
package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"dealaxe/cartengine"
	"dealaxe/kvstore"
	"dealaxe/middleware"
	"dealaxe/models"
	"dealaxe/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *kvstore.Store
}

func NewHandler(store *kvstore.Store) *Handler {
	return &Handler{Store: store}
}

// load returns the session's persisted cart, or an empty cart when nothing
// usable is stored. Corrupt data never surfaces as an error.
func (h *Handler) load(ctx context.Context, sessionID string) models.CartState {
	var state models.CartState
	if !h.Store.GetJSON(ctx, kvstore.CartKey(sessionID), &state) || state.Items == nil {
		return models.EmptyCart()
	}
	return state
}

func (h *Handler) dispatch(ctx context.Context, sessionID string, action cartengine.Action) models.CartState {
	state := cartengine.Reduce(h.load(ctx, sessionID), action)
	h.Store.SetJSON(ctx, kvstore.CartKey(sessionID), state)
	return state
}

// GetCart returns the session's cart.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := middleware.SessionID(r)
	utils.RespondWithJSON(w, http.StatusOK, h.load(ctx, sessionID))
}

// AddToCart adds a product (or merges into an existing line for the same
// product id).
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Product    *models.Product `json:"product"`
		Quantity   int             `json:"quantity"`
		PlatformID string          `json:"platformId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.Product == nil || payload.Product.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid product")
		return
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	sessionID := middleware.SessionID(r)
	state := h.dispatch(ctx, sessionID, cartengine.Action{
		Type:       cartengine.AddToCart,
		Product:    payload.Product,
		Quantity:   payload.Quantity,
		PlatformID: payload.PlatformID,
	})
	utils.RespondWithJSON(w, http.StatusCreated, state)
}

// UpdateQuantity replaces the quantity on the line for a product.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID, err := strconv.Atoi(ps.ByName("productId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateQuantity decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	// The reducer trusts its input, so clamp here.
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	sessionID := middleware.SessionID(r)
	state := h.dispatch(ctx, sessionID, cartengine.Action{
		Type:      cartengine.UpdateQuantity,
		ProductID: productID,
		Quantity:  payload.Quantity,
	})
	utils.RespondWithJSON(w, http.StatusOK, state)
}

// RemoveFromCart drops every line for a product.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID, err := strconv.Atoi(ps.ByName("productId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	sessionID := middleware.SessionID(r)
	state := h.dispatch(ctx, sessionID, cartengine.Action{
		Type:      cartengine.RemoveFromCart,
		ProductID: productID,
	})
	utils.RespondWithJSON(w, http.StatusOK, state)
}

// ClearCart resets the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := middleware.SessionID(r)
	state := h.dispatch(ctx, sessionID, cartengine.Action{Type: cartengine.ClearCart})
	utils.RespondWithJSON(w, http.StatusOK, state)
}
