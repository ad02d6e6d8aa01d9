// Package checkout implements the simulated checkout flow: no real payment
// ever happens, orders are recorded and receipts generated as if it had.
package checkout

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"dealaxe/db"
	"dealaxe/kvstore"
	"dealaxe/middleware"
	"dealaxe/models"
	"dealaxe/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	Store *kvstore.Store
}

func NewHandler(store *kvstore.Store) *Handler {
	return &Handler{Store: store}
}

// InitiateCheckout is a placeholder for any pre-checkout locking or
// analytics.
func (h *Handler) InitiateCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "checkout_initiated"})
}

// CreateCheckoutSession snapshots the session's cart into a checkout
// session object and returns it.
func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("CreateCheckoutSession decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid session data")
		return
	}

	sessionID := middleware.SessionID(r)
	cart := h.loadCart(ctx, sessionID)

	session := models.CheckoutSession{
		SessionID: sessionID,
		Items:     cart.Items,
		Address:   payload.Address,
		Total:     cart.Total,
		CreatedAt: time.Now(),
	}
	utils.RespondWithJSON(w, http.StatusCreated, session)
}

// PlaceOrder records a finalized order from the session's cart, then clears
// the cart.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Address       string `json:"address"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("PlaceOrder decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}

	sessionID := middleware.SessionID(r)
	cart := h.loadCart(ctx, sessionID)
	if len(cart.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	order := models.Order{
		OrderID:       "ORD" + strconv.FormatInt(time.Now().UnixNano()%1e6, 10),
		SessionID:     sessionID,
		Items:         cart.Items,
		Address:       payload.Address,
		PaymentMethod: payload.PaymentMethod,
		Total:         cart.Total,
		Status:        "pending",
		CreatedAt:     time.Now(),
	}

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		log.Println("PlaceOrder InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	h.Store.Delete(ctx, kvstore.CartKey(sessionID))

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

func (h *Handler) loadCart(ctx context.Context, sessionID string) models.CartState {
	var cart models.CartState
	if !h.Store.GetJSON(ctx, kvstore.CartKey(sessionID), &cart) || cart.Items == nil {
		return models.EmptyCart()
	}
	return cart
}

func findOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
