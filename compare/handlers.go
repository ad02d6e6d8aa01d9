package compare

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"dealaxe/middleware"
	"dealaxe/models"
	"dealaxe/prefs"
	"dealaxe/scoring"
	"dealaxe/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes the comparison set plus the scoring views computed from
// it. Scores and recommendations are recomputed on every request, never
// cached.
type Handler struct {
	Registry *Registry
	Prefs    *prefs.Service
}

func NewHandler(registry *Registry, prefsService *prefs.Service) *Handler {
	return &Handler{Registry: registry, Prefs: prefsService}
}

func (h *Handler) manager(r *http.Request) *Manager {
	return h.Registry.Manager(middleware.SessionID(r))
}

// GetCompare returns the selected products and whether the comparison view
// is open.
func (h *Handler) GetCompare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	m := h.manager(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"products": m.Selected(),
		"open":     m.IsOpen(),
	})
}

// AddToCompare selects a product for comparison.
func (h *Handler) AddToCompare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Product *models.Product `json:"product"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCompare decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.Product == nil || payload.Product.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid product")
		return
	}

	m := h.manager(r)
	m.Add(*payload.Product)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"products": m.Selected()})
}

// RemoveFromCompare unselects a product.
func (h *Handler) RemoveFromCompare(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	productID, err := strconv.Atoi(ps.ByName("productId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	m := h.manager(r)
	m.Remove(productID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"products": m.Selected()})
}

// ClearCompare drops the whole set.
func (h *Handler) ClearCompare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	m := h.manager(r)
	m.Clear()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"products": m.Selected()})
}

// OpenCompare opens the comparison view when at least two products are
// selected; with fewer it stays closed.
func (h *Handler) OpenCompare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	m := h.manager(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"open": m.OpenCompare()})
}

// CloseCompare closes the comparison view.
func (h *Handler) CloseCompare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	m := h.manager(r)
	m.CloseCompare()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"open": false})
}

// GetScores returns the per-product scores for the current selection under
// the session's saved preferences.
func (h *Handler) GetScores(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := middleware.SessionID(r)
	selected := h.Registry.Manager(sessionID).Selected()
	preferences := h.Prefs.Get(r.Context(), sessionID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"scores": scoring.Scores(selected, preferences),
	})
}

// GetRecommendation returns the id of the recommended product, or null when
// nothing is selected.
func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := middleware.SessionID(r)
	selected := h.Registry.Manager(sessionID).Selected()
	preferences := h.Prefs.Get(r.Context(), sessionID)

	if id, ok := scoring.Recommend(selected, preferences); ok {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"recommendedProductId": id})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recommendedProductId": nil})
}
