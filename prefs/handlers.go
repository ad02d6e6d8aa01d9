package prefs

import (
	"encoding/json"
	"log"
	"net/http"

	"dealaxe/middleware"
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

// GetPreferences returns the session's saved six-factor weights.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := middleware.SessionID(r)
	utils.RespondWithJSON(w, http.StatusOK, h.Service.Get(r.Context(), sessionID))
}

// SavePreferences replaces the saved weights with the submitted document.
func (h *Handler) SavePreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p models.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Println("SavePreferences decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sessionID := middleware.SessionID(r)
	utils.RespondWithJSON(w, http.StatusOK, h.Service.Set(r.Context(), sessionID, p))
}

// ResetPreferences restores the neutral defaults.
func (h *Handler) ResetPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := middleware.SessionID(r)
	utils.RespondWithJSON(w, http.StatusOK, h.Service.Reset(r.Context(), sessionID))
}

// GetComparePreferences returns the legacy boolean preferences blob.
func (h *Handler) GetComparePreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := middleware.SessionID(r)
	utils.RespondWithJSON(w, http.StatusOK, h.Service.GetCompare(r.Context(), sessionID))
}

// SaveComparePreferences replaces the legacy boolean preferences blob.
func (h *Handler) SaveComparePreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p models.ComparePreferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Println("SaveComparePreferences decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sessionID := middleware.SessionID(r)
	utils.RespondWithJSON(w, http.StatusOK, h.Service.SetCompare(r.Context(), sessionID, p))
}
