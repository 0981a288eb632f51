package controllers

import (
	"encoding/json"
	"net/http"

	"mingle_server/models"
	"mingle_server/services"

	"github.com/gorilla/mux"
)

type PreferenceController struct {
	PreferenceService *services.PreferenceService
}

// NewPreferenceController initializes the controller
func NewPreferenceController(service *services.PreferenceService) *PreferenceController {
	return &PreferenceController{PreferenceService: service}
}

// HandleGetPreferences - Fetch a viewer's preferences, defaults applied
func (c *PreferenceController) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	prefs, err := c.PreferenceService.GetPreferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}

// HandlePutPreferences - Validate and store a viewer's preferences
func (c *PreferenceController) HandlePutPreferences(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	prefs.UserID = userID

	if err := c.PreferenceService.PutPreferences(r.Context(), prefs); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Preferences saved"})
}
