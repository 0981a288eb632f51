package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"mingle_server/models"
	"mingle_server/services"
)

type ActionController struct {
	ActionService *services.ActionService
}

// NewActionController initializes the controller
func NewActionController(service *services.ActionService) *ActionController {
	return &ActionController{ActionService: service}
}

type swipeRequest struct {
	ActorID  string `json:"actorId"`
	TargetID string `json:"targetId"`
}

// HandleLikeUser - User likes another user
func (c *ActionController) HandleLikeUser(w http.ResponseWriter, r *http.Request) {
	c.handleSwipe(w, r, models.InteractionKindLike)
}

// HandleSkipUser - User skips another user
func (c *ActionController) HandleSkipUser(w http.ResponseWriter, r *http.Request) {
	c.handleSwipe(w, r, models.InteractionKindSkip)
}

func (c *ActionController) handleSwipe(w http.ResponseWriter, r *http.Request, kind string) {
	var request swipeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.ActorID == "" || request.TargetID == "" {
		respondError(w, http.StatusBadRequest, "actorId and targetId are required")
		return
	}

	log.Printf("%s -> %s (%s)", request.ActorID, request.TargetID, kind)

	result, err := c.ActionService.ProcessSwipe(r.Context(), request.ActorID, request.TargetID, kind)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
