package controllers

import (
	"net/http"

	"mingle_server/services"

	"github.com/gorilla/mux"
)

type FeedController struct {
	FeedService *services.FeedService
}

// NewFeedController initializes the controller
func NewFeedController(service *services.FeedService) *FeedController {
	return &FeedController{FeedService: service}
}

// HandleGetFeed - Build a fresh candidate queue for the viewer. The response
// is the whole ordered queue; the client owns the cursor and calls again to
// refresh, e.g. after a preference change.
func (c *FeedController) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := mux.Vars(r)["userId"]

	queue, err := c.FeedService.BuildQueue(r.Context(), viewerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"queue": queue})
}
