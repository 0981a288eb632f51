package routes

import (
	"mingle_server/controllers"
	"mingle_server/services"

	"github.com/gorilla/mux"
)

// RegisterPreferenceRoutes sets up routes for preference operations under /api/preferences
func RegisterPreferenceRoutes(r *mux.Router, preferenceService *services.PreferenceService) {
	controller := controllers.NewPreferenceController(preferenceService)

	preferenceRouter := r.PathPrefix("/api/preferences").Subrouter()
	preferenceRouter.HandleFunc("/{userId}", controller.HandleGetPreferences).Methods("GET")
	preferenceRouter.HandleFunc("/{userId}", controller.HandlePutPreferences).Methods("PUT")
}
