package routes

import (
	"mingle_server/controllers"
	"mingle_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up swipe routes under /api/actions
func RegisterActionRoutes(r *mux.Router, actionService *services.ActionService) {
	controller := controllers.NewActionController(actionService)

	actionRouter := r.PathPrefix("/api/actions").Subrouter()
	actionRouter.HandleFunc("/like", controller.HandleLikeUser).Methods("POST")
	actionRouter.HandleFunc("/skip", controller.HandleSkipUser).Methods("POST")
}
