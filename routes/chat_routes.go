package routes

import (
	"mingle_server/controllers"
	"mingle_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up chat routes under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, socket *socketio.Server) {
	controller := controllers.NewChatController(chatService, socket)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/messages", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages/{matchId}", controller.HandleGetMessages).Methods("GET")
}
