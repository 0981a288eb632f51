package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"mingle_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

type ChatController struct {
	ChatService *services.ChatService
	Socket      *socketio.Server
}

// NewChatController initializes the controller. The socket server may be nil;
// messages are then persisted without a live broadcast.
func NewChatController(service *services.ChatService, socket *socketio.Server) *ChatController {
	return &ChatController{ChatService: service, Socket: socket}
}

// HandleSendMessage - Append a message to a match's thread
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID  string `json:"matchId"`
		SenderID string `json:"senderId"`
		Content  string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}

	message, err := c.ChatService.AppendMessage(r.Context(), request.MatchID, request.SenderID, request.Content)
	if err != nil {
		log.Printf("Failed to append message to match %s: %v", request.MatchID, err)
		respondServiceError(w, err)
		return
	}

	// Broadcast the stored message, not the raw request, so listeners see the
	// same content a later fetch returns.
	if c.Socket != nil {
		c.Socket.BroadcastToRoom("/", message.MatchID, "newMessage", map[string]string{
			"messageId": message.MessageID,
			"matchId":   message.MatchID,
			"senderId":  message.SenderID,
			"content":   message.Content,
			"createdAt": message.CreatedAt,
		})
	}

	respondJSON(w, http.StatusCreated, map[string]string{"messageId": message.MessageID})
}

// HandleGetMessages - Fetch a match's thread, oldest first
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	messages, err := c.ChatService.ListMessages(r.Context(), matchID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}
