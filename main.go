package main

import (
	"log"
	"net/http"
	"os"

	"mingle_server/routes"
	"mingle_server/services"
	"mingle_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	preferenceService := &services.PreferenceService{Dynamo: dynamoService}
	interactionService := &services.InteractionService{Dynamo: dynamoService}
	matchService := &services.MatchService{
		Dynamo:       dynamoService,
		Profiles:     userProfileService,
		Interactions: interactionService,
	}
	feedService := &services.FeedService{
		Profiles:     userProfileService,
		Preferences:  preferenceService,
		Interactions: interactionService,
	}
	actionService := &services.ActionService{
		Interactions: interactionService,
		Matches:      matchService,
	}
	chatService := &services.ChatService{
		Dynamo:  dynamoService,
		Matches: matchService,
	}
	s3Service, err := services.NewS3Service()
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Socket.IO server for live chat
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket.IO server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterPreferenceRoutes(r, preferenceService)
	routes.RegisterFeedRoutes(r, feedService)
	routes.RegisterActionRoutes(r, actionService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService, socketServer)
	routes.RegisterS3Routes(r, s3Service)
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
