package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"mingle_server/models"
	"mingle_server/services"

	"github.com/gorilla/mux"
)

type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController initializes the controller
func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: service}
}

// HandleAddProfile - Create a new user profile
func (c *UserProfileController) HandleAddProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if profile.UserID == "" {
		respondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	created, err := c.UserProfileService.AddUserProfile(r.Context(), profile)
	if err != nil {
		log.Printf("Failed to add profile %s: %v", profile.UserID, err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleGetProfile - Fetch a user profile by id
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// HandleUpdateProfile - Apply partial edits to an existing profile
func (c *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	delete(updates, "userId")

	profile, err := c.UserProfileService.UpdateUserProfile(r.Context(), userID, updates)
	if err != nil {
		log.Printf("Failed to update profile %s: %v", userID, err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// HandleDeleteProfile - Delete a profile and its owned records
func (c *UserProfileController) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.UserProfileService.DeleteUserProfile(r.Context(), userID); err != nil {
		log.Printf("Failed to delete profile %s: %v", userID, err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Profile deleted"})
}
