package controllers

import (
	"encoding/json"
	"net/http"

	"mingle_server/services"
)

type S3Controller struct {
	S3Service *services.S3Service
}

// NewS3Controller initializes the controller
func NewS3Controller(service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: service}
}

// HandleGenerateUploadURL - Presign an upload URL for a profile image
func (c *S3Controller) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.FileName == "" {
		respondError(w, http.StatusBadRequest, "fileName and fileType are required")
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(r.Context(), request.FileName, request.FileType)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"uploadUrl": url, "key": key})
}

// HandleGenerateReadURL - Presign a read URL for a stored image
func (c *S3Controller) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key is required")
		return
	}

	url, err := c.S3Service.GenerateReadURL(r.Context(), key)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate read URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"readUrl": url})
}
