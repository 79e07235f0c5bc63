package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"nagarseva/models"
	"nagarseva/service"
)

// EngagementHandler handles upvote and comment requests.
type EngagementHandler struct {
	service *service.EngagementService
}

// NewEngagementHandler creates a new engagement handler.
func NewEngagementHandler(svc *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: svc}
}

// ToggleUpvote handles POST /api/complaints/{id}/upvote
// Flips the authenticated citizen's upvote and returns the new count.
func (h *EngagementHandler) ToggleUpvote(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	vars := mux.Vars(r)
	complaintID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid complaint ID")
		return
	}

	response, err := h.service.ToggleUpvote(principal.ID, complaintID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response)
}

// AddComment handles POST /api/complaints/{id}/comment
func (h *EngagementHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	vars := mux.Vars(r)
	complaintID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid complaint ID")
		return
	}

	var req models.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	comment, err := h.service.AddComment(principal.ID, complaintID, req.CommentText)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, comment)
}

// ListComments handles GET /api/complaints/{id}/comments
func (h *EngagementHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	complaintID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid complaint ID")
		return
	}

	comments, err := h.service.ListComments(complaintID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	respondWithJSON(w, http.StatusOK, comments)
}
