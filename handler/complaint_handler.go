package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"nagarseva/models"
	"nagarseva/service"
)

// maxProofImageBytes caps the multipart proof upload size.
const maxProofImageBytes = 10 << 20

// ComplaintHandler handles HTTP requests for complaints.
type ComplaintHandler struct {
	service        *service.ComplaintService
	uploadBasePath string
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(svc *service.ComplaintService, uploadBasePath string) *ComplaintHandler {
	if uploadBasePath == "" {
		uploadBasePath = "uploads"
	}
	return &ComplaintHandler{service: svc, uploadBasePath: uploadBasePath}
}

// Create handles POST /api/complaint
// Files a new complaint for the authenticated citizen.
func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	var req models.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	complaint, err := h.service.Create(&req, principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, complaint)
}

// Get handles GET /api/complaint/{complaint_id}
// Public read; bumps the view counter.
func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	complaintID, err := strconv.ParseInt(vars["complaint_id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid complaint ID")
		return
	}

	complaint, err := h.service.Get(complaintID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// List handles GET /api/complaints?ward=&city=&category=&officer=&complaint_id=
// Returns complaints matching the conjunction of all provided filters.
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ComplaintFilter{
		WardNo:   q.Get("ward"),
		City:     q.Get("city"),
		Category: q.Get("category"),
	}
	if officer := q.Get("officer"); officer != "" {
		id, err := strconv.ParseInt(officer, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Validation error", "Invalid officer filter")
			return
		}
		filter.OfficerID = id
	}
	if complaintID := q.Get("complaint_id"); complaintID != "" {
		id, err := strconv.ParseInt(complaintID, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Validation error", "Invalid complaint_id filter")
			return
		}
		filter.ComplaintID = id
	}

	complaints, err := h.service.List(filter)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	respondWithJSON(w, http.StatusOK, complaints)
}

// UpdateStatus handles PUT /api/complaints/{id}/status (multipart).
// Form fields: "status" (required), "proof" (file, required when resolving).
// Only the assigned field officer may transition the complaint; the proof
// image persists with the status in one transaction.
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(maxProofImageBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Expected multipart form data")
		return
	}

	newStatus := models.ComplaintStatus(r.FormValue("status"))
	if !newStatus.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Validation error", "status must be one of pending, in_progress, resolved")
		return
	}

	var proofImage *string
	file, header, err := r.FormFile("proof")
	if err == nil {
		defer file.Close()
		storedPath, err := h.saveProofImage(file, header.Filename)
		if err != nil {
			log.Printf("[upload] failed to store proof image: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Internal error", "Failed to store proof image")
			return
		}
		proofImage = &storedPath
	} else if err != http.ErrMissingFile {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to read proof image")
		return
	}

	complaint, err := h.service.UpdateStatus(complaintID, principal.ID, newStatus, proofImage)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, complaint)
}

// Timeline handles GET /api/complaints/{id}/timeline
// Returns the immutable status history, newest first.
func (h *ComplaintHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	complaintID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid complaint ID")
		return
	}

	history, err := h.service.Timeline(complaintID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	if history == nil {
		history = []models.ComplaintStatusHistory{}
	}
	respondWithJSON(w, http.StatusOK, history)
}

// saveProofImage writes the uploaded file under the uploads directory with a
// random name and returns the public path it will be served from.
func (h *ComplaintHandler) saveProofImage(file io.Reader, originalName string) (string, error) {
	proofDir := filepath.Join(h.uploadBasePath, "proofs")
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		ext = ".jpg"
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(proofDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create proof file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, maxProofImageBytes)); err != nil {
		return "", fmt.Errorf("failed to write proof file: %w", err)
	}

	return "/uploads/proofs/" + filename, nil
}
