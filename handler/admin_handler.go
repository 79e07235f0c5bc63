package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"nagarseva/models"
	"nagarseva/service"
)

// AdminHandler handles staff management and officer assignment.
type AdminHandler struct {
	staffService *service.StaffService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(staffService *service.StaffService) *AdminHandler {
	return &AdminHandler{staffService: staffService}
}

// CreateStaff handles POST /api/admin/create-user
// Creates a field officer or call-center account.
func (h *AdminHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	officer, err := h.staffService.CreateStaff(&req)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, officer)
}

// RemoveStaff handles DELETE /api/admin/remove-user/{id}
func (h *AdminHandler) RemoveStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	officerID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid officer ID")
		return
	}

	if err := h.staffService.RemoveStaff(officerID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"message": "Officer removed"})
}

// AssignFieldOfficer handles POST /api/admin/assign-field-officer
// Binds a field officer to an unassigned complaint. The acting admin comes
// from the session token, never from the payload.
func (h *AdminHandler) AssignFieldOfficer(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	var req models.AssignOfficerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}
	if req.ComplaintID == 0 || req.OfficerID == 0 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "complaint_id and officer_id are required")
		return
	}

	if err := h.staffService.Assign(principal.ID, req.ComplaintID, req.OfficerID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Field officer assigned",
		"complaint_id": req.ComplaintID,
		"officer_id":   req.OfficerID,
	})
}
