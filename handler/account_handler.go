package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"nagarseva/models"
	"nagarseva/service"
)

// AccountHandler serves account lookup and profile updates across roles.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Get handles GET /api/user?id=&role=
// Returns the sanitized account for the given id within the role's namespace.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Valid id is required")
		return
	}
	role, ok := models.ParseRole(r.URL.Query().Get("role"))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Validation error", "Valid role is required")
		return
	}

	account, err := h.accountService.Get(id, role)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}

// Update handles PUT /api/update-user
// Applies a partial profile update to the account named in the body.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	account, err := h.accountService.Update(&req)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}

// UpdateOwnProfile handles PUT /api/officer/profile/update
// Any authenticated principal updates their own profile; identity comes from
// the session token, never from the payload.
func (h *AccountHandler) UpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	principal, err := getPrincipal(r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	account, err := h.accountService.UpdateOwnProfile(principal, &req)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}
