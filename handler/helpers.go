package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"nagarseva/apperr"
	"nagarseva/middleware"
	"nagarseva/models"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	respondWithJSON(w, statusCode, models.ErrorResponse{
		Error:   errorType,
		Message: message,
		Code:    statusCode,
	})
}

// respondWithDomainError maps the apperr taxonomy onto HTTP statuses:
// 400 validation/conflict, 401 auth, 403 forbidden, 404 missing, 500 internal.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
	case errors.Is(err, apperr.ErrEmailInUse),
		errors.Is(err, apperr.ErrDuplicateComplaint),
		errors.Is(err, apperr.ErrAlreadyAssigned):
		respondWithError(w, http.StatusBadRequest, "Conflict", err.Error())
	case errors.Is(err, apperr.ErrInvalidOfficer):
		respondWithError(w, http.StatusBadRequest, "Invalid officer", err.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials", err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found", err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// getPrincipal extracts the authenticated principal set by the auth middleware.
func getPrincipal(r *http.Request) (models.Principal, error) {
	principal, ok := middleware.PrincipalFromContext(r)
	if !ok {
		return models.Principal{}, apperr.ErrUnauthorized
	}
	return principal, nil
}
