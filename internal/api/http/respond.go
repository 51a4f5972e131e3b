package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/security"

	"github.com/lib/pq"
)

const (
	pqErrForeignKeyViolation = "23503"
	pqErrUniqueViolation     = "23505"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps service errors onto the HTTP error envelope: field-level
// validation failures become 400 with per-field detail, everything else a
// single "error" string with the matching status code.
func writeError(w http.ResponseWriter, err error) {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrs})
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqErrForeignKeyViolation:
			// Restricted deletes and dangling references surface as
			// validation failures, not conflicts.
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"errors": map[string][]string{
					"non_field_errors": {"Operation violates a reference to related records."},
				},
			})
			return
		case pqErrUniqueViolation:
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"errors": map[string][]string{
					"non_field_errors": {"A record with these values already exists."},
				},
			})
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found."})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "You do not have permission to perform this action."})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid authentication credentials."})
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token."})
	default:
		logger.Error("Unhandled request error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error."})
	}
}
