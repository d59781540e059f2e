package handlers

import (
	"errors"
	"net/http"

	"hotel-backend/internal/services"
	"hotel-backend/internal/store"
	"hotel-backend/pkg/utils"
)

// writeError maps service errors onto HTTP statuses: validation failures are
// the caller's fault, missing records are 404, anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

// includeDeleted reads the query flag that reveals soft-deleted records.
func includeDeleted(r *http.Request) bool {
	return r.URL.Query().Get("include_deleted") == "true"
}
