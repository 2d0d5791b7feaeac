package v1

import (
	"errors"
	"net/http"

	"github.com/samiti-app/backend/internal/auth"
	"github.com/samiti-app/backend/internal/models"
	"github.com/samiti-app/backend/internal/storage"
)

type httpError struct {
	Error string `json:"error" example:"there is no member matching your query"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, storage.ErrSnapshotCorrupt) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrWrongPassword) || errors.Is(err, errNoSession) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errYearNotSetInQuery   = errors.New("the year query parameter must be set")
	errNoSession           = errors.New("you must log in to use this endpoint")
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
