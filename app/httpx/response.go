// Package httpx writes JSON responses and maps catalog errors to HTTP
// status codes.
package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mytheresa/product-catalog/models"
)

// OK writes body as JSON with status 200.
func OK(w http.ResponseWriter, body any) {
	JSON(w, http.StatusOK, body)
}

// JSON writes body as JSON with the given status.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// StatusFor maps a repository error onto an HTTP status.
func StatusFor(err error) int {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUniquenessViolation), errors.Is(err, models.ErrProtectedReference):
		return http.StatusConflict
	case errors.Is(err, models.ErrReferentialIntegrity):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// RepoError writes err using StatusFor. Client errors carry the error text;
// server errors are logged and replaced by fallback.
func RepoError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), fallback, "path", r.URL.Path, "error", err)
		Error(w, status, fallback)
		return
	}
	Error(w, status, err.Error())
}
