package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-reel-keeper/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteAPIError writes the uniform error response body with the given
// message and status code.
func WriteAPIError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, models.APIError{Error: message}, statusCode) //nolint:errcheck
}

// WriteLockedError writes the account-locked rejection body, including the
// timestamp until which login attempts will be refused.
func WriteLockedError(w http.ResponseWriter, message string, lockedUntil time.Time, statusCode int) {
	WriteJSON(w, models.APIError{Error: message, LockedUntil: &lockedUntil}, statusCode) //nolint:errcheck
}
