package handlertools

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/getzep/csmentor/internal"
	"github.com/getzep/csmentor/pkg/models"
)

var log = internal.GetLogger()

// APIError is the body of every error response.
type APIError struct {
	Detail string `json:"detail"`
}

// IntFromQuery extracts a query string value and converts it to an int
// if it is not empty. If the value is empty, it returns 0.
func IntFromQuery(r *http.Request, param string) (int, error) {
	p := r.URL.Query().Get(param)
	if p == "" {
		return 0, nil
	}
	return strconv.Atoi(p)
}

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// DecodeJSON decodes a JSON request body into the provided data struct.
func DecodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(data)
}

// RenderError renders an error response as JSON.
func RenderError(w http.ResponseWriter, err error, status int) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) || err.Error() == "http: request body too large" {
		status = http.StatusRequestEntityTooLarge
	}

	switch {
	case status >= http.StatusInternalServerError:
		log.Error(err)
	case status != http.StatusNotFound && status != http.StatusMethodNotAllowed:
		// Don't log not found or method errors
		log.Warn(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(APIError{Detail: err.Error()}); encErr != nil {
		log.Errorf("error encoding error response: %v", encErr)
	}
}

// StatusForError maps resolver and store errors onto HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrEmptyQuestion),
		errors.Is(err, models.ErrInvalidFormat),
		errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrModelUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrCorpusUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}
