package helper

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var Validator *validator.Validate

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())
}

// Meta carries pagination info on list responses.
type Meta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Meta    *Meta  `json:"meta,omitempty"`
	Data    any    `json:"data"`
}

func WriteJson(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// WriteSuccess writes a success envelope with the given data.
func WriteSuccess(w http.ResponseWriter, status int, message string, data any) error {
	return WriteJson(w, status, Envelope{
		Message: message,
		Code:    status,
		Status:  "success",
		Data:    data,
	})
}

// WriteSuccessWithMeta writes a success envelope for paginated lists.
func WriteSuccessWithMeta(w http.ResponseWriter, status int, message string, data any, meta Meta) error {
	return WriteJson(w, status, Envelope{
		Message: message,
		Code:    status,
		Status:  "success",
		Meta:    &meta,
		Data:    data,
	})
}

// WriteJsonError writes an error envelope. Data is always null.
func WriteJsonError(w http.ResponseWriter, status int, message string) error {
	return WriteJson(w, status, Envelope{
		Message: message,
		Code:    status,
		Status:  "error",
		Data:    nil,
	})
}

func ReadJson(w http.ResponseWriter, r *http.Request, payload any) error {
	maxBytes := 1_048_578
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(payload)
}
