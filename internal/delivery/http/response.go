package http

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope wrapping every API payload.
// On success: Success is true, Data is set, Message is nil.
// On error: Success is false, Data is nil, Message describes the failure.
// swagger:model APIResponse
type APIResponse struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Message *string `json:"message"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes a success envelope around data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data, Message: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode,
// and encodes an error envelope carrying the message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: false, Data: nil, Message: &message})
}
