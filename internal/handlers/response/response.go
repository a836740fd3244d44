package response

import (
	"encoding/json"
	"net/http"
)

// ErrorMessage is the failure envelope returned by every API endpoint
type ErrorMessage struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func NewError(statusCode int, message string) ErrorMessage {
	return ErrorMessage{Success: false, Message: message, StatusCode: statusCode}
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	WriteJSON(w, err.StatusCode, err)
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteRaw writes an already encoded JSON body
func WriteRaw(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
