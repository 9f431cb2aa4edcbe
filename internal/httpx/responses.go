package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error wire shape: {"error": "<message>"}. Success
// responses carry the payload bare (the search endpoint returns a JSON
// array), so there is no success envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}
