package middleware

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// WriteError answers with the status text. htmx requests get a JSON body.
func WriteError(w http.ResponseWriter, r *http.Request, status int) {
	msg := http.StatusText(status)
	if !IsHTMX(r.Context()) {
		http.Error(w, msg, status)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg, Status: status})
}
