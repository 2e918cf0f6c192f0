package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quillpress/app/clipdrop"
	"quillpress/app/services"
)

// envelope is the uniform response shape: {success, message?, ...payload}.
type envelope map[string]interface{}

func sendJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func sendSuccess(w http.ResponseWriter, payload envelope) {
	payload["success"] = true
	sendJSON(w, http.StatusOK, payload)
}

// sendError maps the error taxonomy to distinct status codes while
// keeping the envelope shape the clients already parse.
func sendError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, clipdrop.ErrUpstream):
		status = http.StatusBadGateway
	}
	sendJSON(w, status, envelope{
		"success": false,
		"message": err.Error(),
	})
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
