package controller

import (
	"encoding/json"
	"net/http"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// writeRepoError maps a business error to a response: validation failures
// carry their reason back as a 400, anything else is a 500.
func writeRepoError(w http.ResponseWriter, err error) {
	if repository.IsValidation(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
