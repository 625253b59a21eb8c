package helpers

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON пишет полезную нагрузку как есть (сущности отдаются без обёртки).
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	ErrorDetails(w, status, errMsg, "")
}

// ErrorDetails — человекочитаемое сообщение плюс машинная деталь.
func ErrorDetails(w http.ResponseWriter, status int, errMsg, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(errorResponse{Error: errMsg, Details: details})
	if err != nil {
		return
	}
}
