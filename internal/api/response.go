package api

import (
	"net/http"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("encode response")
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Status: status, Message: "could not encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Status: status, Message: msg})
}

// decode reads a JSON request body into v, replying 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
