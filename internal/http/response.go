package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// Envelope is the response shape every endpoint speaks:
// {status, message?, data?}.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func JSONSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeEnvelope(w, statusCode, Envelope{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, Envelope{
		Status:  statusFail,
		Message: message,
	})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, e Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(e)
}
