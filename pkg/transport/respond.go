package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/aeste7/flw/pkg/domain/model"
	"github.com/aeste7/flw/pkg/domain/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type fieldErrorsResponse struct {
	Errors []fieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("write response")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func writeFieldErrors(w http.ResponseWriter, errs []fieldError) {
	writeJSON(w, http.StatusBadRequest, fieldErrorsResponse{Errors: errs})
}

// writeError translates a domain error into the HTTP taxonomy: not-found
// sentinels become 404, validation sentinels 400, everything else an opaque
// 500 whose cause is only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrFlowerNotFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrBouquetNotFound),
		errors.Is(err, model.ErrNoteNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrEmptyFlower),
		errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrEmptyNote):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		log.WithFields(log.Fields{
			"method": r.Method,
			"url":    r.URL.String(),
		}).WithError(err).Error("request failed")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
