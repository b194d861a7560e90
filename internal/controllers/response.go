package controllers

import (
	"context"
	"errors"
	json "github.com/goccy/go-json"
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"net/http"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError maps service errors onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, logger providers.Logger, err error) {
	var (
		verr      *models.ValidationError
		remoteErr *models.RemoteRequestError
		perr      *models.PersistenceError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, verr)
	case errors.Is(err, models.ErrNotAuthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.As(err, &remoteErr):
		status := http.StatusBadGateway
		if remoteErr.Status >= 400 && remoteErr.Status < 500 {
			status = remoteErr.Status
		}
		writeJSON(w, status, errorResponse{Error: remoteErr.Error()})
	case errors.As(err, &perr):
		logger.Errorf(providers.TypeApp, "%s %s: %s", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: perr.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled):
		// client went away, nothing to answer
		logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "%s %s cancelled", r.Method, r.URL.Path)
	default:
		logger.Errorf(providers.TypeApp, "%s %s: %s", r.Method, r.URL.Path, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
