package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"foodie-hub/order-svc/internal/domain"
	"foodie-hub/order-svc/internal/logger"

	"github.com/gorilla/mux"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	maxBodySize = 10 << 20
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps the error kind to a status code. Anything untyped is an
// internal error and its details stay in the log.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		h.log().Error("request failed", slog.String("request_id", RequestID(r.Context())), logger.Err(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.log().Error("request failed", slog.String("request_id", RequestID(r.Context())), logger.Err(err))
	}
	writeJSON(w, status, errorResponse{Error: domainErr.Code, Message: domainErr.Message})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	h.writeError(w, r, domain.InvalidInput(message))
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 || id > math.MaxInt32 {
		return 0, domain.InvalidInput("invalid " + name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func pageRequest(r *http.Request) domain.PageRequest {
	limit := queryInt(r, "limit", defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	return domain.PageRequest{Page: queryInt(r, "page", defaultPage), Limit: limit}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.InvalidInput("request body too large")
		}
		return domain.InvalidInput("invalid JSON payload")
	}
	return nil
}
