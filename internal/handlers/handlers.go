package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Totarae/RentalTracker/internal/model"
	"github.com/Totarae/RentalTracker/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler обслуживает JSON API трекера аренды.
type Handler struct {
	Service *service.TrackerService
	Logger  *zap.Logger
}

// NewHandler создаёт обработчик поверх сервиса.
func NewHandler(svc *service.TrackerService, logger *zap.Logger) *Handler {
	return &Handler{Service: svc, Logger: logger}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// respondError переводит ошибки сервиса в HTTP-статусы.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidation(err):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not found")
	default:
		h.Logger.Error("internal error", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// Ping проверяет доступность хранилища.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Ping(r.Context()); err != nil {
		h.writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}
	w.WriteHeader(http.StatusOK)
}
