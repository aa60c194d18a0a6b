package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Totarae/RentalTracker/internal/model"
)

// ListUsers возвращает всех пользователей, отсортированных по имени.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, users)
}

// CreateUser создаёт нового пользователя.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	user, err := h.Service.CreateUser(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, user)
}

// GetUser возвращает пользователя по id из пути.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Service.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// UpdateUser переименовывает пользователя.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	user, err := h.Service.UpdateUser(r.Context(), id, req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// DeleteUser удаляет пользователя; заявки с его именем в viewer не трогаются.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.DeleteUser(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, model.DeleteResponse{Success: true})
}
