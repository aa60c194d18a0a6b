package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Totarae/RentalTracker/internal/model"
)

// ListApplications возвращает все заявки, отсортированные по name.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Service.ListApplications(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, apps)
}

// CreateApplication создаёт новую заявку по телу запроса.
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req model.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	app, err := h.Service.CreateApplication(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, app)
}

// GetApplication возвращает одну заявку по id из пути.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.Service.GetApplication(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, app)
}

// UpdateApplication применяет частичное обновление и возвращает свежую запись.
func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	app, err := h.Service.UpdateApplication(r.Context(), id, req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, app)
}

// DeleteApplication удаляет заявку. Для отсутствующего id отвечает так же успешно.
func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.DeleteApplication(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, model.DeleteResponse{Success: true})
}
