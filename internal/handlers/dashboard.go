package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Totarae/RentalTracker/internal/derive"
)

// DashboardResponse — статистика и лента активности одним ответом.
type DashboardResponse struct {
	Stats          derive.Stats      `json:"stats"`
	RecentActivity []derive.Activity `json:"recentActivity"`
}

// CalendarResponse — события месяца, сгруппированные по дню.
type CalendarResponse struct {
	Year   int                           `json:"year"`
	Month  int                           `json:"month"`
	Events map[int][]derive.CalendarEvent `json:"events"`
}

// Dashboard отдаёт счётчики и ленту недавней активности.
// Всё считается заново по полному списку заявок.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Service.ListApplications(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, DashboardResponse{
		Stats:          derive.ComputeStats(apps, time.Now()),
		RecentActivity: derive.RecentActivities(apps),
	})
}

// Calendar отдаёт события просмотров за месяц, сгруппированные по дню.
// Параметры year и month необязательны, по умолчанию текущий месяц.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = v
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			h.writeError(w, http.StatusBadRequest, "invalid month")
			return
		}
		month = time.Month(v)
	}

	apps, err := h.Service.ListApplications(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	events := derive.CalendarEvents(apps)
	h.writeJSON(w, http.StatusOK, CalendarResponse{
		Year:   year,
		Month:  int(month),
		Events: derive.EventsByDay(events, year, month),
	})
}

// UpcomingViewings отдаёт ближайшие просмотры для виджета (не более пяти).
func (h *Handler) UpcomingViewings(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Service.ListApplications(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	events := derive.CalendarEvents(apps)
	h.writeJSON(w, http.StatusOK, derive.UpcomingEvents(events, time.Now()))
}
