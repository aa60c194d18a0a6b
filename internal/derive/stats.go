// Package derive содержит чистые функции построения производных представлений
// (статистика, лента активности, события календаря) по уже загруженному
// списку заявок. Никакого ввода-вывода и внутреннего состояния.
package derive

import (
	"time"

	"github.com/Totarae/RentalTracker/internal/model"
)

// Stats — счётчики для дашборда.
type Stats struct {
	Total            int `json:"total"`
	Applied          int `json:"applied"`
	UpcomingViewings int `json:"upcomingViewings"`
}

// ComputeStats считает статистику за один проход по списку.
// Предстоящим считается просмотр строго позже now.
func ComputeStats(apps []model.RentalApplication, now time.Time) Stats {
	st := Stats{Total: len(apps)}
	for _, app := range apps {
		if app.Status == model.StatusApplied {
			st.Applied++
		}
		if app.ViewingDate != nil && app.ViewingDate.After(now) {
			st.UpcomingViewings++
		}
	}
	return st
}
