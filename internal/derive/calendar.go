package derive

import (
	"sort"
	"time"

	"github.com/Totarae/RentalTracker/internal/model"
)

// Виджет «ближайшие просмотры» показывает не больше пяти событий.
const maxUpcoming = 5

// CalendarEvent — событие просмотра для календаря.
type CalendarEvent struct {
	ID          int64                   `json:"id,string"`
	Title       string                  `json:"title"`
	Date        time.Time               `json:"date"`
	Application model.RentalApplication `json:"application"`
}

// CalendarEvents проецирует заявки с назначенной датой просмотра в события.
// Заявка без даты просмотра события не порождает.
func CalendarEvents(apps []model.RentalApplication) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(apps))
	for _, app := range apps {
		if app.ViewingDate == nil {
			continue
		}
		events = append(events, CalendarEvent{
			ID:          app.ID,
			Title:       "Viewing: " + app.Name,
			Date:        *app.ViewingDate,
			Application: app,
		})
	}
	return events
}

// SameDay сравнивает два момента по календарному дню в локальном часовом поясе.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// EventsForDate возвращает события, попадающие на указанный день.
func EventsForDate(events []CalendarEvent, date time.Time) []CalendarEvent {
	matched := make([]CalendarEvent, 0)
	for _, ev := range events {
		if SameDay(ev.Date, date) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// EventsByDay группирует события указанного месяца по номеру дня.
func EventsByDay(events []CalendarEvent, year int, month time.Month) map[int][]CalendarEvent {
	byDay := make(map[int][]CalendarEvent)
	for _, ev := range events {
		y, m, d := ev.Date.Local().Date()
		if y == year && m == month {
			byDay[d] = append(byDay[d], ev)
		}
	}
	return byDay
}

// UpcomingEvents возвращает ближайшие события (date >= now)
// по возрастанию даты, не более пяти.
func UpcomingEvents(events []CalendarEvent, now time.Time) []CalendarEvent {
	upcoming := make([]CalendarEvent, 0, len(events))
	for _, ev := range events {
		if !ev.Date.Before(now) {
			upcoming = append(upcoming, ev)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	if len(upcoming) > maxUpcoming {
		upcoming = upcoming[:maxUpcoming]
	}
	return upcoming
}
