package derive_test

import (
	"testing"
	"time"

	"github.com/Totarae/RentalTracker/internal/derive"
	"github.com/Totarae/RentalTracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarEvents(t *testing.T) {
	viewing := time.Date(2025, 7, 10, 17, 0, 0, 0, time.UTC)

	apps := []model.RentalApplication{
		{ID: 1, Name: "Loft", ViewingDate: tp(viewing)},
		{ID: 2, Name: "Studio"}, // без даты — события нет
	}

	events := derive.CalendarEvents(apps)
	require.Len(t, events, 1)

	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, "Viewing: Loft", events[0].Title)
	assert.Equal(t, viewing, events[0].Date)
	assert.Equal(t, apps[0], events[0].Application)

	// Дата события всегда совпадает с датой просмотра исходной заявки
	require.NotNil(t, events[0].Application.ViewingDate)
	assert.Equal(t, *events[0].Application.ViewingDate, events[0].Date)
}

func TestEventsForDate(t *testing.T) {
	morning := time.Date(2025, 7, 10, 9, 0, 0, 0, time.Local)
	evening := time.Date(2025, 7, 10, 20, 0, 0, 0, time.Local)
	nextDay := time.Date(2025, 7, 11, 9, 0, 0, 0, time.Local)

	apps := []model.RentalApplication{
		{ID: 1, Name: "A", ViewingDate: tp(morning)},
		{ID: 2, Name: "B", ViewingDate: tp(evening)},
		{ID: 3, Name: "C", ViewingDate: tp(nextDay)},
	}
	events := derive.CalendarEvents(apps)

	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.Local)
	matched := derive.EventsForDate(events, day)
	require.Len(t, matched, 2)
	assert.Equal(t, int64(1), matched[0].ID)
	assert.Equal(t, int64(2), matched[1].ID)
}

func TestEventsByDay(t *testing.T) {
	apps := []model.RentalApplication{
		{ID: 1, Name: "A", ViewingDate: tp(time.Date(2025, 7, 10, 9, 0, 0, 0, time.Local))},
		{ID: 2, Name: "B", ViewingDate: tp(time.Date(2025, 7, 10, 20, 0, 0, 0, time.Local))},
		{ID: 3, Name: "C", ViewingDate: tp(time.Date(2025, 7, 25, 9, 0, 0, 0, time.Local))},
		{ID: 4, Name: "D", ViewingDate: tp(time.Date(2025, 8, 1, 9, 0, 0, 0, time.Local))},
	}
	events := derive.CalendarEvents(apps)

	byDay := derive.EventsByDay(events, 2025, time.July)
	require.Len(t, byDay, 2)
	assert.Len(t, byDay[10], 2)
	assert.Len(t, byDay[25], 1)
}

func TestUpcomingEvents(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	var apps []model.RentalApplication
	// одно событие в прошлом, семь в будущем
	apps = append(apps, model.RentalApplication{ID: 100, Name: "past", ViewingDate: tp(now.Add(-time.Hour))})
	for i := 7; i >= 1; i-- {
		apps = append(apps, model.RentalApplication{
			ID:          int64(i),
			Name:        "future",
			ViewingDate: tp(now.Add(time.Duration(i) * time.Hour)),
		})
	}

	upcoming := derive.UpcomingEvents(derive.CalendarEvents(apps), now)
	require.Len(t, upcoming, 5)

	for i := 1; i < len(upcoming); i++ {
		assert.False(t, upcoming[i].Date.Before(upcoming[i-1].Date),
			"события должны идти по возрастанию даты")
	}
	for _, ev := range upcoming {
		assert.False(t, ev.Date.Before(now))
	}
}

// Событие ровно «сейчас» ещё считается предстоящим.
func TestUpcomingEvents_IncludesNow(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	apps := []model.RentalApplication{{ID: 1, Name: "A", ViewingDate: tp(now)}}

	upcoming := derive.UpcomingEvents(derive.CalendarEvents(apps), now)
	require.Len(t, upcoming, 1)
}
