package derive

import (
	"fmt"
	"sort"
	"time"

	"github.com/Totarae/RentalTracker/internal/model"
)

// ActivityType — тип записи в ленте активности.
type ActivityType string

// Типы синтетических событий.
const (
	ActivityViewing  ActivityType = "viewing"
	ActivityStatus   ActivityType = "status"
	ActivityProperty ActivityType = "property"
	ActivityNotes    ActivityType = "notes"
)

// Лента показывает не больше пяти последних записей.
const maxActivities = 5

// Activity — одна синтетическая запись ленты недавней активности.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}

// RecentActivities строит ленту активности: до четырёх событий на заявку,
// сортировка по убыванию времени, не более пяти записей на выходе.
// Порядок записей с одинаковым временем сохраняется как в исходном списке.
func RecentActivities(apps []model.RentalApplication) []Activity {
	activities := make([]Activity, 0, len(apps)*4)

	for _, app := range apps {
		if app.ViewingDate != nil {
			activities = append(activities, Activity{
				ID:    fmt.Sprintf("viewing-%d", app.ID),
				Type:  ActivityViewing,
				Title: "Viewing Scheduled",
				Description: fmt.Sprintf("Viewing scheduled for %s on %s at %s",
					app.Address,
					app.ViewingDate.Local().Format("02.01.2006"),
					app.ViewingDate.Local().Format("15:04")),
				Timestamp: *app.ViewingDate,
			})
		}

		activities = append(activities, Activity{
			ID:          fmt.Sprintf("status-%d", app.ID),
			Type:        ActivityStatus,
			Title:       "Status Updated",
			Description: fmt.Sprintf("Application status changed to %s for %s", app.Status, app.Address),
			Timestamp:   app.UpdatedAt,
		})

		activities = append(activities, Activity{
			ID:          fmt.Sprintf("name-%d", app.ID),
			Type:        ActivityProperty,
			Title:       "Property Title Updated",
			Description: fmt.Sprintf("Property %q at %s was updated", app.Name, app.Address),
			Timestamp:   app.UpdatedAt,
		})

		if app.Notes != nil && *app.Notes != "" {
			activities = append(activities, Activity{
				ID:          fmt.Sprintf("notes-%d", app.ID),
				Type:        ActivityNotes,
				Title:       "Notes Updated",
				Description: fmt.Sprintf("Notes updated for %s", app.Address),
				Timestamp:   app.UpdatedAt,
			})
		}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}
	return activities
}
