package model

import "time"

// Status — статус заявки на аренду.
type Status string

// Возможные статусы заявки. Других значений в хранилище не бывает.
const (
	StatusNotApplying Status = "not-applying"
	StatusApplied     Status = "applied"
	StatusRejected    Status = "rejected"
)

// Valid сообщает, входит ли значение в перечисление статусов.
func (s Status) Valid() bool {
	switch s {
	case StatusNotApplying, StatusApplied, StatusRejected:
		return true
	}
	return false
}

// RentalApplication представляет отслеживаемое объявление об аренде
// вместе с метаданными просмотра и подачи заявки.
// Viewer — текстовый снимок имени пользователя, не внешний ключ.
type RentalApplication struct {
	ID          int64      `json:"id,string"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Link        string     `json:"link"`
	ViewingDate *time.Time `json:"viewingDate,omitempty"`
	Viewer      string     `json:"viewer"`
	Notes       *string    `json:"notes"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
