package model

import (
	"encoding/json"
	"time"
)

// OptString различает три состояния поля в JSON:
// поле отсутствует (Set == false), явный null (Set, Value == nil)
// и строка (Set, Value != nil).
type OptString struct {
	Value *string
	Set   bool
}

// UnmarshalJSON вызывается только для присутствующих полей,
// поэтому сам факт вызова означает Set.
func (o *OptString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// CreateApplicationRequest представляет тело запроса на создание заявки.
// Отсутствующий status означает значение по умолчанию.
type CreateApplicationRequest struct {
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Link        string     `json:"link"`
	ViewingDate *time.Time `json:"viewingDate"`
	Viewer      string     `json:"viewer"`
	Notes       *string    `json:"notes"`
	Status      *Status    `json:"status"`
}

// UpdateApplicationRequest представляет частичное обновление заявки.
// nil означает «поле не трогать»; notes поддерживает явный null
// для сброса заметок.
type UpdateApplicationRequest struct {
	Name        *string    `json:"name"`
	Address     *string    `json:"address"`
	Link        *string    `json:"link"`
	ViewingDate *time.Time `json:"viewingDate"`
	Viewer      *string    `json:"viewer"`
	Notes       OptString  `json:"notes"`
	Status      *Status    `json:"status"`
}

// CreateUserRequest представляет тело запроса на создание пользователя.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
}

// UpdateUserRequest представляет частичное обновление пользователя.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
}

// DeleteResponse — маркер успешного удаления.
type DeleteResponse struct {
	Success bool `json:"success"`
}
