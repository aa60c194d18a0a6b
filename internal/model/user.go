package model

// User представляет пользователя-просмотрщика из настроек.
// Идентификатор выдаётся сервером и наружу сериализуется строкой.
type User struct {
	ID        int64  `json:"id,string"`
	FirstName string `json:"firstName"`
}
