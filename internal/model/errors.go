package model

import "errors"

// ErrNotFound возвращается, когда запись с указанным id отсутствует в хранилище.
var ErrNotFound = errors.New("record not found")
