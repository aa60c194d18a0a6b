// Package storage содержит потокобезопасное хранилище в памяти.
// Используется, когда DSN базы не задан, и в тестах.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Totarae/RentalTracker/internal/model"
)

// MemStore хранит заявки и пользователей в памяти под RWMutex.
// Идентификаторы выдаются по возрастанию и никогда не переиспользуются.
type MemStore struct {
	mu         sync.RWMutex
	apps       map[int64]model.RentalApplication
	users      map[int64]model.User
	nextAppID  int64
	nextUserID int64
}

// NewMemStore создаёт пустое хранилище.
func NewMemStore() *MemStore {
	return &MemStore{
		apps:  make(map[int64]model.RentalApplication),
		users: make(map[int64]model.User),
	}
}

// SaveApplication сохраняет заявку и проставляет новый id.
func (s *MemStore) SaveApplication(_ context.Context, app *model.RentalApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAppID++
	app.ID = s.nextAppID
	s.apps[app.ID] = *app
	return nil
}

// GetApplication возвращает копию заявки по id.
func (s *MemStore) GetApplication(_ context.Context, id int64) (*model.RentalApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.apps[id]
	if !ok {
		return nil, fmt.Errorf("rental application %d: %w", id, model.ErrNotFound)
	}
	return &app, nil
}

// ListApplications возвращает все заявки, отсортированные по name.
func (s *MemStore) ListApplications(_ context.Context) ([]model.RentalApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]model.RentalApplication, 0, len(s.apps))
	for _, app := range s.apps {
		results = append(results, app)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// UpdateApplication перезаписывает существующую заявку.
func (s *MemStore) UpdateApplication(_ context.Context, app *model.RentalApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.apps[app.ID]; !ok {
		return fmt.Errorf("rental application %d: %w", app.ID, model.ErrNotFound)
	}
	s.apps[app.ID] = *app
	return nil
}

// DeleteApplication удаляет заявку; отсутствие записи — не ошибка.
func (s *MemStore) DeleteApplication(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.apps, id)
	return nil
}

// Ping у хранилища в памяти всегда успешен.
func (s *MemStore) Ping(_ context.Context) error {
	return nil
}

// SaveUser сохраняет пользователя и проставляет новый id.
func (s *MemStore) SaveUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	user.ID = s.nextUserID
	s.users[user.ID] = *user
	return nil
}

// GetUser возвращает копию пользователя по id.
func (s *MemStore) GetUser(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, model.ErrNotFound)
	}
	return &user, nil
}

// ListUsers возвращает всех пользователей, отсортированных по firstName.
func (s *MemStore) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		results = append(results, user)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].FirstName != results[j].FirstName {
			return results[i].FirstName < results[j].FirstName
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// UpdateUser перезаписывает существующего пользователя.
func (s *MemStore) UpdateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return fmt.Errorf("user %d: %w", user.ID, model.ErrNotFound)
	}
	s.users[user.ID] = *user
	return nil
}

// DeleteUser удаляет пользователя; отсутствие записи — не ошибка.
// Заявки с его именем в поле viewer остаются как есть.
func (s *MemStore) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	return nil
}
