package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/RentalTracker/internal/database"
	"github.com/Totarae/RentalTracker/internal/model"
	"github.com/jackc/pgx/v5"
)

// UserRepositoryInterface определяет методы репозитория пользователей.
type UserRepositoryInterface interface {
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserRepository реализует UserRepositoryInterface поверх PostgreSQL.
type UserRepository struct {
	DB database.DBInterface
}

// NewUserRepository создаёт новый экземпляр UserRepository.
func NewUserRepository(db database.DBInterface) *UserRepository {
	return &UserRepository{DB: db}
}

// SaveUser сохраняет нового пользователя и проставляет выданный базой id.
func (r *UserRepository) SaveUser(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (first_name) VALUES ($1) RETURNING id`

	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, user.FirstName).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// GetUser извлекает пользователя по идентификатору.
func (r *UserRepository) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	err := r.DB.(*database.DB).Pool.QueryRow(ctx,
		`SELECT id, first_name FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.FirstName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

// ListUsers возвращает всех пользователей, отсортированных по first_name.
func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.(*database.DB).Pool.Query(ctx,
		`SELECT id, first_name FROM users ORDER BY first_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	results := make([]model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.FirstName); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return results, nil
}

// UpdateUser переименовывает пользователя.
func (r *UserRepository) UpdateUser(ctx context.Context, user *model.User) error {
	tag, err := r.DB.(*database.DB).Pool.Exec(ctx,
		`UPDATE users SET first_name = $1 WHERE id = $2`, user.FirstName, user.ID)
	if err != nil {
		return fmt.Errorf("database update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", user.ID, model.ErrNotFound)
	}
	return nil
}

// DeleteUser удаляет пользователя. Отсутствие записи ошибкой не считается.
// Заявки, ссылающиеся на имя пользователя в поле viewer, не трогаем.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("database delete error: %w", err)
	}
	return nil
}
