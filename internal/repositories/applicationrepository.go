package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/RentalTracker/internal/database"
	"github.com/Totarae/RentalTracker/internal/model"
	"github.com/jackc/pgx/v5"
)

// ApplicationRepositoryInterface определяет методы репозитория заявок.
type ApplicationRepositoryInterface interface {
	SaveApplication(ctx context.Context, app *model.RentalApplication) error
	GetApplication(ctx context.Context, id int64) (*model.RentalApplication, error)
	ListApplications(ctx context.Context) ([]model.RentalApplication, error)
	UpdateApplication(ctx context.Context, app *model.RentalApplication) error
	DeleteApplication(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// ApplicationRepository реализует ApplicationRepositoryInterface поверх PostgreSQL.
type ApplicationRepository struct {
	DB database.DBInterface
}

// NewApplicationRepository создаёт новый экземпляр ApplicationRepository.
func NewApplicationRepository(db database.DBInterface) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

// SaveApplication сохраняет новую заявку и проставляет выданный базой id.
func (r *ApplicationRepository) SaveApplication(ctx context.Context, app *model.RentalApplication) error {
	query := `INSERT INTO rental_applications
	              (name, address, link, viewing_date, viewer, notes, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id`

	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		app.Name, app.Address, app.Link, app.ViewingDate,
		app.Viewer, app.Notes, app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// GetApplication извлекает заявку по идентификатору.
func (r *ApplicationRepository) GetApplication(ctx context.Context, id int64) (*model.RentalApplication, error) {
	query := `SELECT id, name, address, link, viewing_date, viewer, notes, status, created_at, updated_at
	          FROM rental_applications WHERE id = $1`

	app := &model.RentalApplication{}
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.Name, &app.Address, &app.Link, &app.ViewingDate,
		&app.Viewer, &app.Notes, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("rental application %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return app, nil
}

// ListApplications возвращает все заявки, отсортированные по name по возрастанию.
func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]model.RentalApplication, error) {
	query := `SELECT id, name, address, link, viewing_date, viewer, notes, status, created_at, updated_at
	          FROM rental_applications ORDER BY name`

	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	results := make([]model.RentalApplication, 0)
	for rows.Next() {
		var app model.RentalApplication
		err := rows.Scan(
			&app.ID, &app.Name, &app.Address, &app.Link, &app.ViewingDate,
			&app.Viewer, &app.Notes, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return results, nil
}

// UpdateApplication перезаписывает изменяемые поля заявки целиком.
func (r *ApplicationRepository) UpdateApplication(ctx context.Context, app *model.RentalApplication) error {
	query := `UPDATE rental_applications
	          SET name = $1, address = $2, link = $3, viewing_date = $4,
	              viewer = $5, notes = $6, status = $7, updated_at = $8
	          WHERE id = $9`

	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		app.Name, app.Address, app.Link, app.ViewingDate,
		app.Viewer, app.Notes, app.Status, app.UpdatedAt, app.ID,
	)
	if err != nil {
		return fmt.Errorf("database update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rental application %d: %w", app.ID, model.ErrNotFound)
	}
	return nil
}

// DeleteApplication удаляет заявку. Отсутствие записи ошибкой не считается.
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id int64) error {
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, `DELETE FROM rental_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("database delete error: %w", err)
	}
	return nil
}

// Ping проверяет доступность базы данных.
func (r *ApplicationRepository) Ping(ctx context.Context) error {
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, "SELECT 1")
	return err
}
