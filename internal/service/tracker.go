package service

import (
	"context"
	"time"

	"github.com/Totarae/RentalTracker/internal/model"
	"go.uber.org/zap"
)

// ApplicationRepository определяет операции хранилища заявок, нужные сервису.
type ApplicationRepository interface {
	SaveApplication(ctx context.Context, app *model.RentalApplication) error
	GetApplication(ctx context.Context, id int64) (*model.RentalApplication, error)
	ListApplications(ctx context.Context) ([]model.RentalApplication, error)
	UpdateApplication(ctx context.Context, app *model.RentalApplication) error
	DeleteApplication(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// UserRepository определяет операции хранилища пользователей.
type UserRepository interface {
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// TrackerService реализует операции над заявками и пользователями:
// валидация входа, выставление таймстемпов, обращение к хранилищу.
type TrackerService struct {
	Apps   ApplicationRepository
	Users  UserRepository
	Logger *zap.Logger
	now    func() time.Time
}

// NewTrackerService создаёт сервис поверх переданных репозиториев.
func NewTrackerService(apps ApplicationRepository, users UserRepository, logger *zap.Logger) *TrackerService {
	return &TrackerService{
		Apps:   apps,
		Users:  users,
		Logger: logger,
		now:    time.Now,
	}
}

// CreateApplication проверяет поля и сохраняет новую заявку.
// При создании createdAt == updatedAt.
func (s *TrackerService) CreateApplication(ctx context.Context, req model.CreateApplicationRequest) (*model.RentalApplication, error) {
	// Отсутствующий status — значение по умолчанию; присланный,
	// включая пустую строку, обязан входить в перечисление.
	status := model.StatusNotApplying
	if req.Status != nil {
		status = *req.Status
	}

	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := validateAddress(req.Address); err != nil {
		return nil, err
	}
	if err := validateLink(req.Link); err != nil {
		return nil, err
	}
	if err := validateViewer(req.Viewer); err != nil {
		return nil, err
	}
	if err := validateNotes(req.Notes); err != nil {
		return nil, err
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	now := s.now()
	app := &model.RentalApplication{
		Name:        req.Name,
		Address:     req.Address,
		Link:        req.Link,
		ViewingDate: req.ViewingDate,
		Viewer:      req.Viewer,
		Notes:       req.Notes,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Apps.SaveApplication(ctx, app); err != nil {
		s.Logger.Error("failed to save application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

// UpdateApplication применяет переданные поля к существующей заявке.
// Каждое присланное поле проходит ту же валидацию, что и при создании.
func (s *TrackerService) UpdateApplication(ctx context.Context, id int64, req model.UpdateApplicationRequest) (*model.RentalApplication, error) {
	app, err := s.Apps.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
		app.Name = *req.Name
	}
	if req.Address != nil {
		if err := validateAddress(*req.Address); err != nil {
			return nil, err
		}
		app.Address = *req.Address
	}
	if req.Link != nil {
		if err := validateLink(*req.Link); err != nil {
			return nil, err
		}
		app.Link = *req.Link
	}
	if req.ViewingDate != nil {
		app.ViewingDate = req.ViewingDate
	}
	if req.Viewer != nil {
		if err := validateViewer(*req.Viewer); err != nil {
			return nil, err
		}
		app.Viewer = *req.Viewer
	}
	if req.Notes.Set {
		if err := validateNotes(req.Notes.Value); err != nil {
			return nil, err
		}
		// Явный null сбрасывает заметки
		app.Notes = req.Notes.Value
	}
	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return nil, err
		}
		app.Status = *req.Status
	}

	app.UpdatedAt = s.now()

	if err := s.Apps.UpdateApplication(ctx, app); err != nil {
		s.Logger.Error("failed to update application", zap.Error(err), zap.Int64("id", id))
		return nil, err
	}
	return app, nil
}

// GetApplication возвращает заявку по id.
func (s *TrackerService) GetApplication(ctx context.Context, id int64) (*model.RentalApplication, error) {
	return s.Apps.GetApplication(ctx, id)
}

// ListApplications возвращает все заявки, отсортированные по name.
func (s *TrackerService) ListApplications(ctx context.Context) ([]model.RentalApplication, error) {
	return s.Apps.ListApplications(ctx)
}

// DeleteApplication удаляет заявку. Удаление отсутствующего id — no-op.
func (s *TrackerService) DeleteApplication(ctx context.Context, id int64) error {
	return s.Apps.DeleteApplication(ctx, id)
}

// CreateUser проверяет имя и сохраняет нового пользователя.
func (s *TrackerService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if err := validateFirstName(req.FirstName); err != nil {
		return nil, err
	}

	user := &model.User{FirstName: req.FirstName}
	if err := s.Users.SaveUser(ctx, user); err != nil {
		s.Logger.Error("failed to save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// UpdateUser применяет переданные поля к существующему пользователю.
func (s *TrackerService) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.Users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if err := validateFirstName(*req.FirstName); err != nil {
			return nil, err
		}
		user.FirstName = *req.FirstName
	}

	if err := s.Users.UpdateUser(ctx, user); err != nil {
		s.Logger.Error("failed to update user", zap.Error(err), zap.Int64("id", id))
		return nil, err
	}
	return user, nil
}

// GetUser возвращает пользователя по id.
func (s *TrackerService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.Users.GetUser(ctx, id)
}

// ListUsers возвращает всех пользователей, отсортированных по firstName.
func (s *TrackerService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.Users.ListUsers(ctx)
}

// DeleteUser удаляет пользователя. Заявки, где viewer совпадает с его именем,
// не затрагиваются: viewer — текстовый снимок, а не ссылка.
func (s *TrackerService) DeleteUser(ctx context.Context, id int64) error {
	return s.Users.DeleteUser(ctx, id)
}

// Ping проверяет доступность хранилища.
func (s *TrackerService) Ping(ctx context.Context) error {
	return s.Apps.Ping(ctx)
}
