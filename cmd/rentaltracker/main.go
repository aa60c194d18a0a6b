package main

import (
	"net/http"

	"github.com/Totarae/RentalTracker/internal/config"
	"github.com/Totarae/RentalTracker/internal/database"
	"github.com/Totarae/RentalTracker/internal/handlers"
	"github.com/Totarae/RentalTracker/internal/repositories"
	"github.com/Totarae/RentalTracker/internal/router"
	"github.com/Totarae/RentalTracker/internal/service"
	"github.com/Totarae/RentalTracker/internal/storage"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()

	var (
		apps  service.ApplicationRepository
		users service.UserRepository
	)

	if cfg.Mode == "database" {
		db, err := database.NewDB(cfg.DatabaseDSN, logger)
		if err != nil {
			logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
		}
		defer db.Close()

		if err := database.RunMigrations(cfg.DatabaseDSN, cfg.PgMigrationsPath, logger); err != nil {
			logger.Fatal("Не удалось применить миграции", zap.Error(err))
		}

		apps = repositories.NewApplicationRepository(db)
		users = repositories.NewUserRepository(db)
	} else {
		store := storage.NewMemStore()
		apps = store
		users = store
	}

	svc := service.NewTrackerService(apps, users, logger)
	handler := handlers.NewHandler(svc, logger)

	r := router.NewRouter(handler, logger)

	logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress), zap.String("mode", cfg.Mode))

	var err error
	if cfg.EnableHTTPS {
		err = http.ListenAndServeTLS(cfg.ServerAddress, cfg.TLSCertPath, cfg.TLSKeyPath, r)
	} else {
		err = http.ListenAndServe(cfg.ServerAddress, r)
	}
	if err != nil {
		logger.Fatal("Ошибка при запуске сервера: ", zap.Error(err))
	}
}
