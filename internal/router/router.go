package router

import (
	"github.com/Totarae/RentalTracker/internal/handlers"
	"github.com/Totarae/RentalTracker/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие
	r.Use(middleware.MetricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Route("/applications", func(r chi.Router) {
			r.Get("/", handler.ListApplications)
			r.Post("/", handler.CreateApplication)
			r.Get("/{id}", handler.GetApplication)
			r.Put("/{id}", handler.UpdateApplication)
			r.Delete("/{id}", handler.DeleteApplication)
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/", handler.ListUsers)
			r.Post("/", handler.CreateUser)
			r.Get("/{id}", handler.GetUser)
			r.Put("/{id}", handler.UpdateUser)
			r.Delete("/{id}", handler.DeleteUser)
		})
		r.Get("/dashboard", handler.Dashboard)
		r.Get("/calendar", handler.Calendar)
		r.Get("/calendar/upcoming", handler.UpcomingViewings)
	})

	r.Get("/ping", handler.Ping)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
