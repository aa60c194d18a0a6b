package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Totarae/RentalTracker/internal/handlers"
	"github.com/Totarae/RentalTracker/internal/model"
	"github.com/Totarae/RentalTracker/internal/service"
	"github.com/Totarae/RentalTracker/internal/storage"
	"go.uber.org/zap"
)

// ExampleHandler_CreateApplication демонстрирует создание заявки.
func ExampleHandler_CreateApplication() {
	store := storage.NewMemStore()
	svc := service.NewTrackerService(store, store, zap.NewNop())
	h := handlers.NewHandler(svc, zap.NewNop())

	body := `{"name":"Loft","link":"https://x.test/1","viewer":"Sam"}`
	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.CreateApplication(rec, req)
	resp := rec.Result()
	defer resp.Body.Close()

	var app model.RentalApplication
	_ = json.NewDecoder(resp.Body).Decode(&app)

	fmt.Println(resp.StatusCode)
	fmt.Println(app.Name, app.Status)

	// Output:
	// 201
	// Loft not-applying
}
