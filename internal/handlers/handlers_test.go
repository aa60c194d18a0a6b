package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Totarae/RentalTracker/internal/handlers"
	"github.com/Totarae/RentalTracker/internal/model"
	"github.com/Totarae/RentalTracker/internal/router"
	"github.com/Totarae/RentalTracker/internal/service"
	"github.com/Totarae/RentalTracker/internal/storage"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	store := storage.NewMemStore()
	svc := service.NewTrackerService(store, store, zap.NewNop())
	handler := handlers.NewHandler(svc, zap.NewNop())
	return router.NewRouter(handler, zap.NewNop())
}

func doJSON(t *testing.T, r http.Handler, method, target, body string) *http.Response {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Result()
}

func TestCreateApplication(t *testing.T) {
	r := newTestRouter()

	body := `{"name":"Loft","link":"https://x.test/1","viewer":"Sam"}`
	resp := doJSON(t, r, http.MethodPost, "/api/applications", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}

	var app model.RentalApplication
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if app.ID != 1 {
		t.Errorf("expected id 1, got %d", app.ID)
	}
	if app.Status != model.StatusNotApplying {
		t.Errorf("expected default status, got %s", app.Status)
	}
	if app.Address != "" {
		t.Errorf("expected empty address, got %q", app.Address)
	}
	if app.Notes != nil {
		t.Errorf("expected nil notes, got %q", *app.Notes)
	}
	if !app.CreatedAt.Equal(app.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt at creation")
	}
}

func TestCreateApplication_InvalidLink(t *testing.T) {
	r := newTestRouter()

	body := `{"name":"Loft","link":"not-a-url","viewer":"Sam"}`
	resp := doJSON(t, r, http.MethodPost, "/api/applications", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Ничего не должно было сохраниться
	listResp := doJSON(t, r, http.MethodGet, "/api/applications", "")
	defer listResp.Body.Close()

	var apps []model.RentalApplication
	if err := json.NewDecoder(listResp.Body).Decode(&apps); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("expected empty list, got %d records", len(apps))
	}
}

func TestCreateApplication_MalformedJSON(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/applications", `{"name":`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetApplication_NotFound(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodGet, "/api/applications/99", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestGetApplication_BadID(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodGet, "/api/applications/abc", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestUpdateApplication_Status(t *testing.T) {
	r := newTestRouter()

	createResp := doJSON(t, r, http.MethodPost, "/api/applications",
		`{"name":"Loft","link":"https://x.test/1","viewer":"Sam"}`)
	createResp.Body.Close()

	resp := doJSON(t, r, http.MethodPut, "/api/applications/1", `{"status":"applied"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var app model.RentalApplication
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if app.Status != model.StatusApplied {
		t.Errorf("expected status applied, got %s", app.Status)
	}
	if app.Name != "Loft" {
		t.Errorf("expected name to stay Loft, got %q", app.Name)
	}
}

func TestUpdateApplication_NotesNullClears(t *testing.T) {
	r := newTestRouter()

	createResp := doJSON(t, r, http.MethodPost, "/api/applications",
		`{"name":"Loft","link":"https://x.test/1","viewer":"Sam","notes":"ask about parking"}`)
	createResp.Body.Close()

	// Тело без notes оставляет заметки как есть
	resp := doJSON(t, r, http.MethodPut, "/api/applications/1", `{"status":"applied"}`)
	var app model.RentalApplication
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	resp.Body.Close()
	if app.Notes == nil || *app.Notes != "ask about parking" {
		t.Fatalf("expected notes to be untouched, got %v", app.Notes)
	}

	// Явный null в JSON стирает заметки
	resp = doJSON(t, r, http.MethodPut, "/api/applications/1", `{"notes":null}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if app.Notes != nil {
		t.Errorf("expected notes cleared, got %q", *app.Notes)
	}
}

func TestCreateApplication_ExplicitEmptyStatus(t *testing.T) {
	r := newTestRouter()

	body := `{"name":"Loft","link":"https://x.test/1","viewer":"Sam","status":""}`
	resp := doJSON(t, r, http.MethodPost, "/api/applications", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestUpdateApplication_NotFound(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPut, "/api/applications/5", `{"status":"applied"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestDeleteApplication_AbsentStillSucceeds(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodDelete, "/api/applications/123", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var marker model.DeleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&marker); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !marker.Success {
		t.Errorf("expected success marker")
	}
}

func TestUsers_CreateAndList(t *testing.T) {
	r := newTestRouter()

	for _, name := range []string{"Sam", "Alex"} {
		resp := doJSON(t, r, http.MethodPost, "/api/users", `{"firstName":"`+name+`"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp := doJSON(t, r, http.MethodGet, "/api/users", "")
	defer resp.Body.Close()

	var users []model.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].FirstName != "Alex" || users[1].FirstName != "Sam" {
		t.Errorf("expected users sorted by firstName, got %v", users)
	}
}

func TestCreateUser_EmptyName(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/users", `{"firstName":""}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

// Удаление пользователя не каскадирует на заявки с его именем в viewer.
func TestDeleteUser_ViewerSnapshotSurvives(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/users", `{"firstName":"Sam"}`)
	resp.Body.Close()

	resp = doJSON(t, r, http.MethodPost, "/api/applications",
		`{"name":"Loft","link":"https://x.test/1","viewer":"Sam"}`)
	resp.Body.Close()

	resp = doJSON(t, r, http.MethodDelete, "/api/users/1", "")
	resp.Body.Close()

	resp = doJSON(t, r, http.MethodGet, "/api/applications/1", "")
	defer resp.Body.Close()

	var app model.RentalApplication
	if err := json.NewDecoder(resp.Body).Decode(&app); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if app.Viewer != "Sam" {
		t.Errorf("expected viewer snapshot to survive, got %q", app.Viewer)
	}
}

func TestDashboard(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/applications",
		`{"name":"Loft","link":"https://x.test/1","viewer":"Sam","status":"applied"}`)
	resp.Body.Close()
	resp = doJSON(t, r, http.MethodPost, "/api/applications",
		`{"name":"Studio","link":"https://x.test/2","viewer":"Sam"}`)
	resp.Body.Close()

	resp = doJSON(t, r, http.MethodGet, "/api/dashboard", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var dash handlers.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&dash); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dash.Stats.Total != 2 {
		t.Errorf("expected total 2, got %d", dash.Stats.Total)
	}
	if dash.Stats.Applied != 1 {
		t.Errorf("expected applied 1, got %d", dash.Stats.Applied)
	}
	if len(dash.RecentActivity) > 5 {
		t.Errorf("expected at most 5 activity entries, got %d", len(dash.RecentActivity))
	}
}

func TestCalendar_BadMonth(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodGet, "/api/calendar?year=2025&month=13", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCalendar(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodPost, "/api/applications",
		`{"name":"Loft","link":"https://x.test/1","viewer":"Sam","viewingDate":"2025-07-10T17:00:00Z"}`)
	resp.Body.Close()

	resp = doJSON(t, r, http.MethodGet, "/api/calendar?year=2025&month=7", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var cal handlers.CalendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&cal); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if cal.Year != 2025 || cal.Month != 7 {
		t.Errorf("unexpected period: %d-%d", cal.Year, cal.Month)
	}

	total := 0
	for _, events := range cal.Events {
		total += len(events)
	}
	if total != 1 {
		t.Errorf("expected 1 event in July, got %d", total)
	}
}

func TestPing(t *testing.T) {
	r := newTestRouter()

	resp := doJSON(t, r, http.MethodGet, "/ping", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}
