package content

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/session"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.HeroContent{},
		&models.AboutContent{},
		&models.ServiceItem{},
		&models.ProductItem{},
		&models.TeamMember{},
		&models.TestimonialItem{},
		&models.PortfolioItem{},
		&models.FaqItem{},
	); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}
}

// testStorage is a minimal in-memory implementation of fiber.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ fiber.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

const adminSessionID = "testsession"

func newTestService(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	app := fiber.New()
	sessions := session.New(&testStorage{data: make(map[string][]byte)}, time.Minute)

	if err := sessions.Set(adminSessionID, session.Identity{ID: 1, Username: "admin", Role: "admin"}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	var s Service
	if err := s.Init(app, newTestConfig(), db, sessions); err != nil {
		t.Fatalf("failed to init handler: %v", err)
	}

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string, asAdmin bool) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if asAdmin {
		req.Header.Set("Cookie", session.CookieName+"="+adminSessionID)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestWritesRequireAdminSession(t *testing.T) {
	app, db := newTestService(t)

	testCases := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "create service", method: http.MethodPost, target: Path + "/services", body: `{"title":"x"}`},
		{name: "update service", method: http.MethodPut, target: Path + "/services/1", body: `{"title":"x"}`},
		{name: "delete service", method: http.MethodDelete, target: Path + "/services/1"},
		{name: "upsert hero", method: http.MethodPost, target: Path + "/hero", body: `{"title":"x"}`},
		{name: "upsert about", method: http.MethodPost, target: Path + "/about", body: `{"title":"x"}`},
		{name: "create faq", method: http.MethodPost, target: Path + "/faq", body: `{"question":"q","answer":"a"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, tc.method, tc.target, tc.body, false)
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("expected 401 Unauthorized, got %d", resp.StatusCode)
			}
		})
	}

	// none of the rejected writes may have touched the database
	var count int64
	db.Model(&models.ServiceItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows after rejected writes, got %d", count)
	}
}

func TestNonAdminRoleIsRejected(t *testing.T) {
	db := newTestDB(t)
	app := fiber.New()
	sessions := session.New(&testStorage{data: make(map[string][]byte)}, time.Minute)

	if err := sessions.Set("usersession", session.Identity{ID: 2, Username: "reader", Role: "user"}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	var s Service
	if err := s.Init(app, newTestConfig(), db, sessions); err != nil {
		t.Fatalf("failed to init handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, Path+"/services", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", session.CookieName+"=usersession")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin role, got %d", resp.StatusCode)
	}
}

func TestEmptyListIsJSONArray(t *testing.T) {
	app, _ := newTestService(t)

	for _, collection := range []string{"services", "products", "team", "testimonials", "portfolio", "faq"} {
		t.Run(collection, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodGet, Path+"/"+collection, "", false)
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
			}

			body, _ := io.ReadAll(resp.Body)
			if strings.TrimSpace(string(body)) != "[]" {
				t.Fatalf("expected empty array, got %q", string(body))
			}
		})
	}
}

func TestServiceLifecycle(t *testing.T) {
	app, _ := newTestService(t)

	// create
	resp := doRequest(t, app, http.MethodPost, Path+"/services", `{"title":"Design","description":"d","icon":"pen"}`, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", resp.StatusCode)
	}

	var created models.ServiceItem
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode created item: %v", err)
	}
	_ = resp.Body.Close()

	if created.ID == 0 || created.SortOrder != 1 {
		t.Fatalf("unexpected created item: %+v", created)
	}

	// update
	resp = doRequest(t, app, http.MethodPut, Path+"/services/1", `{"description":"new"}`, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	var updated models.ServiceItem
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("failed to decode updated item: %v", err)
	}
	_ = resp.Body.Close()

	if updated.Title != "Design" || updated.Description != "new" {
		t.Fatalf("unexpected updated item: %+v", updated)
	}

	// list
	resp = doRequest(t, app, http.MethodGet, Path+"/services", "", false)
	var items []models.ServiceItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	_ = resp.Body.Close()

	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}

	// delete, twice: the second delete is still a 204
	for i := 0; i < 2; i++ {
		resp = doRequest(t, app, http.MethodDelete, Path+"/services/1", "", true)
		_ = resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("expected 204 No Content on delete %d, got %d", i+1, resp.StatusCode)
		}
	}
}

func TestUpdateMissingItemReturns404(t *testing.T) {
	app, _ := newTestService(t)

	resp := doRequest(t, app, http.MethodPut, Path+"/services/999", `{"title":"x"}`, true)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Not found") {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestCreateValidation(t *testing.T) {
	app, _ := newTestService(t)

	testCases := []struct {
		name   string
		target string
		body   string
	}{
		{name: "service missing title", target: Path + "/services", body: `{"description":"d"}`},
		{name: "faq missing answer", target: Path + "/faq", body: `{"question":"q"}`},
		{name: "team missing role", target: Path + "/team", body: `{"name":"Mara"}`},
		{name: "testimonial missing author", target: Path + "/testimonials", body: `{"content":"c"}`},
		{name: "product missing name", target: Path + "/products", body: `{"price":"9"}`},
		{name: "portfolio missing title", target: Path + "/portfolio", body: `{"category":"print"}`},
		{name: "malformed json", target: Path + "/services", body: `{`},
		{name: "unknown field", target: Path + "/services", body: `{"title":"x","bogus":1}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, tc.target, tc.body, true)
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", resp.StatusCode)
			}
		})
	}
}

func TestHeroEndpoints(t *testing.T) {
	app, _ := newTestService(t)

	// unwritten singleton reads as an empty object
	resp := doRequest(t, app, http.MethodGet, Path+"/hero", "", false)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if strings.TrimSpace(string(body)) != "{}" {
		t.Fatalf("expected empty object, got %q", string(body))
	}

	// upsert, then read back
	resp = doRequest(t, app, http.MethodPost, Path+"/hero", `{"title":"Welcome","buttonText":"Go"}`, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	var hero models.HeroContent
	if err := json.NewDecoder(resp.Body).Decode(&hero); err != nil {
		t.Fatalf("failed to decode hero: %v", err)
	}
	_ = resp.Body.Close()

	if hero.Title != "Welcome" || hero.ButtonText != "Go" {
		t.Fatalf("unexpected hero: %+v", hero)
	}

	// partial upsert keeps the untouched fields
	resp = doRequest(t, app, http.MethodPost, Path+"/hero", `{"subtitle":"sub"}`, true)
	var merged models.HeroContent
	if err := json.NewDecoder(resp.Body).Decode(&merged); err != nil {
		t.Fatalf("failed to decode hero: %v", err)
	}
	_ = resp.Body.Close()

	if merged.Title != "Welcome" || merged.Subtitle != "sub" {
		t.Fatalf("unexpected merged hero: %+v", merged)
	}
}

func TestAboutEndpoints(t *testing.T) {
	app, _ := newTestService(t)

	resp := doRequest(t, app, http.MethodGet, Path+"/about", "", false)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if strings.TrimSpace(string(body)) != "{}" {
		t.Fatalf("expected empty object, got %q", string(body))
	}

	resp = doRequest(t, app, http.MethodPost, Path+"/about", `{"title":"About us","content":"Long form."}`, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	var about models.AboutContent
	if err := json.NewDecoder(resp.Body).Decode(&about); err != nil {
		t.Fatalf("failed to decode about: %v", err)
	}
	_ = resp.Body.Close()

	if about.Title != "About us" || about.Content != "Long form." {
		t.Fatalf("unexpected about: %+v", about)
	}
}

func TestListKeepsDisplayOrder(t *testing.T) {
	app, _ := newTestService(t)

	for _, body := range []string{
		`{"question":"second","answer":"a","order":2}`,
		`{"question":"first","answer":"a","order":1}`,
		`{"question":"third","answer":"a"}`,
	} {
		resp := doRequest(t, app, http.MethodPost, Path+"/faq", body, true)
		_ = resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", resp.StatusCode)
		}
	}

	resp := doRequest(t, app, http.MethodGet, Path+"/faq", "", false)
	defer func() { _ = resp.Body.Close() }()

	var items []models.FaqItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected three items, got %d", len(items))
	}

	// "third" had no explicit order and was appended after the maximum
	if items[0].Question != "first" || items[1].Question != "second" || items[2].Question != "third" {
		t.Fatalf("unexpected order: %q %q %q", items[0].Question, items[1].Question, items[2].Question)
	}
}
