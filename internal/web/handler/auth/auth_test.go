package auth

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
	usercontroller "github.com/letterly/letterly/internal/db/controller/user"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/session"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate user model: %v", err)
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

func newTestService(t *testing.T, cfg *config.Config) (*fiber.App, *gorm.DB, *session.Store) {
	t.Helper()

	db := newTestDB(t)
	app := fiber.New()
	sessions := session.New(&testStorage{data: make(map[string][]byte)}, time.Minute)

	var s Service
	if err := s.Init(app, cfg, db, sessions); err != nil {
		t.Fatalf("failed to init handler: %v", err)
	}

	return app, db, sessions
}

func postJSON(t *testing.T, app *fiber.App, target, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	app, db, _ := newTestService(t, newTestConfig())

	resp := postJSON(t, app, Path+"/register", `{"username":"alice","password":"secret1"}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", resp.StatusCode)
	}

	var out struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if out.Message != "User registered successfully" {
		t.Fatalf("unexpected message %q", out.Message)
	}

	if out.User.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", out.User.Role)
	}

	// a session cookie must be set on successful registration
	if c := resp.Header.Get("Set-Cookie"); !strings.Contains(c, session.CookieName+"=") {
		t.Fatalf("expected session cookie, got %q", c)
	}

	// the stored row carries the hash, and the response must not leak it
	u, err := usercontroller.GetByUsername(db, "alice")
	if err != nil {
		t.Fatalf("failed to load user: %v", err)
	}

	if !strings.HasPrefix(u.Password, "$argon2id$") {
		t.Fatalf("expected hashed password, got %q", u.Password)
	}
}

func TestRegisterResponseOmitsPassword(t *testing.T) {
	app, _, _ := newTestService(t, newTestConfig())

	resp := postJSON(t, app, Path+"/register", `{"username":"alice","password":"secret1"}`)
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "password") || strings.Contains(string(body), "secret1") {
		t.Fatalf("response leaks password material: %s", string(body))
	}
}

func TestRegisterClosesAfterFirstUser(t *testing.T) {
	app, _, _ := newTestService(t, newTestConfig())

	resp := postJSON(t, app, Path+"/register", `{"username":"alice","password":"secret1"}`)
	_ = resp.Body.Close()

	resp = postJSON(t, app, Path+"/register", `{"username":"mallory","password":"secret2"}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 Forbidden, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Registration is closed") {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestRegisterValidation(t *testing.T) {
	app, _, _ := newTestService(t, newTestConfig())

	testCases := []struct {
		name string
		body string
	}{
		{name: "short password", body: `{"username":"alice","password":"x"}`},
		{name: "missing username", body: `{"password":"secret1"}`},
		{name: "malformed json", body: `{`},
		{name: "unknown field", body: `{"username":"alice","password":"secret1","admin":true}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, Path+"/register", tc.body)
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", resp.StatusCode)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	app, db, _ := newTestService(t, newTestConfig())

	u := models.User{Username: "alice", Password: "secret1", Role: models.RoleAdmin}
	if err := usercontroller.Create(db, &u); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	testCases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "success", body: `{"username":"alice","password":"secret1"}`, wantStatus: http.StatusOK},
		{name: "wrong password", body: `{"username":"alice","password":"nope"}`, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", body: `{"username":"bob","password":"secret1"}`, wantStatus: http.StatusUnauthorized},
		{name: "missing fields", body: `{"username":"alice"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, Path+"/login", tc.body)
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, resp.StatusCode)
			}

			if tc.wantStatus == http.StatusOK {
				if c := resp.Header.Get("Set-Cookie"); !strings.Contains(c, session.CookieName+"=") {
					t.Fatalf("expected session cookie, got %q", c)
				}
			}
		})
	}
}

func TestLoginCookieSecureFlag(t *testing.T) {
	cfg := newTestConfig()
	cfg.DevMode = true

	app, db, _ := newTestService(t, cfg)

	u := models.User{Username: "alice", Password: "secret1"}
	if err := usercontroller.Create(db, &u); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	resp := postJSON(t, app, Path+"/login", `{"username":"alice","password":"secret1"}`)
	defer func() { _ = resp.Body.Close() }()

	setCookie := strings.ToLower(resp.Header.Get("Set-Cookie"))
	if strings.Contains(setCookie, "secure") {
		t.Fatalf("did not expect Secure flag when DevMode=true, got %q", setCookie)
	}
}

func TestCheck(t *testing.T) {
	app, db, sessions := newTestService(t, newTestConfig())

	// without a session
	req := httptest.NewRequest(http.MethodGet, Path+"/check", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}

	// with a session backed by a real account
	u := models.User{Username: "alice", Password: "secret1", Role: models.RoleAdmin, Email: "alice@example.com"}
	if err := usercontroller.Create(db, &u); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if err := sessions.Set("testsession", session.Identity{ID: u.ID, Username: "alice", Role: "admin"}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, Path+"/check", nil)
	req.Header.Set("Cookie", session.CookieName+"=testsession")

	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d", resp.StatusCode)
	}

	var out struct {
		Authenticated bool        `json:"authenticated"`
		User          models.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !out.Authenticated || out.User.Username != "alice" {
		t.Fatalf("unexpected check payload: %+v", out)
	}

	// the user row is loaded fresh, so account fields beyond the
	// session snapshot come back too
	if out.User.Email != "alice@example.com" {
		t.Fatalf("expected email from the account row, got %q", out.User.Email)
	}
}

func TestCheckStaleSession(t *testing.T) {
	app, _, sessions := newTestService(t, newTestConfig())

	// a session whose account no longer exists is not authenticated
	if err := sessions.Set("testsession", session.Identity{ID: 999, Username: "ghost", Role: "admin"}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, Path+"/check", nil)
	req.Header.Set("Cookie", session.CookieName+"=testsession")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a stale session, got %d", resp.StatusCode)
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	app, _, sessions := newTestService(t, newTestConfig())

	if err := sessions.Set("testsession", session.Identity{ID: 1, Username: "alice", Role: "admin"}); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, Path+"/logout", nil)
	req.Header.Set("Cookie", session.CookieName+"=testsession")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	if _, err := sessions.Get("testsession"); err == nil {
		t.Fatal("expected session to be destroyed")
	}
}

func TestLogoutRequiresSession(t *testing.T) {
	app, _, _ := newTestService(t, newTestConfig())

	req := httptest.NewRequest(http.MethodPost, Path+"/logout", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
}
