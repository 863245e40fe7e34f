package web

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web/session"
)

// testStorage is a minimal in-memory implementation of fiber.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data[key], nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = val

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

func newTestService(t *testing.T, cfg *config.Config) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	sessions := session.New(&testStorage{data: make(map[string][]byte)}, time.Minute)

	return New(cfg, db, sessions)
}

func testConfig() *config.Config {
	return &config.Config{
		Title: "test",
		Webserver: config.Webserver{
			URL:          "http://localhost",
			Port:         3000,
			ShutDownTime: 1,
			Session:      config.Session{ExpiryTime: time.Minute},
		},
	}
}

func TestNewBindsFastShutDown(t *testing.T) {
	cfg := testConfig()
	cfg.Webserver.FastShutDown = true

	service := newTestService(t, cfg)
	if !service.fastShutDown {
		t.Error("expected fastShutDown to follow Webserver.FastShutDown")
	}

	service = newTestService(t, testConfig())
	if service.fastShutDown {
		t.Error("expected fastShutDown to default to false")
	}
}

func TestCheckAliveDrain(t *testing.T) {
	service := newTestService(t, testConfig())

	resp, err := service.App.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 while alive, got %d", resp.StatusCode)
	}

	// once the drain begins the load balancer must see a failure
	service.alive.Store(false)

	resp, err = service.App.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while draining, got %d", resp.StatusCode)
	}
}

func TestCleanPathMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.Webserver.CleanPath = true

	service := newTestService(t, cfg)

	resp, err := service.App.Test(httptest.NewRequest(http.MethodGet, "//checkalive", nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected multi-slash path to resolve, got %d", resp.StatusCode)
	}
}
