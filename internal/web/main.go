// Package web wires the fiber application: middleware, handler
// registration and the web service lifecycle.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	accesslog "github.com/letterly/letterly/internal/logger/adapter/fiber"
	"github.com/letterly/letterly/internal/web/handler"
	"github.com/letterly/letterly/internal/web/handler/assets"
	"github.com/letterly/letterly/internal/web/handler/auth"
	"github.com/letterly/letterly/internal/web/handler/contact"
	"github.com/letterly/letterly/internal/web/handler/content"
	"github.com/letterly/letterly/internal/web/handler/settings"
	"github.com/letterly/letterly/internal/web/session"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	sessions     *session.Store
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, sessions *session.Store) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if sessions == nil {
		panic("session store cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(fiberrecover.New())
	}

	if cfg.Webserver.CleanPath {
		app.Use(cleanPath)
	}

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.Webserver.FastShutDown,
		db:           db,
		sessions:     sessions,
	}

	service.alive.Store(true)

	app.Get(CheckAlivePath, service.checkAlive)

	handlers := []handler.Service{
		&auth.Handler,
		&contact.Handler,
		&settings.Handler,
		&content.Handler,
		&assets.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, cfg, db, sessions); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize handler")
		}
	}

	return service
}

// checkAlive reports 200 while serving and 503 once shutdown drain has
// begun.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendStatus(fiber.StatusOK)
}

// cleanPath collapses duplicate slashes so multi slash requests still
// match their routes.
func cleanPath(c *fiber.Ctx) error {
	p := c.Path()
	if cleaned := path.Clean(p); cleaned != p {
		c.Path(cleaned)
	}

	return c.Next()
}
