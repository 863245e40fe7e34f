// Package daemon assembles the application: database, migrations, seed
// data, session storage and the web service.
package daemon

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	sessionmemory "github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"

	"github.com/letterly/letterly/internal/config"
	"github.com/letterly/letterly/internal/db/dsn"
	"github.com/letterly/letterly/internal/db/models"
	"github.com/letterly/letterly/internal/web"
	"github.com/letterly/letterly/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// WebService returns the daemon's web service.
func (d *Daemon) WebService() *web.Service {
	return d.webService
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.ContactSubmission{},
		&models.SiteSetting{},
		&models.SiteAsset{},
		&models.HeroContent{},
		&models.AboutContent{},
		&models.ServiceItem{},
		&models.ProductItem{},
		&models.TeamMember{},
		&models.TestimonialItem{},
		&models.PortfolioItem{},
		&models.FaqItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	sessions := session.New(sessionStorage(cfg), cfg.Webserver.Session.ExpiryTime)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, sessions),
	}
}

// openDialector selects the gorm driver for the configured engine.
// ReadConfig validates the engine, so the default arm is unreachable
// outside of tests constructing configs by hand.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.Engine {
	case config.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		return gormpostgres.Open(dsn.Create(cfg))
	default:
		return gormmysql.Open(dsn.Create(cfg))
	}
}

// sessionStorage selects the session backend for the configured engine.
// MySQL and Postgres share the application database in a sessions
// table; the sqlite engine keeps sessions in memory, so a restart logs
// everyone out.
func sessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.Engine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	default:
		return sessionmemory.New()
	}
}
