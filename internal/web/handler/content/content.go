// Package content provides the HTTP handlers for site content: the
// hero and about singletons and the six ordered collections.
package content

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/letterly/letterly/internal/config"
	"github.com/letterly/letterly/internal/web/handler"
	"github.com/letterly/letterly/internal/web/middleware/auth"
	"github.com/letterly/letterly/internal/web/session"
)

const (
	// Path is the base path of the content routes.
	Path = handler.APIPath + "/content"
)

// Service is the content handler service.
type Service struct {
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the content handler.
var Handler = Service{}

// Init initializes the content handler. Singletons get GET plus an
// admin POST upsert; collections get the full list/create/update/delete
// route set.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions *session.Store) error {
	if app == nil || cfg == nil || db == nil || sessions == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.validator = validator.New()

	admin := auth.RequireAdmin(sessions)

	app.Route(Path, func(router fiber.Router) {
		router.Get("/hero", s.GetHero)
		router.Post("/hero", admin, s.UpdateHero)

		router.Get("/about", s.GetAbout)
		router.Post("/about", admin, s.UpdateAbout)

		s.registerCollection(router, "/services", collectionRoutes{
			list:   s.ListServices,
			create: s.CreateService,
			update: s.UpdateService,
			delete: s.DeleteService,
		}, admin)
		s.registerCollection(router, "/products", collectionRoutes{
			list:   s.ListProducts,
			create: s.CreateProduct,
			update: s.UpdateProduct,
			delete: s.DeleteProduct,
		}, admin)
		s.registerCollection(router, "/team", collectionRoutes{
			list:   s.ListTeam,
			create: s.CreateTeamMember,
			update: s.UpdateTeamMember,
			delete: s.DeleteTeamMember,
		}, admin)
		s.registerCollection(router, "/testimonials", collectionRoutes{
			list:   s.ListTestimonials,
			create: s.CreateTestimonial,
			update: s.UpdateTestimonial,
			delete: s.DeleteTestimonial,
		}, admin)
		s.registerCollection(router, "/portfolio", collectionRoutes{
			list:   s.ListPortfolio,
			create: s.CreatePortfolioItem,
			update: s.UpdatePortfolioItem,
			delete: s.DeletePortfolioItem,
		}, admin)
		s.registerCollection(router, "/faq", collectionRoutes{
			list:   s.ListFaq,
			create: s.CreateFaqItem,
			update: s.UpdateFaqItem,
			delete: s.DeleteFaqItem,
		}, admin)
	})

	return nil
}

type collectionRoutes struct {
	list   fiber.Handler
	create fiber.Handler
	update fiber.Handler
	delete fiber.Handler
}

func (s *Service) registerCollection(router fiber.Router, prefix string, routes collectionRoutes, admin fiber.Handler) {
	router.Get(prefix, routes.list)
	router.Post(prefix, admin, routes.create)
	router.Put(prefix+"/:id", admin, routes.update)
	router.Delete(prefix+"/:id", admin, routes.delete)
}
