package server

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sangkips/customer-directory-api/internal/apidoc"
	"github.com/sangkips/customer-directory-api/internal/domains/customers"
	"github.com/sangkips/customer-directory-api/internal/domains/services"
	"github.com/sangkips/customer-directory-api/internal/handlers"
	"github.com/sangkips/customer-directory-api/internal/health"
	"github.com/sangkips/customer-directory-api/internal/middleware"
)

type Options struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// Handlers are the route handlers the router dispatches to. Each is built by
// the caller from its own injected dependencies.
type Handlers struct {
	Customers *customers.Handler
	Services  *services.Handler
	Health    *health.Handler
	APIDoc    *openapi3.T
}

func NewRouter(opts Options, h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimw.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.SecureHeaders)

	r.Get("/", h.Health.Root)
	r.Get("/health", h.Health.Health)
	r.Get("/db-test", handlers.Handle(h.Health.DBTest))

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.Health.Status)
		r.Route("/users", h.Customers.RegisterCustomerRoutes)
		r.Route("/services", h.Services.RegisterServiceRoutes)
		if h.APIDoc != nil {
			r.Get("/openapi.json", apidoc.Handler(h.APIDoc))
		}
	})

	return r
}
