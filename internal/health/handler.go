package health

import (
	"context"
	"net/http"
	"time"

	"github.com/sangkips/customer-directory-api/internal/handlers"
)

// Store is the database surface the health endpoints probe.
type Store interface {
	Ping(ctx context.Context) error
	Now(ctx context.Context) (time.Time, error)
}

// QueueChecker reports whether the event broker connection is usable.
type QueueChecker interface {
	Ping() error
}

type Handler struct {
	store Store
	queue QueueChecker
	now   func() time.Time
}

// NewHandler builds the health handler. queue may be nil when events are disabled.
func NewHandler(store Store, queue QueueChecker) *Handler {
	return &Handler{
		store: store,
		queue: queue,
		now:   time.Now,
	}
}

// StatusResponse is the liveness payload of /api/status
type StatusResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// DBTestResponse carries the database server's clock
type DBTestResponse struct {
	DBTime time.Time `json:"db_time"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Checks    map[string]Check `json:"checks"`
	Timestamp time.Time        `json:"timestamp"`
}

// Check represents a single health check
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	handlers.RespondWithText(w, http.StatusOK, "Customer API is live 🚀")
}

// Status always reports ok; it never touches the database.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	handlers.RespondWithJSON(w, http.StatusOK, StatusResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
	})
}

// DBTest asks the database for its current time.
func (h *Handler) DBTest(w http.ResponseWriter, r *http.Request) error {
	dbTime, err := h.store.Now(r.Context())
	if err != nil {
		return handlers.NewError(http.StatusInternalServerError, "Database connection failed", err)
	}
	handlers.RespondWithJSON(w, http.StatusOK, DBTestResponse{DBTime: dbTime})
	return nil
}

// Health performs health checks on the database and the event queue
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]Check{
		"database": h.checkDatabase(ctx),
		"queue":    h.checkQueue(),
	}

	status := "healthy"
	statusCode := http.StatusOK
	for _, c := range checks {
		if c.Status == "unhealthy" {
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		}
	}

	handlers.RespondWithJSON(w, statusCode, HealthResponse{
		Status:    status,
		Checks:    checks,
		Timestamp: h.now().UTC(),
	})
}

func (h *Handler) checkDatabase(ctx context.Context) Check {
	if h.store == nil {
		return Check{
			Status:  "unhealthy",
			Message: "database connection is nil",
		}
	}

	if err := h.store.Ping(ctx); err != nil {
		return Check{
			Status:  "unhealthy",
			Message: err.Error(),
		}
	}

	return Check{
		Status:  "healthy",
		Message: "database is accessible",
	}
}

func (h *Handler) checkQueue() Check {
	if h.queue == nil {
		return Check{
			Status:  "disabled",
			Message: "customer events are not configured",
		}
	}

	if err := h.queue.Ping(); err != nil {
		return Check{
			Status:  "unhealthy",
			Message: "queue connection failed: " + err.Error(),
		}
	}

	return Check{
		Status:  "healthy",
		Message: "queue is accessible",
	}
}
