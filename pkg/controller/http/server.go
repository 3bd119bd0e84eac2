package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/colet-sistemas/solicita/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// Server is the local intake portal: option-list endpoints for the form
// plus the solicitation endpoint that streams the generated PDF back.
// Nothing is persisted; the response is the artifact.
type Server struct {
	*http.Server
}

// NewServer creates the portal HTTP server
func NewServer(ctx context.Context, addr string, intake *usecase.Intake) *Server {
	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(ctx, intake),
			ReadHeaderTimeout: 15 * time.Second,
		},
	}
}

// NewRouter builds the chi router; exposed separately so tests can mount
// it on httptest servers
func NewRouter(ctx context.Context, intake *usecase.Intake) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	h := &handlers{intake: intake}

	router.Get("/health", handleHealth)
	router.Route("/api", func(r chi.Router) {
		r.Get("/users", h.users)
		r.Get("/clients", h.clients)
		r.Get("/databases", h.databases)
		r.Get("/modules", h.modules)
		r.Get("/operating-systems", h.operatingSystems)
		r.Get("/categories", h.categories)
		r.Post("/solicitations", h.submit)
	})

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "solicita",
	}); err != nil {
		ctxlog.From(r.Context()).Error("failed to encode health response", "error", err)
	}
}
