package httpapi

import (
	"net/http"
	"time"

	"server/internal/http/handlers"
	"server/internal/infra"
	appmw "server/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, log infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		appmw.Logger(log),
		appmw.CORS(cfg.AllowedOrigins),
	)
	if cfg.RateLimitPerMin > 0 {
		r.Use(appmw.RateLimit(cfg.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/briefs", app.GenerateBrief)
		r.Post("/finishes", app.FinishesBoard)
	})

	return r
}
