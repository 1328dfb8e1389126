package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/infra"
	"server/internal/narrative"
)

// App carries the request-scoped dependencies every handler needs. The engine
// holds no database; everything a handler produces is derived per request.
type App struct {
	Cfg      *infra.Config
	Log      infra.Logger
	Composer narrative.Composer
}

func NewApp(cfg *infra.Config, log infra.Logger, composer narrative.Composer) *App {
	return &App{Cfg: cfg, Log: log, Composer: composer}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string, details any) {
	a.json(w, code, errorResponse{Error: message, Details: details})
}
