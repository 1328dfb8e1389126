package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/brief"
	"server/internal/domain"
	"server/internal/moodboard"
	"server/internal/plan"
	"server/internal/program"
)

// GenerateBrief handles POST /v1/briefs: validate the questionnaire payload
// and derive the full brief bundle. Identical payloads produce identical
// responses except for the narrative when a remote composer is configured.
func (a *App) GenerateBrief(w http.ResponseWriter, r *http.Request) {
	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid JSON body.",
			[]domain.FieldError{{Field: "body", Message: "Malformed JSON payload."}})
		return
	}

	req, fieldErrs := domain.ValidateBriefRequest(body)
	if len(fieldErrs) > 0 {
		a.error(w, http.StatusBadRequest, "Invalid request body.", fieldErrs)
		return
	}

	text, err := a.Composer.Compose(r.Context(), req, req.Seed())
	if err != nil {
		// The offline fallback cannot fail, so this only fires when a caller
		// wired a custom composer without one.
		a.Log.Error().Err(err).Msg("narrative composition failed")
		a.error(w, http.StatusInternalServerError, "Narrative composition failed.", nil)
		return
	}

	a.json(w, http.StatusOK, domain.GenerateResponse{
		BriefMD:   brief.Markdown(req),
		Program:   program.Build(req),
		Plans:     plan.Pair(req),
		Values:    req.Values,
		Narrative: text,
		Notes:     req.Notes,
		Moodboard: moodboard.Summary(req, a.Cfg.PlaceholderImages),
	})
}
