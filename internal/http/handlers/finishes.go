package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"server/internal/domain"
	"server/internal/finishes"
)

type finishesRequest struct {
	Genres   []string `json:"genres"`
	MoodSeed uint32   `json:"moodSeed"`
}

type finishesResponse struct {
	Board   *finishes.Board         `json:"board"`
	Palette []finishes.PaletteEntry `json:"palette"`
	Chips   []string                `json:"chips"`
	Genres  []string                `json:"genres"`
}

// FinishesBoard handles POST /v1/finishes: build the material board, palette
// strip, and theme chips for up to three selected style genres. No genres is
// a valid request and yields a null board.
func (a *App) FinishesBoard(w http.ResponseWriter, r *http.Request) {
	var req finishesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid JSON body.",
			[]domain.FieldError{{Field: "body", Message: "Malformed JSON payload."}})
		return
	}
	if len(req.Genres) > 3 {
		a.error(w, http.StatusBadRequest, "Invalid request body.",
			[]domain.FieldError{{Field: "genres", Message: "Select up to 3 genres.", Raw: req.Genres}})
		return
	}
	known := map[string]bool{}
	for _, name := range finishes.GenreNames() {
		known[name] = true
	}
	for _, name := range req.Genres {
		if !known[name] {
			a.error(w, http.StatusBadRequest, "Invalid request body.",
				[]domain.FieldError{{
					Field:   "genres",
					Message: fmt.Sprintf("Unknown genre %q.", name),
					Raw:     name,
				}})
			return
		}
	}

	board := finishes.BuildBoard(req.Genres, req.MoodSeed)
	var chips []string
	if board != nil {
		chips = finishes.ThemeChips(board.All)
	}
	a.json(w, http.StatusOK, finishesResponse{
		Board:   board,
		Palette: finishes.BuildPalette(req.Genres),
		Chips:   chips,
		Genres:  req.Genres,
	})
}
