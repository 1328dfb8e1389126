package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/narrative"
)

const validBriefPayload = `{
	"bedrooms": 3,
	"primaryUse": "Primary home (no rentals)",
	"staffing": "None (owner-managed)",
	"boh": "Minimal (utility only)",
	"stairs": "Some stairs OK",
	"privacy": "Private (screened)",
	"indoorOutdoor": "Balanced",
	"values": ["Nature exploration and adventures", "Hard work and dedication"],
	"narrativeSeed": 4
}`

func newTestApp() *App {
	cfg := &infra.Config{PlaceholderImages: true}
	return NewApp(cfg, infra.NewLogger("test"), narrative.NewOfflineComposer())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGenerateBriefSuccess(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	rec := postJSON(t, app.GenerateBrief, validBriefPayload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp domain.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.BriefMD, "# Villa Design Brief") {
		t.Fatalf("brief_md starts with %q", resp.BriefMD[:40])
	}
	if len(resp.Program) == 0 {
		t.Fatal("program should not be empty")
	}
	if resp.Plans.OptionA.SVG == "" || resp.Plans.OptionB.SVG == "" {
		t.Fatal("both plan options must carry markup")
	}
	if resp.Narrative == "" {
		t.Fatal("narrative should come from the offline composer")
	}
	if len(resp.Moodboard.Tiles) != 12 {
		t.Fatalf("moodboard tiles = %d", len(resp.Moodboard.Tiles))
	}
	for _, tile := range resp.Moodboard.Tiles {
		if !strings.HasPrefix(tile.ImageURL, "data:image/svg+xml") {
			t.Fatalf("placeholder mode should inline images, got %q", tile.ImageURL)
		}
	}
	if len(resp.Values) != 2 {
		t.Fatalf("values = %v", resp.Values)
	}
}

func TestGenerateBriefIsDeterministic(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	a := postJSON(t, app.GenerateBrief, validBriefPayload)
	b := postJSON(t, app.GenerateBrief, validBriefPayload)
	if a.Body.String() != b.Body.String() {
		t.Fatal("identical payloads must yield byte-identical responses")
	}
}

func TestGenerateBriefMalformedJSON(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	rec := postJSON(t, app.GenerateBrief, `{"bedrooms":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Error   string             `json:"error"`
		Details []domain.FieldError `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error != "Invalid JSON body." || len(resp.Details) != 1 || resp.Details[0].Field != "body" {
		t.Fatalf("error body = %+v", resp)
	}
}

func TestGenerateBriefCollectsFieldErrors(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	payload := `{
		"primaryUse": "Primary home (no rentals)",
		"staffing": "None (owner-managed)",
		"boh": "Invalid",
		"stairs": "Some stairs OK",
		"privacy": "Private (screened)",
		"indoorOutdoor": "Balanced",
		"values": ["Hard work and dedication"]
	}`
	rec := postJSON(t, app.GenerateBrief, payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Error   string             `json:"error"`
		Details []domain.FieldError `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error != "Invalid request body." || len(resp.Details) != 2 {
		t.Fatalf("error body = %+v", resp)
	}
}

func TestFinishesBoardSuccess(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	rec := postJSON(t, app.FinishesBoard, `{"genres":["Thai Contemporary","Balinese Resort"],"moodSeed":7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Board *struct {
			Sections []struct {
				Key   string `json:"key"`
				Picks []any  `json:"picks"`
			} `json:"sections"`
		} `json:"board"`
		Palette []struct {
			Label string `json:"label"`
			Color string `json:"color"`
		} `json:"palette"`
		Chips []string `json:"chips"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Board == nil || len(resp.Board.Sections) != 4 {
		t.Fatalf("board = %+v", resp.Board)
	}
	for _, section := range resp.Board.Sections {
		if len(section.Picks) == 0 || len(section.Picks) > 4 {
			t.Fatalf("section %s has %d picks", section.Key, len(section.Picks))
		}
	}
	if len(resp.Palette) != 6 {
		t.Fatalf("palette = %d entries", len(resp.Palette))
	}
	if len(resp.Chips) == 0 {
		t.Fatal("chips should not be empty")
	}
}

func TestFinishesBoardEmptySelection(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	rec := postJSON(t, app.FinishesBoard, `{"genres":[],"moodSeed":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["board"]) != "null" {
		t.Fatalf("board = %s, want null", resp["board"])
	}
}

func TestFinishesBoardRejectsBadSelections(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	tooMany := `{"genres":["Thai Contemporary","Balinese Resort","Boho Eclectic","Industrial Modern"],"moodSeed":1}`
	if rec := postJSON(t, app.FinishesBoard, tooMany); rec.Code != http.StatusBadRequest {
		t.Fatalf("four genres: status = %d", rec.Code)
	}

	unknown := `{"genres":["Brutalist Bunker"],"moodSeed":1}`
	if rec := postJSON(t, app.FinishesBoard, unknown); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown genre: status = %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	app.Health(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
