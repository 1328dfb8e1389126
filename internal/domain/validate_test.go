package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

const validPayload = `{
	"bedrooms": 3,
	"primaryUse": "Primary home (no rentals)",
	"staffing": "None (owner-managed)",
	"boh": "Minimal (utility only)",
	"stairs": "Some stairs OK",
	"privacy": "Private (screened)",
	"indoorOutdoor": "Balanced",
	"values": ["Nature exploration and adventures", "Hard work and dedication"],
	"narrativeSeed": 0
}`

func TestValidateAcceptsMinimalRequest(t *testing.T) {
	t.Parallel()
	req, errs := ValidateBriefRequest(decode(t, validPayload))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if req.Bedrooms != 3 {
		t.Fatalf("bedrooms = %d, want 3", req.Bedrooms)
	}
	if req.PrimaryUse != UsePrimaryHome {
		t.Fatalf("primaryUse = %q", req.PrimaryUse)
	}
	if req.Seed() != 0 {
		t.Fatalf("seed = %d, want 0", req.Seed())
	}
	if len(req.Values) != 2 {
		t.Fatalf("values = %v", req.Values)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()
	// Missing bedrooms plus an out-of-catalog boh must yield exactly those
	// two field errors and nothing else.
	payload := decode(t, `{
		"primaryUse": "Primary home (no rentals)",
		"staffing": "None (owner-managed)",
		"boh": "Invalid",
		"stairs": "Some stairs OK",
		"privacy": "Private (screened)",
		"indoorOutdoor": "Balanced",
		"values": ["Hard work and dedication"]
	}`)
	req, errs := ValidateBriefRequest(payload)
	if req != nil {
		t.Fatal("expected nil request on failure")
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %+v", len(errs), errs)
	}
	fields := map[string]FieldError{}
	for _, e := range errs {
		fields[e.Field] = e
	}
	if _, ok := fields["bedrooms"]; !ok {
		t.Fatalf("missing bedrooms error: %+v", errs)
	}
	bohErr, ok := fields["boh"]
	if !ok {
		t.Fatalf("missing boh error: %+v", errs)
	}
	if bohErr.Raw != "Invalid" {
		t.Fatalf("boh raw = %v", bohErr.Raw)
	}
	if !strings.HasPrefix(bohErr.Message, "Expected one of:") {
		t.Fatalf("boh message = %q", bohErr.Message)
	}
}

func TestValidateRejectsNonObjectBody(t *testing.T) {
	t.Parallel()
	_, errs := ValidateBriefRequest(decode(t, `[1,2,3]`))
	if len(errs) != 1 || errs[0].Field != "body" {
		t.Fatalf("errors = %+v", errs)
	}
}

func TestValidateFieldRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		patch string
		field string
	}{
		{name: "bedrooms_fraction", patch: `"bedrooms": 2.5`, field: "bedrooms"},
		{name: "bedrooms_out_of_range", patch: `"bedrooms": 9`, field: "bedrooms"},
		{name: "values_empty", patch: `"values": []`, field: "values"},
		{name: "values_unknown", patch: `"values": ["Speedboats"]`, field: "values"},
		{name: "notes_not_string", patch: `"notes": 42`, field: "notes"},
		{name: "seed_negative", patch: `"narrativeSeed": -1`, field: "narrativeSeed"},
		{name: "style_too_many", patch: `"style": ["Tropical Modern", "Eco-modern", "Resort Minimal"]`, field: "style"},
		{name: "style_unknown", patch: `"style": ["Brutalist"]`, field: "style"},
		{name: "material_mood_unknown", patch: `"materialMood": ["Wet + cold"]`, field: "materialMood"},
		{name: "pool_unknown", patch: `"pool": "Olympic"`, field: "pool"},
		{name: "parking_unknown", patch: `"parking": "none"`, field: "parking"},
		{name: "flex_too_many", patch: `"flexSpaces": ["Office", "Media", "Studio", "Kids play"]`, field: "flexSpaces"},
		{name: "who_stays_unknown", patch: `"whoStays": "Pets only"`, field: "whoStays"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			raw := strings.TrimSuffix(strings.TrimSpace(validPayload), "}") + ", " + tc.patch + "}"
			_, errs := ValidateBriefRequest(decode(t, raw))
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
			}
			if errs[0].Field != tc.field {
				t.Fatalf("field = %q, want %q", errs[0].Field, tc.field)
			}
		})
	}
}

func TestValidateNormalizesNotes(t *testing.T) {
	t.Parallel()
	raw := strings.TrimSuffix(strings.TrimSpace(validPayload), "}") + `, "notes": "   "}`
	req, errs := ValidateBriefRequest(decode(t, raw))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if req.Notes != "" {
		t.Fatalf("blank notes should normalize to empty, got %q", req.Notes)
	}

	long := strings.Repeat("a", 601)
	raw = strings.TrimSuffix(strings.TrimSpace(validPayload), "}") + `, "notes": "` + long + `"}`
	_, errs = ValidateBriefRequest(decode(t, raw))
	if len(errs) != 1 || errs[0].Field != "notes" {
		t.Fatalf("errors = %+v", errs)
	}
}
