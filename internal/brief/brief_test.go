package brief

import (
	"strings"
	"testing"

	"server/internal/domain"
)

func request() *domain.BriefRequest {
	return &domain.BriefRequest{
		Bedrooms:      3,
		PrimaryUse:    domain.UsePrimaryHome,
		Staffing:      domain.StaffNone,
		Boh:           domain.BohMinimal,
		Stairs:        domain.StairsSome,
		Privacy:       domain.PrivacyScreened,
		IndoorOutdoor: domain.Balanced,
	}
}

func TestPrimaryStyleResolution(t *testing.T) {
	t.Parallel()
	req := request()
	req.Style = []domain.Style{domain.StyleEcoModern, domain.StyleRusticMinimal}
	if got := PrimaryStyle(req); got != domain.StyleEcoModern {
		t.Fatalf("primary style = %q", got)
	}

	req.Style = nil
	req.Privacy = domain.PrivacySecluded
	if got := PrimaryStyle(req); got != domain.StyleResortMinimal {
		t.Fatalf("secluded inference = %q", got)
	}

	req.Privacy = domain.PrivacyOpen
	req.IndoorOutdoor = domain.IndoorFirst
	if got := PrimaryStyle(req); got != domain.StyleContemporaryThai {
		t.Fatalf("indoor-first inference = %q", got)
	}

	req.IndoorOutdoor = domain.Balanced
	if got := PrimaryStyle(req); got != domain.StyleTropicalModern {
		t.Fatalf("default inference = %q", got)
	}
}

func TestMarkdownSections(t *testing.T) {
	t.Parallel()
	req := request()
	md := Markdown(req)

	for _, want := range []string{
		"# Villa Design Brief",
		"## Project Snapshot",
		"- **Bedrooms:** 3",
		"## Design Intent",
		"## Spatial Priorities",
		"## Architectural Mood",
		"tropical modern expression",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("brief missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Who stays") {
		t.Fatal("who-stays line should be absent when not provided")
	}

	req.WhoStays = domain.StaysGuests
	if !strings.Contains(Markdown(req), "- **Who stays:** Frequent guests") {
		t.Fatal("who-stays line should appear when provided")
	}
}
