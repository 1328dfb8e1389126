package narrative

import (
	"context"
	"fmt"
	"strings"

	"server/internal/brief"
	"server/internal/domain"
	"server/internal/program"
	"server/internal/seedrand"
)

// OfflineComposer assembles the narrative from fixed sentence templates.
// The draw order below (value mentions, then arrival, then outdoor moment)
// is part of the determinism contract; reordering it reseeds every output.
type OfflineComposer struct{}

func NewOfflineComposer() *OfflineComposer {
	return &OfflineComposer{}
}

// valueMentionMap shortens the questionnaire's value literals into phrases
// that read naturally mid-sentence.
var valueMentionMap = map[string]string{
	"Work-life balance and personal fulfilment":          "work-life balance",
	"Music and dancing":                                  "music and dancing",
	"Nature exploration and adventures":                  "nature exploration",
	"Lifelong learning and personal growth":              "lifelong learning",
	"Nutritional eating & healthy living":                "healthy living",
	"Mind-body practices and nature-based spirituality":  "mind-body practice",
	"Festivals, events and cultural celebrations":        "cultural celebrations",
	"Child and youth development":                        "family development",
	"Social gatherings and community events":             "community gatherings",
	"Diverse and global culinary experiences":            "global food culture",
	"Plant-based medicine":                               "plant-based medicine",
	"Support creative arts and humanities":               "creative arts",
	"Eco-village and sustainable living":                 "sustainable living",
	"Regeneration of natural resources":                  "regenerative living",
	"Psychedelic and alternative mental health therapy":  "alternative mental health care",
	"Personal boundaries and individual freedoms":        "personal boundaries",
	"Integrative and functional medicine":                "integrative medicine",
	"Entrepreneurship and innovation":                    "entrepreneurship",
	"Hard work and dedication":                           "hard work",
	"Alternative energy and sustainable transportation":  "clean energy",
	"Intergenerational care and connections":             "intergenerational care",
	"Traditional religious practices":                    "traditional practice",
	"Gender diversity and LGBTQ+":                        "gender diversity",
}

func normalizeValue(value string) string {
	if short, ok := valueMentionMap[value]; ok {
		return short
	}
	return strings.ToLower(value)
}

// pickValueMentions shuffles the deduplicated values with the shared stream
// and keeps a 2-3 item prefix.
func pickValueMentions(values []string, rng *seedrand.Stream) []string {
	seen := map[string]bool{}
	var picks []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			picks = append(picks, v)
		}
	}
	target := min(3, len(picks))
	seedrand.Shuffle(picks, rng)
	out := make([]string, target)
	for i := 0; i < target; i++ {
		out[i] = normalizeValue(picks[i])
	}
	return out
}

var privacyLines = map[domain.Privacy]string{
	domain.PrivacyOpen:     "open edges keep sightlines social without losing comfort",
	domain.PrivacyScreened: "screened edges protect sightlines while staying breathable",
	domain.PrivacySecluded: "buffered courtyards and layered planting keep the experience secluded",
}

var indoorOutdoorLines = map[domain.IndoorOutdoor]string{
	domain.OutdoorFirst: "outdoor-first living anchors the daily rhythm",
	domain.Balanced:     "indoor and outdoor rooms share equal weight",
	domain.IndoorFirst:  "indoor comfort leads with outdoor pockets for pause",
}

var stairsLines = map[domain.Stairs]string{
	domain.StairsMinimal: "Level changes stay minimal to keep movement effortless.",
	domain.StairsSome:    "A few steps frame views without complicating access.",
	domain.StairsSplit:   "Split levels choreograph views and breeze paths through the plan.",
}

var serviceLines = map[domain.Staffing]string{
	domain.StaffNone:   "Owner-run service zones are compact and close to the kitchen.",
	domain.StaffDay:    "Day staff move through a discreet route that avoids guest areas.",
	domain.StaffFull:   "Daily staffing needs a clear service loop with prep tucked away.",
	domain.StaffLiveIn: "A dedicated staff wing and yard keep operations separate from guests.",
}

var bohLines = map[domain.BohSeparation]string{
	domain.BohFull:     "Back-of-house separation is full, with its own entry and yard.",
	domain.BohModerate: "Back-of-house routes stay separate but compact.",
	domain.BohMinimal:  "Back-of-house remains minimal and efficient.",
}

var arrivalMoments = []string{
	"Arrival moves through a shaded court before opening to the main living pavilion.",
	"A calm entry sequence creates a soft transition from street to garden.",
	"The arrival path is short and intentional, framing the landscape early.",
}

var outdoorMoments = []string{
	"Terraces gather around the pool so hosting can flow outside without pressure.",
	"Covered verandas hold morning light and late-day breezes for long meals.",
	"Outdoor rooms align to breezes, keeping the villa comfortable through the day.",
}

const closingSentence = " Hosting feels intuitive, with the primary suite set for quiet mornings and guest rooms clustered for easy arrivals."

func (c *OfflineComposer) Compose(_ context.Context, req *domain.BriefRequest, seed int) (string, error) {
	key := fmt.Sprintf("%d|%d|%s|%s|%s|%s|%s|%s|%s",
		seed, req.Bedrooms, req.PrimaryUse, req.Privacy, req.IndoorOutdoor,
		req.Staffing, req.Boh, req.Stairs, strings.Join(req.Values, "|"))
	rng := seedrand.New(seedrand.Hash(key))

	whoStays := "owners and guests"
	if req.WhoStays != "" {
		whoStays = string(req.WhoStays)
	}
	styleLabel := string(brief.PrimaryStyle(req))
	if len(req.Style) > 0 {
		parts := make([]string, len(req.Style))
		for i, s := range req.Style {
			parts[i] = string(s)
		}
		styleLabel = strings.Join(parts, " + ")
	}

	mentions := pickValueMentions(req.Values, rng)
	valueLine := "Daily routines emphasize clarity and ease."
	if len(mentions) > 0 {
		valueLine = fmt.Sprintf("Daily routines emphasize %s.", formatList(mentions))
	}

	arrival := arrivalMoments[rng.Intn(len(arrivalMoments))]
	outdoor := outdoorMoments[rng.Intn(len(outdoorMoments))]

	areaRange := program.RangeFor(req.Bedrooms)
	rangeLine := fmt.Sprintf(
		"The program targets roughly %d–%d m², balancing openness with efficient circulation.",
		areaRange.Min, areaRange.Max)

	notesLine := ""
	if req.Notes != "" {
		excerpt := []rune(strings.TrimSpace(req.Notes))
		ellipsis := ""
		if len(excerpt) > 160 {
			excerpt = excerpt[:160]
			ellipsis = "…"
		} else if len(excerpt) == 160 {
			ellipsis = "…"
		}
		notesLine = fmt.Sprintf("Additional considerations include %s%s.", string(excerpt), ellipsis)
	}

	sentences := []string{
		fmt.Sprintf("This %d-bedroom villa is planned for %s, welcoming %s.",
			req.Bedrooms, strings.ToLower(string(req.PrimaryUse)), whoStays),
		fmt.Sprintf("The style direction leans %s, where %s and %s.",
			strings.ToLower(styleLabel), privacyLines[req.Privacy], indoorOutdoorLines[req.IndoorOutdoor]),
		arrival,
		outdoor,
		valueLine,
		notesLine,
		serviceLines[req.Staffing] + " " + bohLines[req.Boh],
		stairsLines[req.Stairs],
		rangeLine,
	}
	kept := sentences[:0]
	for _, s := range sentences {
		if s != "" {
			kept = append(kept, s)
		}
	}

	text := strings.Join(kept, " ")
	if countWords(text) < minNarrativeWords {
		text += closingSentence
	}
	if countWords(text) > maxNarrativeWords {
		limit := min(7, len(kept))
		text = strings.Join(kept[:limit], " ")
	}
	return strings.TrimSpace(text), nil
}

var _ Composer = (*OfflineComposer)(nil)
