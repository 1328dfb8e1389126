// Package brief renders the markdown design brief from a validated request.
package brief

import (
	"fmt"
	"strings"

	"server/internal/domain"
)

var useCopy = map[domain.PrimaryUse]string{
	domain.UsePrimaryHome:    "Everyday living should feel effortless, balancing comfort and a sense of retreat.",
	domain.UseOccasionalRent: "The plan should feel like a home first, while supporting occasional guest stays.",
	domain.UseHolidayHome:    "Holiday living prioritizes breezy outdoor life and easy hosting with rental readiness.",
	domain.UseInvestment:     "Guest flow and operational clarity are key for high-turnover stays.",
	domain.UseLongStay:       "Long-stay comfort emphasizes storage, work-friendly zones, and relaxed routines.",
}

var privacyCopy = map[domain.Privacy]string{
	domain.PrivacyOpen:     "Open connections between living zones and the landscape keep the villa social.",
	domain.PrivacyScreened: "Layered edges and screened planting create privacy without feeling closed in.",
	domain.PrivacySecluded: "Secluded courtyards and buffered circulation protect the experience from sightlines.",
}

var indoorOutdoorCopy = map[domain.IndoorOutdoor]string{
	domain.OutdoorFirst: "Outdoor living anchors the daily rhythm with generous terraces and breezeways.",
	domain.Balanced:     "Indoor and outdoor rooms share equal weight with shaded transition zones.",
	domain.IndoorFirst:  "Indoor comfort leads with focused outdoor pockets for pause and views.",
}

var stairsCopy = map[domain.Stairs]string{
	domain.StairsMinimal: "Level changes are minimized for accessibility and ease of movement.",
	domain.StairsSome:    "A few steps can help frame views and soften grading.",
	domain.StairsSplit:   "Split levels are acceptable to prioritize outlook and spatial drama.",
}

var staffingCopy = map[domain.Staffing]string{
	domain.StaffNone:   "Owner-managed operations with compact service support.",
	domain.StaffDay:    "Light day staff support with discrete storage.",
	domain.StaffFull:   "Daily staffing and kitchen support require organized service flow.",
	domain.StaffLiveIn: "Dedicated staff wing and service yard keep operations separate.",
}

var bohCopy = map[domain.BohSeparation]string{
	domain.BohMinimal:  "Back-of-house is minimal and efficient.",
	domain.BohModerate: "Service routes separate guest and operational movement.",
	domain.BohFull:     "Full BOH separation includes staff entry, yard, and suite.",
}

// PrimaryStyle resolves the style direction for a request: the first selected
// style, or one inferred from privacy and indoor/outdoor answers.
func PrimaryStyle(req *domain.BriefRequest) domain.Style {
	if len(req.Style) > 0 {
		return req.Style[0]
	}
	if req.Privacy == domain.PrivacySecluded {
		return domain.StyleResortMinimal
	}
	if req.IndoorOutdoor == domain.IndoorFirst {
		return domain.StyleContemporaryThai
	}
	return domain.StyleTropicalModern
}

// Markdown renders the full brief document.
func Markdown(req *domain.BriefRequest) string {
	primaryStyle := PrimaryStyle(req)

	var b strings.Builder
	b.WriteString("# Villa Design Brief\n")
	b.WriteString("## Project Snapshot\n")
	fmt.Fprintf(&b, "- **Bedrooms:** %d\n", req.Bedrooms)
	fmt.Fprintf(&b, "- **Primary use:** %s\n", req.PrimaryUse)
	if req.WhoStays != "" {
		fmt.Fprintf(&b, "- **Who stays:** %s\n", req.WhoStays)
	}
	fmt.Fprintf(&b, "- **Staff & service:** %s\n", req.Staffing)
	fmt.Fprintf(&b, "- **BOH separation:** %s\n", req.Boh)
	fmt.Fprintf(&b, "- **Stairs tolerance:** %s\n", req.Stairs)
	fmt.Fprintf(&b, "- **Privacy:** %s\n", req.Privacy)
	fmt.Fprintf(&b, "- **Indoor–Outdoor:** %s\n", req.IndoorOutdoor)
	fmt.Fprintf(&b, "- **Style direction:** %s\n", primaryStyle)

	b.WriteString("\n## Design Intent\n")
	fmt.Fprintf(&b, "%s %s %s\n", useCopy[req.PrimaryUse], privacyCopy[req.Privacy], indoorOutdoorCopy[req.IndoorOutdoor])

	b.WriteString("\n## Spatial Priorities\n")
	b.WriteString("- Primary suite positioned for morning light and calm.\n")
	b.WriteString("- Guest suites clustered to balance privacy and hosting.\n")
	b.WriteString("- Outdoor lounge and pool aligned to capture breezes and views.\n")
	fmt.Fprintf(&b, "- %s %s\n", staffingCopy[req.Staffing], bohCopy[req.Boh])
	fmt.Fprintf(&b, "- %s\n", stairsCopy[req.Stairs])

	b.WriteString("\n## Architectural Mood\n")
	fmt.Fprintf(&b, "A %s expression with layered texture and tropical warmth.\n", strings.ToLower(string(primaryStyle)))

	return b.String()
}
