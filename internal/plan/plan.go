// Package plan renders the two schematic layout studies. The options differ
// by fixed template, never by randomness: option A is a courtyard scheme,
// option B a linear great-room scheme.
package plan

import (
	"strings"

	"server/internal/domain"
)

const svgDefs = `<defs>
    <marker id="arrow-ink" markerWidth="8" markerHeight="8" refX="6" refY="3" orient="auto" markerUnits="strokeWidth">
      <path d="M0,0 L0,6 L6,3 z" fill="#6c573c" />
    </marker>
    <marker id="arrow-sea" markerWidth="8" markerHeight="8" refX="6" refY="3" orient="auto" markerUnits="strokeWidth">
      <path d="M0,0 L0,6 L6,3 z" fill="#1d4139" />
    </marker>
  </defs>`

// OptionA is the courtyard scheme: bedroom and guest wings flanking a
// protected court, with the service block tucked behind the kitchen.
func OptionA(req *domain.BriefRequest) domain.PlanOption {
	interior := 210 + req.Bedrooms*28
	if req.Staffing == domain.StaffLiveIn {
		interior += 18
	}
	covered := 140
	if req.IndoorOutdoor == domain.OutdoorFirst {
		covered = 170
	}
	open := 150
	if req.Privacy == domain.PrivacySecluded {
		open = 120
	}

	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 600 360" xmlns="http://www.w3.org/2000/svg">` + "\n  ")
	b.WriteString(svgDefs + "\n")
	b.WriteString(`  <rect x="10" y="10" width="580" height="340" rx="24" fill="#f6efe6" stroke="#d3bea0" stroke-width="2" />
  <rect x="60" y="60" width="220" height="140" rx="16" fill="#ffffff" stroke="#d3bea0" />
  <rect x="320" y="60" width="220" height="140" rx="16" fill="#ffffff" stroke="#d3bea0" />
  <rect x="200" y="220" width="200" height="110" rx="18" fill="#f2faf7" stroke="#9bb49e" />
  <rect x="60" y="220" width="120" height="110" rx="16" fill="#fff7f0" stroke="#e7aa8a" />
  <rect x="420" y="220" width="120" height="110" rx="16" fill="#fff7f0" stroke="#e7aa8a" />
  <text x="170" y="130" font-size="14" font-family="Arial" fill="#5d2e27">Bedroom Wing</text>
  <text x="410" y="130" font-size="14" font-family="Arial" fill="#5d2e27">Guest Wing</text>
  <text x="240" y="280" font-size="14" font-family="Arial" fill="#1d4139">Courtyard</text>
  <text x="78" y="280" font-size="12" font-family="Arial" fill="#8b3d2f">Service</text>
  <text x="440" y="280" font-size="12" font-family="Arial" fill="#8b3d2f">Outdoor</text>
  <line x1="40" y1="220" x2="90" y2="190" stroke="#6c573c" stroke-width="2" marker-end="url(#arrow-ink)" />
  <text x="20" y="235" font-size="12" font-family="Arial" fill="#6c573c">Entry</text>
  <line x1="520" y1="70" x2="570" y2="40" stroke="#1d4139" stroke-width="2" marker-end="url(#arrow-sea)" />
  <text x="470" y="45" font-size="12" font-family="Arial" fill="#1d4139">View</text>
`)
	if req.Staffing != domain.StaffNone {
		b.WriteString(`  <path d="M120 270 L190 210 L280 210" fill="none" stroke="#8b3d2f" stroke-width="2" stroke-dasharray="6 6" />
  <text x="130" y="205" font-size="11" font-family="Arial" fill="#8b3d2f">Service route</text>
`)
	}
	b.WriteString(`</svg>`)

	return domain.PlanOption{
		SVG: b.String(),
		Notes: []string{
			"Central courtyard buffers bedrooms from social zones.",
			"Service core sits behind the kitchen for discrete circulation.",
			"Guest suites face inward to protected greenery.",
		},
		Areas: []domain.PlanArea{
			{Label: "Interior", AreaM2: interior},
			{Label: "Covered Outdoor", AreaM2: covered},
			{Label: "Courtyard/Open", AreaM2: open},
		},
	}
}

// OptionB is the linear scheme: great room opening onto a continuous view
// terrace, bedroom cluster pulled back from sight lines.
func OptionB(req *domain.BriefRequest) domain.PlanOption {
	interior := 200 + req.Bedrooms*26
	if req.PrimaryUse == domain.UsePrimaryHome {
		interior += 12
	}
	covered := 150
	if req.IndoorOutdoor == domain.OutdoorFirst {
		covered = 190
	}
	open := 180
	if req.Privacy == domain.PrivacySecluded {
		open = 110
	}

	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 600 360" xmlns="http://www.w3.org/2000/svg">` + "\n  ")
	b.WriteString(svgDefs + "\n")
	b.WriteString(`  <rect x="10" y="10" width="580" height="340" rx="24" fill="#f6efe6" stroke="#d3bea0" stroke-width="2" />
  <rect x="50" y="60" width="200" height="120" rx="16" fill="#ffffff" stroke="#d3bea0" />
  <rect x="270" y="60" width="280" height="120" rx="16" fill="#ffffff" stroke="#d3bea0" />
  <rect x="50" y="200" width="500" height="120" rx="18" fill="#f2faf7" stroke="#9bb49e" />
  <text x="90" y="130" font-size="14" font-family="Arial" fill="#5d2e27">Bedroom Cluster</text>
  <text x="340" y="130" font-size="14" font-family="Arial" fill="#5d2e27">Great Room</text>
  <text x="220" y="265" font-size="14" font-family="Arial" fill="#1d4139">View Terrace + Pool</text>
  <line x1="40" y1="210" x2="90" y2="180" stroke="#6c573c" stroke-width="2" marker-end="url(#arrow-ink)" />
  <text x="20" y="225" font-size="12" font-family="Arial" fill="#6c573c">Entry</text>
  <line x1="520" y1="80" x2="570" y2="50" stroke="#1d4139" stroke-width="2" marker-end="url(#arrow-sea)" />
  <text x="470" y="55" font-size="12" font-family="Arial" fill="#1d4139">View</text>
`)
	if req.Staffing != domain.StaffNone {
		b.WriteString(`  <path d="M110 260 L220 220 L330 200" fill="none" stroke="#8b3d2f" stroke-width="2" stroke-dasharray="6 6" />
  <text x="120" y="210" font-size="11" font-family="Arial" fill="#8b3d2f">Service route</text>
`)
	}
	b.WriteString(`</svg>`)

	return domain.PlanOption{
		SVG: b.String(),
		Notes: []string{
			"Great room opens directly to the view terrace for sunset living.",
			"Bedroom cluster pulls back to limit direct sight lines.",
			"Outdoor circulation loop connects pool, lounge, and dining.",
		},
		Areas: []domain.PlanArea{
			{Label: "Interior", AreaM2: interior},
			{Label: "Covered Outdoor", AreaM2: covered},
			{Label: "Open Terrace", AreaM2: open},
		},
	}
}

// Pair builds both options for req.
func Pair(req *domain.BriefRequest) domain.PlanPair {
	return domain.PlanPair{OptionA: OptionA(req), OptionB: OptionB(req)}
}
