// Package program assembles the itemized space list for a validated brief and
// rescales it onto the bedroom-count target band.
package program

import (
	"math"

	"server/internal/domain"
)

// AreaRange is the gross program target band for a bedroom count.
type AreaRange struct {
	Min int
	Max int
}

var areaRanges = map[int]AreaRange{
	1: {Min: 180, Max: 230},
	2: {Min: 220, Max: 280},
	3: {Min: 260, Max: 320},
	4: {Min: 300, Max: 380},
	5: {Min: 340, Max: 440},
	6: {Min: 380, Max: 500},
}

// RangeFor returns the target band for bedrooms, defaulting to the 3-bedroom
// band for out-of-table counts.
func RangeFor(bedrooms int) AreaRange {
	if r, ok := areaRanges[bedrooms]; ok {
		return r
	}
	return areaRanges[3]
}

// Target returns the band midpoint the scaled program total must land on.
func (r AreaRange) Target() int {
	return int(math.Round(float64(r.Min+r.Max) / 2))
}

// Build assembles the ordered program rows for req and rescales them so the
// total area matches the midpoint of the bedroom-count band. Each row keeps a
// 4 m2 floor so scaling can never produce degenerate zero-area rows.
func Build(req *domain.BriefRequest) []domain.ProgramItem {
	var items []domain.ProgramItem
	add := func(space string, qty int, areaEach float64, notes string) {
		items = append(items, domain.ProgramItem{
			Space:  space,
			Qty:    qty,
			AreaM2: int(math.Round(areaEach * float64(qty))),
			Notes:  notes,
		})
	}

	guestCount := req.Bedrooms - 1
	if guestCount < 0 {
		guestCount = 0
	}

	add("Arrival Court", 1, 32, "Covered drop-off, framed views")
	add("Foyer Gallery", 1, 16, "Art wall + breeze path")
	add("Great Room (Living/Dining)", 1, 62, "Open pavilion with tall ceiling")
	add("Kitchen", 1, 20, "Island seating + view line")

	if req.Staffing != domain.StaffNone || req.Boh != domain.BohMinimal {
		add("Back Kitchen / Prep", 1, 12, "Discreet service prep")
	}

	add("Primary Suite", 1, 52, "Bedroom + bath + dressing")

	if guestCount > 0 {
		add("Guest Suite", guestCount, 32, "Each with bath + terrace")
	}

	add("Powder Room", 1, 6, "Near living zone")
	add("Laundry / Utility", 1, 10, "Service corridor access")
	add("Storage", 1, 8, "Owner + linen storage")

	switch req.PrimaryUse {
	case domain.UsePrimaryHome:
		add("Home Office", 1, 14, "Quiet focus room")
	case domain.UseOccasionalRent:
		add("Flex Studio", 1, 14, "Work + wellness")
	case domain.UseHolidayHome:
		add("Media / Play Lounge", 1, 18, "Evening gathering")
	case domain.UseInvestment:
		add("Media / Play Lounge", 1, 18, "Guest hangout space")
	default:
		add("Home Office", 1, 14, "Long-stay productivity")
	}

	switch req.Privacy {
	case domain.PrivacySecluded:
		add("Courtyard Garden", 1, 70, "Layered planting + screens")
		add("Screened Veranda", 1, 26, "Filtered outdoor room")
	case domain.PrivacyScreened:
		add("Garden Court", 1, 60, "Screened lawn + water feature")
		add("Screened Veranda", 1, 20, "Filtered outdoor room")
	default:
		add("Garden Court", 1, 56, "Open lawn with water feature")
	}

	switch req.IndoorOutdoor {
	case domain.OutdoorFirst:
		add("View Terrace", 1, 46, "Sunset dining deck")
		add("Outdoor Lounge", 1, 44, "Deep shade zone")
	case domain.IndoorFirst:
		add("Outdoor Lounge", 1, 28, "Compact shaded terrace")
	default:
		add("Outdoor Lounge", 1, 36, "Shade + breeze")
	}

	if req.Pool != domain.PoolNone {
		deck := 58.0
		if req.Pool == domain.PoolLarge {
			deck = 72
		} else if req.IndoorOutdoor == domain.OutdoorFirst {
			deck = 68
		}
		pool := 40.0
		switch req.Pool {
		case domain.PoolPlunge:
			pool = 26
		case domain.PoolLarge:
			pool = 50
		}
		add("Pool Deck", 1, deck, "Loungers + pool bar")
		add("Pool", 1, pool, "Lap + plunge ledge")
	}

	switch req.Staffing {
	case domain.StaffDay:
		add("Staff Pantry", 1, 8, "Service staging")
	case domain.StaffFull:
		add("Staff Pantry", 1, 10, "Service staging")
		add("Service Yard", 1, 14, "Trash + deliveries")
	case domain.StaffLiveIn:
		add("Staff Suite", 1, 22, "Bedroom + bath")
		add("Staff Pantry", 1, 10, "Service staging")
		add("Service Yard", 1, 18, "Laundry + deliveries")
	}

	if req.Boh == domain.BohFull {
		add("Service Entry", 1, 10, "Separate arrival")
	}

	return Rescale(items, RangeFor(req.Bedrooms).Target())
}

// Rescale multiplies every row by a single factor so the total lands on
// target, flooring each row at 4 m2. A list whose total already sits within
// one unit of target is returned unchanged, which makes the operation
// idempotent regardless of rounding.
func Rescale(items []domain.ProgramItem, target int) []domain.ProgramItem {
	total := 0
	for _, item := range items {
		total += item.AreaM2
	}
	diff := total - target
	if diff < 0 {
		diff = -diff
	}
	if total == 0 || diff <= 1 {
		return items
	}

	scale := float64(target) / float64(total)
	out := make([]domain.ProgramItem, len(items))
	for i, item := range items {
		area := int(math.Round(float64(item.AreaM2) * scale))
		if area < 4 {
			area = 4
		}
		out[i] = item
		out[i].AreaM2 = area
	}
	return out
}

// Total sums the area column.
func Total(items []domain.ProgramItem) int {
	sum := 0
	for _, item := range items {
		sum += item.AreaM2
	}
	return sum
}
