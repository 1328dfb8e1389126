package program

import (
	"reflect"
	"testing"

	"server/internal/domain"
)

func baseRequest() *domain.BriefRequest {
	return &domain.BriefRequest{
		Bedrooms:      3,
		PrimaryUse:    domain.UsePrimaryHome,
		Staffing:      domain.StaffNone,
		Boh:           domain.BohMinimal,
		Stairs:        domain.StairsSome,
		Privacy:       domain.PrivacyScreened,
		IndoorOutdoor: domain.Balanced,
		Values:        []string{"Nature exploration and adventures", "Hard work and dedication"},
	}
}

func findRow(t *testing.T, items []domain.ProgramItem, space string) domain.ProgramItem {
	t.Helper()
	for _, item := range items {
		if item.Space == space {
			return item
		}
	}
	t.Fatalf("row %q not found in %+v", space, items)
	return domain.ProgramItem{}
}

func TestBuildThreeBedroomPrimaryHome(t *testing.T) {
	t.Parallel()
	items := Build(baseRequest())

	findRow(t, items, "Arrival Court")
	findRow(t, items, "Primary Suite")
	findRow(t, items, "Home Office")

	guest := findRow(t, items, "Guest Suite")
	if guest.Qty != 2 {
		t.Fatalf("guest suites qty = %d, want bedrooms-1 = 2", guest.Qty)
	}

	target := RangeFor(3).Target()
	if target != 290 {
		t.Fatalf("3-bedroom target = %d, want 290", target)
	}
	total := Total(items)
	if total < target-1 || total > target+1 {
		t.Fatalf("total area = %d, want within 1 of %d", total, target)
	}

	// No staffed rows for an owner-managed minimal-BOH brief.
	for _, item := range items {
		switch item.Space {
		case "Back Kitchen / Prep", "Staff Pantry", "Staff Suite", "Service Yard", "Service Entry":
			t.Fatalf("unexpected service row %q", item.Space)
		}
	}
}

func TestBuildConditionalRows(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.Staffing = domain.StaffLiveIn
	req.Boh = domain.BohFull
	req.Privacy = domain.PrivacySecluded
	req.IndoorOutdoor = domain.OutdoorFirst
	req.Pool = domain.PoolLarge

	items := Build(req)
	for _, space := range []string{
		"Back Kitchen / Prep", "Staff Suite", "Staff Pantry", "Service Yard",
		"Service Entry", "Courtyard Garden", "Screened Veranda", "View Terrace",
		"Pool Deck", "Pool",
	} {
		findRow(t, items, space)
	}

	req.Pool = domain.PoolNone
	items = Build(req)
	for _, item := range items {
		if item.Space == "Pool" || item.Space == "Pool Deck" {
			t.Fatalf("pool rows present despite %q", domain.PoolNone)
		}
	}
}

func TestBuildOneBedroomHasNoGuestSuites(t *testing.T) {
	t.Parallel()
	req := baseRequest()
	req.Bedrooms = 1
	items := Build(req)
	for _, item := range items {
		if item.Space == "Guest Suite" {
			t.Fatalf("guest suite present for 1 bedroom")
		}
	}
}

func TestRescaleIdempotent(t *testing.T) {
	t.Parallel()
	items := Build(baseRequest())
	target := RangeFor(3).Target()
	again := Rescale(items, target)
	if !reflect.DeepEqual(items, again) {
		t.Fatalf("rescaling an already-scaled program changed it:\n%+v\n%+v", items, again)
	}
}

func TestRescaleFloorsSmallRows(t *testing.T) {
	t.Parallel()
	items := []domain.ProgramItem{
		{Space: "Powder Room", Qty: 1, AreaM2: 6},
		{Space: "Great Room", Qty: 1, AreaM2: 194},
	}
	out := Rescale(items, 100)
	if out[0].AreaM2 < 4 {
		t.Fatalf("scaled row below floor: %d", out[0].AreaM2)
	}
}

func TestTotalNearTargetAcrossBands(t *testing.T) {
	t.Parallel()
	for bedrooms := 1; bedrooms <= 6; bedrooms++ {
		req := baseRequest()
		req.Bedrooms = bedrooms
		total := Total(Build(req))
		target := RangeFor(bedrooms).Target()
		diff := total - target
		if diff < 0 {
			diff = -diff
		}
		// Up to 12 rows round independently, so the rescaled total can
		// land a few square meters off the band midpoint.
		if diff > 3 {
			t.Fatalf("bedrooms=%d total=%d target=%d drift=%d", bedrooms, total, target, diff)
		}
	}
}

func TestRangeForUnknownFallsBack(t *testing.T) {
	t.Parallel()
	if RangeFor(42) != RangeFor(3) {
		t.Fatal("unknown bedroom count should fall back to the 3-bedroom band")
	}
}
