package domain

// Questionnaire enumerations. Every value is an exact catalog literal; the
// validator guarantees membership, so downstream lookups keyed by these types
// are total and never need a "not found" branch.

type PrimaryUse string

const (
	UsePrimaryHome    PrimaryUse = "Primary home (no rentals)"
	UseOccasionalRent PrimaryUse = "Primary + occasional rent"
	UseHolidayHome    PrimaryUse = "Holiday home (rent when away)"
	UseInvestment     PrimaryUse = "Investment rental"
	UseLongStay       PrimaryUse = "Long-stay rental (6–12 months)"
)

type WhoStays string

const (
	StaysCouple      WhoStays = "Couple / solo"
	StaysSmallFamily WhoStays = "Small family (1–2 kids)"
	StaysLargeFamily WhoStays = "Large family (3+ kids)"
	StaysGuests      WhoStays = "Frequent guests"
	StaysMultiGen    WhoStays = "Multi-generational"
)

type Staffing string

const (
	StaffNone   Staffing = "None (owner-managed)"
	StaffDay    Staffing = "Day staff (light)"
	StaffFull   Staffing = "Full day staff (daily + cook)"
	StaffLiveIn Staffing = "Live-in staff (staff wing)"
)

type BohSeparation string

const (
	BohMinimal  BohSeparation = "Minimal (utility only)"
	BohModerate BohSeparation = "Moderate (service route)"
	BohFull     BohSeparation = "Full (service entry + yard + staff suite)"
)

type Stairs string

const (
	StairsMinimal Stairs = "Minimal steps (accessibility)"
	StairsSome    Stairs = "Some stairs OK"
	StairsSplit   Stairs = "Split-level OK (views first)"
)

type Privacy string

const (
	PrivacyOpen     Privacy = "Open / social"
	PrivacyScreened Privacy = "Private (screened)"
	PrivacySecluded Privacy = "Very private (secluded)"
)

type IndoorOutdoor string

const (
	OutdoorFirst IndoorOutdoor = "Outdoor-first"
	Balanced     IndoorOutdoor = "Balanced"
	IndoorFirst  IndoorOutdoor = "Indoor-first"
)

type Style string

const (
	StyleTropicalModern   Style = "Tropical Modern"
	StyleContemporaryThai Style = "Contemporary Thai"
	StyleResortMinimal    Style = "Resort Minimal"
	StyleRusticMinimal    Style = "Rustic Minimal"
	StyleMidCentury       Style = "Mid-century tropical"
	StyleEcoModern        Style = "Eco-modern"
)

type MaterialMood string

const (
	MoodLightNatural MaterialMood = "Light + natural"
	MoodDark         MaterialMood = "Dark + grounding"
	MoodWarmEarthy   MaterialMood = "Warm + earthy"
	MoodCrispMinimal MaterialMood = "Crisp + minimal"
)

type Pool string

const (
	PoolPlunge   Pool = "Plunge"
	PoolStandard Pool = "Standard"
	PoolLarge    Pool = "Large"
	PoolNone     Pool = "No pool"
)

type Parking string

const (
	ParkingSmall  Parking = "1–2 cars"
	ParkingMedium Parking = "2–3 cars"
	ParkingLarge  Parking = "3+ cars"
)

type FlexSpace string

const (
	FlexOffice    FlexSpace = "Office"
	FlexMedia     FlexSpace = "Media"
	FlexGym       FlexSpace = "Gym/Wellness"
	FlexKidsPlay  FlexSpace = "Kids play"
	FlexGuestFlex FlexSpace = "Guest flex"
	FlexStudio    FlexSpace = "Studio"
)

// BriefRequest is the validated, normalized questionnaire answer set. It is
// created only by ValidateBriefRequest; every enumerable field is guaranteed
// to hold one of its catalog literals.
type BriefRequest struct {
	Bedrooms      int            `json:"bedrooms"`
	PrimaryUse    PrimaryUse     `json:"primaryUse"`
	Staffing      Staffing       `json:"staffing"`
	Boh           BohSeparation  `json:"boh"`
	Stairs        Stairs         `json:"stairs"`
	Privacy       Privacy        `json:"privacy"`
	IndoorOutdoor IndoorOutdoor  `json:"indoorOutdoor"`
	Values        []string       `json:"values"`
	NarrativeSeed *int           `json:"narrativeSeed,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	WhoStays      WhoStays       `json:"whoStays,omitempty"`
	Style         []Style        `json:"style,omitempty"`
	MaterialMood  []MaterialMood `json:"materialMood,omitempty"`
	Pool          Pool           `json:"pool,omitempty"`
	Parking       Parking        `json:"parking,omitempty"`
	FlexSpaces    []FlexSpace    `json:"flexSpaces,omitempty"`
}

// Seed returns the narrative seed, defaulting to 0 when the client omitted it.
func (r *BriefRequest) Seed() int {
	if r.NarrativeSeed == nil {
		return 0
	}
	return *r.NarrativeSeed
}

// ProgramItem is one row of the scaled space program.
type ProgramItem struct {
	Space  string `json:"space"`
	Qty    int    `json:"qty"`
	AreaM2 int    `json:"area_m2"`
	Notes  string `json:"notes,omitempty"`
}

// PlanArea is a named zone area of a plan option.
type PlanArea struct {
	Label  string `json:"label"`
	AreaM2 int    `json:"area_m2"`
}

// PlanOption is a schematic layout with embedded vector markup.
type PlanOption struct {
	SVG   string     `json:"svg"`
	Notes []string   `json:"notes"`
	Areas []PlanArea `json:"areas"`
}

// MoodTileRef is one illustrative image reference on the response moodboard.
type MoodTileRef struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
	Query    string `json:"query"`
}

// MoodboardSummary is the flattened moodboard returned to the client.
type MoodboardSummary struct {
	Palette   []string      `json:"palette"`
	Materials []string      `json:"materials"`
	Tiles     []MoodTileRef `json:"tiles"`
}

// GenerateResponse is the full derived bundle for one questionnaire
// submission. Nothing in it persists past the response.
type GenerateResponse struct {
	BriefMD   string           `json:"brief_md"`
	Program   []ProgramItem    `json:"program"`
	Plans     PlanPair         `json:"plans"`
	Values    []string         `json:"values"`
	Narrative string           `json:"narrative,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	Moodboard MoodboardSummary `json:"moodboard"`
}

// PlanPair holds the two fixed layout studies.
type PlanPair struct {
	OptionA PlanOption `json:"optionA"`
	OptionB PlanOption `json:"optionB"`
}
