package moodboard

import "server/internal/domain"

// Tile catalog and the keyword vocabulary that scores it. Tiles are fixed;
// only their image paths vary by the resolved style direction.

type Tile struct {
	ID            string
	Section       string
	Kind          string
	Title         string
	Tags          []string
	CaptionTokens []string
	AssetID       string
}

type SectionDef struct {
	ID    string
	Label string
}

var sectionDefs = []SectionDef{
	{ID: "architecture_language", Label: "Architecture Language"},
	{ID: "materials_detailing", Label: "Material Palette & Detailing"},
	{ID: "outdoor_living_landscape", Label: "Indoor–Outdoor Living & Landscape"},
	{ID: "interior_mood_lighting", Label: "Interior Mood & Lighting"},
}

var sectionAssetSlugs = map[string]string{
	"architecture_language":    "architecture",
	"materials_detailing":      "materials-texture",
	"outdoor_living_landscape": "landscape-outdoor-living",
	"interior_mood_lighting":   "interior-mood-details",
}

var styleSlugs = map[domain.Style]string{
	domain.StyleTropicalModern:   "tropical-modern",
	domain.StyleContemporaryThai: "contemporary-thai",
	domain.StyleResortMinimal:    "resort-minimal",
	domain.StyleRusticMinimal:    "rustic-minimal",
	domain.StyleMidCentury:       "mid-century-tropical",
	domain.StyleEcoModern:        "eco-modern",
}

var tileLibrary = []Tile{
	// Architecture Language
	{ID: "arch-01", Section: "architecture_language", Kind: "massing_courtyard", Title: "Courtyard Massing", Tags: []string{"courtyard", "inward", "screened", "buffered"}, CaptionTokens: []string{"layered", "shaded", "inward"}, AssetID: "01"},
	{ID: "arch-02", Section: "architecture_language", Kind: "roof_eaves", Title: "Roof Eaves", Tags: []string{"roof", "eaves", "shade", "tropical", "breeze"}, CaptionTokens: []string{"deep", "shaded", "tropical"}, AssetID: "02"},
	{ID: "arch-03", Section: "architecture_language", Kind: "facade_screens", Title: "Facade Screens", Tags: []string{"screened", "privacy", "thai", "crafted"}, CaptionTokens: []string{"screened", "crafted", "filtered"}, AssetID: "03"},
	{ID: "arch-04", Section: "architecture_language", Kind: "massing_courtyard", Title: "Arrival Pavilion", Tags: []string{"arrival", "open", "social", "modern"}, CaptionTokens: []string{"welcoming", "open", "modern"}, AssetID: "04"},
	{ID: "arch-05", Section: "architecture_language", Kind: "terrace_veranda", Title: "Terrace Edge", Tags: []string{"terrace", "view", "open"}, CaptionTokens: []string{"view-facing", "open", "light"}, AssetID: "05"},
	{ID: "arch-06", Section: "architecture_language", Kind: "facade_screens", Title: "Screened Gallery", Tags: []string{"screened", "ventilated", "transition"}, CaptionTokens: []string{"filtered", "ventilated", "calm"}, AssetID: "06"},
	{ID: "arch-07", Section: "architecture_language", Kind: "massing_courtyard", Title: "Garden Spine", Tags: []string{"garden", "transition", "veranda"}, CaptionTokens: []string{"linear", "lush", "calm"}, AssetID: "07"},
	{ID: "arch-08", Section: "architecture_language", Kind: "massing_courtyard", Title: "Quiet Wing", Tags: []string{"separation", "private", "buffered"}, CaptionTokens: []string{"buffered", "quiet", "private"}, AssetID: "08"},

	// Material Palette & Detailing
	{ID: "mat-01", Section: "materials_detailing", Kind: "timber_language", Title: "Teak Slat Wall", Tags: []string{"teak", "timber", "warm", "tropical"}, CaptionTokens: []string{"warm", "matte", "linear"}, AssetID: "01"},
	{ID: "mat-02", Section: "materials_detailing", Kind: "stone_language", Title: "Warm Limestone", Tags: []string{"limestone", "stone", "warm"}, CaptionTokens: []string{"sandy", "honed", "soft"}, AssetID: "02"},
	{ID: "mat-03", Section: "materials_detailing", Kind: "timber_language", Title: "Rattan Weave", Tags: []string{"rattan", "woven", "natural"}, CaptionTokens: []string{"woven", "tactile", "light"}, AssetID: "03"},
	{ID: "mat-04", Section: "materials_detailing", Kind: "primary_surface", Title: "Plaster Texture", Tags: []string{"plaster", "matte", "minimal"}, CaptionTokens: []string{"chalky", "hand-finished", "soft"}, AssetID: "04"},
	{ID: "mat-05", Section: "materials_detailing", Kind: "primary_surface", Title: "Linen Weave", Tags: []string{"linen", "soft", "light"}, CaptionTokens: []string{"soft", "breathable", "calm"}, AssetID: "05"},
	{ID: "mat-06", Section: "materials_detailing", Kind: "primary_surface", Title: "Terrazzo Aggregate", Tags: []string{"terrazzo", "crafted", "modern"}, CaptionTokens: []string{"speckled", "polished", "clean"}, AssetID: "06"},
	{ID: "mat-07", Section: "materials_detailing", Kind: "primary_surface", Title: "Bronze Hardware", Tags: []string{"bronze", "metal", "crafted"}, CaptionTokens: []string{"brushed", "warm", "metal"}, AssetID: "07"},
	{ID: "mat-08", Section: "materials_detailing", Kind: "stone_language", Title: "Basalt Stone", Tags: []string{"basalt", "stone", "dark"}, CaptionTokens: []string{"dark", "dense", "grounded"}, AssetID: "08"},
	{ID: "mat-09", Section: "materials_detailing", Kind: "timber_language", Title: "Charred Timber", Tags: []string{"timber", "rustic", "textured"}, CaptionTokens: []string{"smoked", "textured", "deep"}, AssetID: "09"},
	{ID: "mat-10", Section: "materials_detailing", Kind: "stone_language", Title: "Travertine", Tags: []string{"travertine", "stone", "refined"}, CaptionTokens: []string{"linear", "honed", "porous"}, AssetID: "10"},
	{ID: "mat-11", Section: "materials_detailing", Kind: "primary_surface", Title: "Clay Tile", Tags: []string{"clay", "earthy", "rustic"}, CaptionTokens: []string{"warm", "crafted", "matte"}, AssetID: "11"},
	{ID: "mat-12", Section: "materials_detailing", Kind: "timber_language", Title: "Cane Panels", Tags: []string{"cane", "woven", "tropical"}, CaptionTokens: []string{"light", "airy", "woven"}, AssetID: "12"},

	// Indoor–Outdoor Living & Landscape
	{ID: "out-01", Section: "outdoor_living_landscape", Kind: "terrace_veranda", Title: "Pool Terrace", Tags: []string{"pool", "terrace", "outdoor", "breeze"}, CaptionTokens: []string{"sun-washed", "relaxed", "open"}, AssetID: "01"},
	{ID: "out-02", Section: "outdoor_living_landscape", Kind: "massing_courtyard", Title: "Garden Courtyard", Tags: []string{"courtyard", "lush", "private"}, CaptionTokens: []string{"lush", "enclosed", "calm"}, AssetID: "02"},
	{ID: "out-03", Section: "outdoor_living_landscape", Kind: "terrace_veranda", Title: "Shaded Veranda", Tags: []string{"veranda", "transition", "shade"}, CaptionTokens: []string{"breezy", "covered", "soft"}, AssetID: "03"},
	{ID: "out-04", Section: "outdoor_living_landscape", Kind: "terrace_veranda", Title: "Outdoor Lounge", Tags: []string{"outdoor", "social", "terrace"}, CaptionTokens: []string{"low seating", "soft shade", "social"}, AssetID: "04"},
	{ID: "out-05", Section: "outdoor_living_landscape", Kind: "planting_density", Title: "Tropical Planting", Tags: []string{"planting", "tropical", "buffered"}, CaptionTokens: []string{"dense", "layered", "green"}, AssetID: "05"},
	{ID: "out-06", Section: "outdoor_living_landscape", Kind: "pool_edge", Title: "Water Edge", Tags: []string{"water", "calm", "view"}, CaptionTokens: []string{"reflective", "quiet", "cool"}, AssetID: "06"},
	{ID: "out-07", Section: "outdoor_living_landscape", Kind: "planting_density", Title: "Forest Screen", Tags: []string{"screened", "privacy", "buffered"}, CaptionTokens: []string{"green", "filtered", "private"}, AssetID: "07"},
	{ID: "out-08", Section: "outdoor_living_landscape", Kind: "terrace_veranda", Title: "Sun Deck", Tags: []string{"open", "social", "sun"}, CaptionTokens: []string{"open", "warm", "social"}, AssetID: "08"},

	// Interior Mood & Lighting
	{ID: "int-01", Section: "interior_mood_lighting", Kind: "living_mood", Title: "Living Lounge", Tags: []string{"living", "airy", "open", "modern"}, CaptionTokens: []string{"soft", "airy", "relaxed"}, AssetID: "01"},
	{ID: "int-02", Section: "interior_mood_lighting", Kind: "lighting_reference", Title: "Dining Glow", Tags: []string{"dining", "warm", "communal"}, CaptionTokens: []string{"warm", "communal", "glow"}, AssetID: "02"},
	{ID: "int-03", Section: "interior_mood_lighting", Kind: "bed_bath_calm", Title: "Bedroom Calm", Tags: []string{"bedroom", "calm", "private"}, CaptionTokens: []string{"quiet", "minimal", "calm"}, AssetID: "03"},
	{ID: "int-04", Section: "interior_mood_lighting", Kind: "bed_bath_calm", Title: "Bath Retreat", Tags: []string{"bath", "spa", "stone"}, CaptionTokens: []string{"stone", "spa", "retreat"}, AssetID: "04"},
	{ID: "int-05", Section: "interior_mood_lighting", Kind: "living_mood", Title: "Detail Joinery", Tags: []string{"joinery", "crafted", "timber"}, CaptionTokens: []string{"precise", "crafted", "warm"}, AssetID: "05"},
	{ID: "int-06", Section: "interior_mood_lighting", Kind: "lighting_reference", Title: "Service Detail", Tags: []string{"service", "discreet_service", "back_of_house"}, CaptionTokens: []string{"discreet", "functional", "quiet"}, AssetID: "06"},
	{ID: "int-07", Section: "interior_mood_lighting", Kind: "living_mood", Title: "Textile Layering", Tags: []string{"textile", "soft", "natural"}, CaptionTokens: []string{"woven", "soft", "tactile"}, AssetID: "07"},
	{ID: "int-08", Section: "interior_mood_lighting", Kind: "lighting_reference", Title: "Lighting Accent", Tags: []string{"lighting", "ambient", "warm"}, CaptionTokens: []string{"low glow", "ambient", "warm"}, AssetID: "08"},
}

// defaultTileIDs is the per-section fallback used when no tile scores at all.
var defaultTileIDs = map[string][]string{
	"architecture_language":    {"arch-01", "arch-02", "arch-03"},
	"materials_detailing":      {"mat-01", "mat-02", "mat-04"},
	"outdoor_living_landscape": {"out-01", "out-02", "out-03"},
	"interior_mood_lighting":   {"int-01", "int-02", "int-03"},
}

var styleKeywords = map[domain.Style][]string{
	domain.StyleTropicalModern:   {"tropical", "modern", "warm", "airy"},
	domain.StyleContemporaryThai: {"thai", "timber", "stone", "crafted"},
	domain.StyleResortMinimal:    {"resort", "minimal", "calm", "refined"},
	domain.StyleRusticMinimal:    {"rustic", "textured", "calm", "natural"},
	domain.StyleMidCentury:       {"mid-century", "tropical", "timber", "warm"},
	domain.StyleEcoModern:        {"eco", "modern", "natural", "light"},
}

var privacyKeywords = map[domain.Privacy][]string{
	domain.PrivacySecluded: {"screened", "buffered", "courtyard", "inward", "secluded"},
	domain.PrivacyScreened: {"screened", "courtyard", "buffered"},
	domain.PrivacyOpen:     {"open", "social", "view", "flow"},
}

var indoorOutdoorKeywords = map[domain.IndoorOutdoor][]string{
	domain.OutdoorFirst: {"terrace", "pool", "breeze", "veranda"},
	domain.Balanced:     {"equal_flow", "transition", "veranda"},
	domain.IndoorFirst:  {"indoor", "calm", "sheltered"},
}

var staffingKeywords = map[domain.Staffing][]string{
	domain.StaffNone:   {"owner_operated", "compact"},
	domain.StaffDay:    {"discreet_service", "storage", "service"},
	domain.StaffFull:   {"service", "back_of_house", "discreet_service"},
	domain.StaffLiveIn: {"service_wing", "separation", "back_of_house"},
}

var bohKeywords = map[domain.BohSeparation][]string{
	domain.BohMinimal:  {"compact", "back_of_house"},
	domain.BohModerate: {"service_route", "separation"},
	domain.BohFull:     {"service_wing", "separation", "back_of_house"},
}

var stairsKeywords = map[domain.Stairs][]string{
	domain.StairsMinimal: {"step_free", "accessible", "level"},
	domain.StairsSome:    {"steps_ok", "terraced"},
	domain.StairsSplit:   {"split_level", "views"},
}

var whoStaysKeywords = map[domain.WhoStays][]string{
	domain.StaysCouple:      {"couple"},
	domain.StaysSmallFamily: {"family"},
	domain.StaysLargeFamily: {"family", "kids"},
	domain.StaysGuests:      {"guests"},
	domain.StaysMultiGen:    {"multi_gen", "family"},
}

var materialMoodKeywords = map[domain.MaterialMood][]string{
	domain.MoodLightNatural: {"light", "natural"},
	domain.MoodDark:         {"dark", "grounded"},
	domain.MoodWarmEarthy:   {"warm", "earthy"},
	domain.MoodCrispMinimal: {"crisp", "minimal"},
}

var poolKeywords = map[domain.Pool][]string{
	domain.PoolPlunge:   {"plunge", "pool"},
	domain.PoolStandard: {"pool"},
	domain.PoolLarge:    {"pool", "lap"},
	domain.PoolNone:     {"no_pool"},
}

var parkingKeywords = map[domain.Parking][]string{
	domain.ParkingSmall:  {"parking"},
	domain.ParkingMedium: {"parking"},
	domain.ParkingLarge:  {"parking", "expanded"},
}

var flexKeywords = map[domain.FlexSpace][]string{
	domain.FlexOffice:    {"office", "work"},
	domain.FlexMedia:     {"media", "lounge"},
	domain.FlexGym:       {"wellness", "gym"},
	domain.FlexKidsPlay:  {"kids", "play"},
	domain.FlexGuestFlex: {"guest", "flex"},
	domain.FlexStudio:    {"studio", "creative"},
}
