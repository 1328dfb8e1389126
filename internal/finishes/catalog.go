package finishes

// Static finishes catalog: shared finish records and the twelve style-genre
// entries that recommend them. Initialized once, read-only afterwards.

type Tier string

const (
	TierPrimary    Tier = "primary"
	TierSupporting Tier = "supporting"
)

// Finish is one catalog-fixed material recommendation. Tone (core vs accent)
// is not stored here; it is derived per request from how many selected genres
// recommend the finish.
type Finish struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Name  string   `json:"finish"`
	Where string   `json:"where"`
	Why   string   `json:"why"`
	Tier  Tier     `json:"tier"`
	Tags  []string `json:"tags"`
}

// PaletteRoles holds the candidate colors a genre contributes per palette role.
type PaletteRoles struct {
	Base       []string
	Stone      []string
	Timber     []string
	Shadow     []string
	Vegetation []string
	Metal      []string
}

// Genre is one style-genre catalog row.
type Genre struct {
	Name      string
	Tone      string
	CoreMoves []string
	Palette   PaletteRoles
	Walls     []Finish
	Floors    []Finish
	Timber    []Finish
	Metals    []Finish
}

// SectionDef names one of the four fixed material sections.
type SectionDef struct {
	Key   string
	Label string
}

var MaterialSections = []SectionDef{
	{Key: "wallsCeilings", Label: "Walls & Ceilings"},
	{Key: "floorsStone", Label: "Floors & Stone"},
	{Key: "timberJoinery", Label: "Timber & Joinery"},
	{Key: "metalsTextilesScreens", Label: "Metals, Textiles & Screens"},
}

// PaletteRoleDef names one of the six fixed palette roles, in board order.
type PaletteRoleDef struct {
	Key   string
	Label string
}

var PaletteOrder = []PaletteRoleDef{
	{Key: "base", Label: "Base"},
	{Key: "stone", Label: "Stone"},
	{Key: "timber", Label: "Timber"},
	{Key: "shadow", Label: "Shadow"},
	{Key: "vegetation", Label: "Vegetation"},
	{Key: "metal", Label: "Metal"},
}

// Wall finishes.
var (
	wallLimewash     = Finish{ID: "walls-limewash", Title: "Primary wall finish", Name: "Limewash (matte)", Where: "Main living walls", Why: "Breathable base that resists humidity marks.", Tier: TierPrimary, Tags: []string{"breathable", "matte", "calm"}}
	wallClayPlaster  = Finish{ID: "walls-clay-plaster", Title: "Clay plaster wall", Name: "Clay plaster (matte)", Where: "Feature walls", Why: "Soft texture with low glare and depth.", Tier: TierSupporting, Tags: []string{"textured", "matte", "natural"}}
	wallMicrocement  = Finish{ID: "walls-microcement", Title: "Microcement wall", Name: "Microcement (low sheen)", Where: "Wet zones + entries", Why: "Durable surface with minimal joints.", Tier: TierPrimary, Tags: []string{"durable", "low-sheen"}}
	wallWhitePlaster = Finish{ID: "walls-white-plaster", Title: "White plaster wall", Name: "White mineral plaster", Where: "Main living walls", Why: "Bright base that reflects filtered daylight.", Tier: TierPrimary, Tags: []string{"bright", "clean"}}
	wallStoneVeneer  = Finish{ID: "walls-stone-veneer", Title: "Stone veneer feature", Name: "Stone veneer (textured)", Where: "Entry or courtyard wall", Why: "Adds mass and cool texture to focal walls.", Tier: TierSupporting, Tags: []string{"stone", "textured"}}
	wallTimberSlat   = Finish{ID: "walls-timber-slat", Title: "Timber slat screen", Name: "Timber slats (sealed)", Where: "Screens + feature walls", Why: "Warm rhythm and filtered privacy.", Tier: TierSupporting, Tags: []string{"timber", "screened"}}
	wallWovenScreen  = Finish{ID: "walls-woven-screen", Title: "Woven screen wall", Name: "Woven rattan screen", Where: "Lanai or transition zones", Why: "Layered shade with airy texture.", Tier: TierSupporting, Tags: []string{"screened", "textile"}}
	wallRawConcrete  = Finish{ID: "walls-raw-concrete", Title: "Raw concrete wall", Name: "Raw concrete (sealed)", Where: "Feature walls", Why: "Industrial edge with minimal upkeep.", Tier: TierPrimary, Tags: []string{"industrial", "durable"}}
)

// Floor and stone finishes.
var (
	floorHonedLimestone   = Finish{ID: "floors-honed-limestone", Title: "Honed limestone floor", Name: "Honed limestone", Where: "Living + circulation floors", Why: "Cool underfoot and slip-safe when textured.", Tier: TierPrimary, Tags: []string{"stone", "cool"}}
	floorTerrazzo         = Finish{ID: "floors-terrazzo", Title: "Terrazzo floor", Name: "Terrazzo (low sheen)", Where: "Living floors", Why: "Hard-wearing with a refined pattern.", Tier: TierPrimary, Tags: []string{"durable", "crafted"}}
	floorTerracotta       = Finish{ID: "floors-terracotta", Title: "Terracotta floor", Name: "Terracotta tile", Where: "Outdoor terraces", Why: "Warm tone with natural grip.", Tier: TierSupporting, Tags: []string{"warm", "earthy"}}
	floorPolishedConcrete = Finish{ID: "floors-polished-concrete", Title: "Polished concrete floor", Name: "Concrete (sealed)", Where: "Service + kitchen floors", Why: "Extremely durable and easy to maintain.", Tier: TierPrimary, Tags: []string{"industrial", "durable"}}
	floorTeakDeck         = Finish{ID: "floors-teak-deck", Title: "Teak deck surface", Name: "Teak decking", Where: "Outdoor rooms", Why: "Warm barefoot feel and quick drainage.", Tier: TierSupporting, Tags: []string{"timber", "outdoor"}}
	floorBasaltPavers     = Finish{ID: "floors-basalt-pavers", Title: "Basalt pavers", Name: "Basalt pavers (textured)", Where: "Courtyards + pool edges", Why: "Non-slip texture for wet zones.", Tier: TierSupporting, Tags: []string{"slip-safe", "stone"}}
	floorOakBoard         = Finish{ID: "floors-oak-board", Title: "Oak board floor", Name: "Engineered oak", Where: "Bedrooms", Why: "Warm underfoot comfort in private zones.", Tier: TierPrimary, Tags: []string{"timber", "warm"}}
	floorWalnutBoard      = Finish{ID: "floors-walnut-board", Title: "Walnut board floor", Name: "Walnut timber", Where: "Living or study floors", Why: "Richer grain for mid-century warmth.", Tier: TierSupporting, Tags: []string{"timber", "rich"}}
)

// Timber and joinery finishes.
var (
	timberTeak      = Finish{ID: "timber-teak-joinery", Title: "Teak joinery", Name: "Teak (satin)", Where: "Cabinetry + doors", Why: "Classic tropical timber with durability.", Tier: TierPrimary, Tags: []string{"timber", "warm"}}
	timberOak       = Finish{ID: "timber-oak-joinery", Title: "Oak joinery", Name: "Oak (matte)", Where: "Built-ins + doors", Why: "Clean grain with calm tone.", Tier: TierPrimary, Tags: []string{"timber", "calm"}}
	timberWalnut    = Finish{ID: "timber-walnut-joinery", Title: "Walnut joinery", Name: "Walnut (satin)", Where: "Feature joinery", Why: "Deep tone for refined contrast.", Tier: TierPrimary, Tags: []string{"timber", "rich"}}
	timberAsh       = Finish{ID: "timber-ash-joinery", Title: "Ash joinery", Name: "Ash timber", Where: "Wardrobes + shelving", Why: "Light grain for airy interiors.", Tier: TierPrimary, Tags: []string{"timber", "light"}}
	timberBamboo    = Finish{ID: "timber-bamboo-panel", Title: "Bamboo panel", Name: "Bamboo paneling", Where: "Screens + accents", Why: "Fast-growing material with texture.", Tier: TierSupporting, Tags: []string{"timber", "textured"}}
	timberRattan    = Finish{ID: "timber-rattan-panel", Title: "Rattan panel", Name: "Rattan weave", Where: "Cabinet fronts", Why: "Adds lightness and airflow to joinery.", Tier: TierSupporting, Tags: []string{"textile", "screened"}}
	timberReclaimed = Finish{ID: "timber-reclaimed", Title: "Reclaimed timber", Name: "Reclaimed wood", Where: "Statement joinery", Why: "Character grain with sustainable story.", Tier: TierSupporting, Tags: []string{"timber", "textured"}}
	timberCharred   = Finish{ID: "timber-charred", Title: "Charred timber", Name: "Shou sugi ban", Where: "Feature screens", Why: "Deep tone with weather resistance.", Tier: TierSupporting, Tags: []string{"timber", "dark"}}
)

// Metals, textiles and screens.
var (
	metalBrushedBrass   = Finish{ID: "metal-brushed-brass", Title: "Brushed brass hardware", Name: "Brushed brass", Where: "Handles + fixtures", Why: "Warm metal accents that age gracefully.", Tier: TierPrimary, Tags: []string{"metal", "warm"}}
	metalBlackenedSteel = Finish{ID: "metal-blackened-steel", Title: "Blackened steel", Name: "Blackened steel", Where: "Frames + details", Why: "Slim profiles with robust performance.", Tier: TierPrimary, Tags: []string{"metal", "bold"}}
	metalBrushedSteel   = Finish{ID: "metal-brushed-steel", Title: "Brushed steel", Name: "Brushed stainless", Where: "Wet zone hardware", Why: "Marine-ready finish for humid zones.", Tier: TierPrimary, Tags: []string{"metal", "durable"}}
	metalBronzeMesh     = Finish{ID: "metal-bronze-mesh", Title: "Bronze mesh screen", Name: "Bronze mesh", Where: "Facade or stair screens", Why: "Softens light while improving privacy.", Tier: TierSupporting, Tags: []string{"screened", "metal"}}
	textileLinen        = Finish{ID: "textile-linen", Title: "Linen drapery", Name: "Linen (sheer)", Where: "Bedrooms + living", Why: "Softens light and air movement.", Tier: TierSupporting, Tags: []string{"soft", "textile"}}
	textileCotton       = Finish{ID: "textile-cotton", Title: "Cotton weave", Name: "Cotton weave", Where: "Lounge textiles", Why: "Adds tactile layering without weight.", Tier: TierSupporting, Tags: []string{"soft", "textile"}}
	screenTimber        = Finish{ID: "screen-timber", Title: "Timber screen", Name: "Timber screen", Where: "Privacy edges", Why: "Filters views while keeping airflow.", Tier: TierSupporting, Tags: []string{"screened", "timber"}}
	screenPerforated    = Finish{ID: "screen-perforated-metal", Title: "Perforated metal screen", Name: "Perforated metal", Where: "Service screening", Why: "Durable shade with airflow.", Tier: TierSupporting, Tags: []string{"screened", "industrial"}}
)

// Genres lists the style-genre catalog in presentation order. Palette roles
// are intentionally distinct per genre so the same deterministic selection
// yields visibly different boards.
var Genres = []Genre{
	{
		Name:      "Japanese / Zen (Japandi)",
		Tone:      "warm neutral",
		CoreMoves: []string{"breathable walls", "low-sheen stone", "quiet timber"},
		Palette: PaletteRoles{
			Base:       []string{"#F2EDE3", "#E6DED2", "#F7F3EA", "#DDD2C6", "#ECE5D9"},
			Stone:      []string{"#D7CEC2", "#CFC5B8", "#E1D8CC", "#C5BCAE", "#BFB5A8"},
			Timber:     []string{"#D9C29B", "#CDB68E", "#E1CFA8", "#C2AA82", "#B89F78"},
			Shadow:     []string{"#4A4440", "#3F3A36", "#5A5350", "#332E2A", "#504A46"},
			Vegetation: []string{"#7A846D", "#6F7963", "#8A947B", "#636C58", "#75806A"},
			Metal:      []string{"#2F2B28", "#3A3531", "#262320", "#45403C", "#1F1C19"},
		},
		Walls:  []Finish{wallLimewash, wallClayPlaster, wallWhitePlaster, wallTimberSlat},
		Floors: []Finish{floorOakBoard, floorHonedLimestone, floorTerrazzo, floorBasaltPavers},
		Timber: []Finish{timberOak, timberAsh, timberTeak, timberBamboo},
		Metals: []Finish{metalBlackenedSteel, metalBrushedSteel, textileLinen, screenTimber},
	},
	{
		Name:      "Modern Tropical (Tropical Modernism)",
		Tone:      "warm neutral",
		CoreMoves: []string{"breezy thresholds", "teak accents", "filtered shade"},
		Palette: PaletteRoles{
			Base:       []string{"#F4E7D4", "#EEDFC8", "#FAF0E1", "#E3D4BD", "#F0E3D1"},
			Stone:      []string{"#D4C2AB", "#C9B79F", "#E0D0BA", "#BFAE96", "#CABAA3"},
			Timber:     []string{"#C58A55", "#B97845", "#D19763", "#A66B3E", "#C08852"},
			Shadow:     []string{"#6A584B", "#5E4F44", "#7A685B", "#53453B", "#665548"},
			Vegetation: []string{"#2F5B45", "#3A6A50", "#25513D", "#44725A", "#1F4736"},
			Metal:      []string{"#C79A63", "#B98954", "#D3A66E", "#AE7F4D", "#BF8F5B"},
		},
		Walls:  []Finish{wallLimewash, wallWhitePlaster, wallTimberSlat, wallStoneVeneer},
		Floors: []Finish{floorHonedLimestone, floorTeakDeck, floorBasaltPavers, floorTerrazzo},
		Timber: []Finish{timberTeak, timberRattan, timberBamboo, timberOak},
		Metals: []Finish{metalBrushedBrass, metalBronzeMesh, textileLinen, screenTimber},
	},
	{
		Name:      "Balinese Resort",
		Tone:      "earthy dark",
		CoreMoves: []string{"layered craft", "stone grounding", "woven texture"},
		Palette: PaletteRoles{
			Base:       []string{"#E6D5C2", "#DCCAB7", "#F0E1CF", "#D2C0AE", "#E1D0BE"},
			Stone:      []string{"#C2AE98", "#B79F89", "#D0BBA6", "#AC937F", "#C7B29D"},
			Timber:     []string{"#8E5D37", "#7F4F2E", "#9D6B44", "#714426", "#A3724A"},
			Shadow:     []string{"#453A32", "#3A312B", "#52463E", "#2F2722", "#4B3F37"},
			Vegetation: []string{"#3F5A44", "#344E3B", "#4B6550", "#2B4031", "#445C48"},
			Metal:      []string{"#7C5C40", "#6F5339", "#8A694A", "#63472F", "#76583D"},
		},
		Walls:  []Finish{wallClayPlaster, wallLimewash, wallStoneVeneer, wallWovenScreen},
		Floors: []Finish{floorTerracotta, floorBasaltPavers, floorTeakDeck, floorHonedLimestone},
		Timber: []Finish{timberTeak, timberBamboo, timberRattan, timberReclaimed},
		Metals: []Finish{metalBronzeMesh, metalBrushedBrass, textileCotton, screenTimber},
	},
	{
		Name:      "Thai Contemporary",
		Tone:      "warm neutral",
		CoreMoves: []string{"crafted timber", "polished stone", "screened edges"},
		Palette: PaletteRoles{
			Base:       []string{"#F1E4D2", "#E8DAC8", "#F7ECDD", "#DDD0BE", "#EDE0CF"},
			Stone:      []string{"#C8B7A4", "#BFAF9C", "#D4C4B1", "#B3A391", "#C1B19E"},
			Timber:     []string{"#A77245", "#996A3F", "#B07C50", "#8B5D35", "#A06F43"},
			Shadow:     []string{"#5A5048", "#4F4640", "#665C54", "#433B35", "#5F544D"},
			Vegetation: []string{"#4C6652", "#415A47", "#5A725F", "#374C3D", "#536B57"},
			Metal:      []string{"#B08A60", "#A27C55", "#BC956A", "#97714B", "#AE875B"},
		},
		Walls:  []Finish{wallMicrocement, wallLimewash, wallStoneVeneer, wallTimberSlat},
		Floors: []Finish{floorHonedLimestone, floorTerrazzo, floorBasaltPavers, floorTeakDeck},
		Timber: []Finish{timberTeak, timberWalnut, timberOak, timberRattan},
		Metals: []Finish{metalBrushedBrass, metalBronzeMesh, textileLinen, screenTimber},
	},
	{
		Name:      "Traditional Thai",
		Tone:      "earthy dark",
		CoreMoves: []string{"ornate timber", "courtyard shade", "warm stone"},
		Palette: PaletteRoles{
			Base:       []string{"#E3D0BC", "#D9C4B0", "#EEE0CD", "#CEB9A6", "#E0CBB7"},
			Stone:      []string{"#BFA48B", "#B3977F", "#CDB29A", "#A78C74", "#B69B83"},
			Timber:     []string{"#7F4F2C", "#6F4225", "#8F5D36", "#5E351E", "#9B6940"},
			Shadow:     []string{"#3F322B", "#332823", "#4C3E35", "#2A211D", "#453831"},
			Vegetation: []string{"#3A5A3F", "#2F4A34", "#46654B", "#25402C", "#3F5D44"},
			Metal:      []string{"#8B6A4C", "#7D5D41", "#9A7758", "#6F5138", "#856244"},
		},
		Walls:  []Finish{wallLimewash, wallClayPlaster, wallTimberSlat, wallWovenScreen},
		Floors: []Finish{floorTerracotta, floorBasaltPavers, floorTeakDeck, floorHonedLimestone},
		Timber: []Finish{timberTeak, timberBamboo, timberRattan, timberReclaimed},
		Metals: []Finish{metalBrushedBrass, metalBronzeMesh, textileCotton, screenTimber},
	},
	{
		Name:      "Mediterranean Coastal",
		Tone:      "warm neutral",
		CoreMoves: []string{"sun-washed walls", "terracotta floors", "soft brass"},
		Palette: PaletteRoles{
			Base:       []string{"#FFF3E2", "#F7EBD8", "#FDF7EE", "#F1E4D1", "#F9EEDC"},
			Stone:      []string{"#E4D5C1", "#D9CAB6", "#EEDFCC", "#CEBFA9", "#D5C6B2"},
			Timber:     []string{"#C68B5A", "#B97F51", "#D39A69", "#A86E43", "#C08852"},
			Shadow:     []string{"#A79A8F", "#9A8E83", "#B2A69B", "#8C8076", "#A09488"},
			Vegetation: []string{"#7E8B6D", "#6F7C5F", "#8A9776", "#5F6D52", "#78866A"},
			Metal:      []string{"#C08E6A", "#B07D5A", "#CFA079", "#A36E4C", "#B7845E"},
		},
		Walls:  []Finish{wallWhitePlaster, wallLimewash, wallStoneVeneer, wallClayPlaster},
		Floors: []Finish{floorTerracotta, floorHonedLimestone, floorTerrazzo, floorBasaltPavers},
		Timber: []Finish{timberOak, timberWalnut, timberReclaimed, timberTeak},
		Metals: []Finish{metalBrushedBrass, metalBlackenedSteel, textileLinen, metalBronzeMesh},
	},
	{
		Name:      "Scandinavian Minimal",
		Tone:      "cool light",
		CoreMoves: []string{"light timber", "clean plaster", "soft textiles"},
		Palette: PaletteRoles{
			Base:       []string{"#F4F6F7", "#EEF1F3", "#FAFBFC", "#E3E7EA", "#F0F2F4"},
			Stone:      []string{"#CDD2D6", "#C1C7CC", "#D8DDE1", "#B5BCC1", "#C9CED3"},
			Timber:     []string{"#E0D3B6", "#D6C8AA", "#E8DBC0", "#CBBEA2", "#DCCFAF"},
			Shadow:     []string{"#5A5E62", "#4E5357", "#676C70", "#43484C", "#5F6468"},
			Vegetation: []string{"#7A867B", "#6E7B70", "#879489", "#626E64", "#738076"},
			Metal:      []string{"#8E9398", "#7F858B", "#9BA1A6", "#72787E", "#888D92"},
		},
		Walls:  []Finish{wallWhitePlaster, wallLimewash, wallMicrocement, wallClayPlaster},
		Floors: []Finish{floorOakBoard, floorHonedLimestone, floorTerrazzo, floorPolishedConcrete},
		Timber: []Finish{timberOak, timberAsh, timberWalnut, timberTeak},
		Metals: []Finish{metalBrushedSteel, metalBlackenedSteel, textileLinen, screenTimber},
	},
	{
		Name:      "Rustic Natural",
		Tone:      "earthy dark",
		CoreMoves: []string{"textured plaster", "reclaimed timber", "stone grounding"},
		Palette: PaletteRoles{
			Base:       []string{"#E0D2C0", "#D4C5B3", "#EADDCB", "#C8B9A7", "#DACBB9"},
			Stone:      []string{"#B8A18B", "#AC947E", "#C5B09A", "#9E866F", "#B29B84"},
			Timber:     []string{"#7A4B2B", "#6C4024", "#875637", "#5D351E", "#90603E"},
			Shadow:     []string{"#44372F", "#392E27", "#50433B", "#2E241F", "#493C34"},
			Vegetation: []string{"#455944", "#3B4D3A", "#516652", "#2F3F31", "#4A5E4A"},
			Metal:      []string{"#6F5947", "#5F4C3C", "#7D6652", "#534233", "#665141"},
		},
		Walls:  []Finish{wallClayPlaster, wallLimewash, wallStoneVeneer, wallTimberSlat},
		Floors: []Finish{floorTerracotta, floorBasaltPavers, floorHonedLimestone, floorOakBoard},
		Timber: []Finish{timberReclaimed, timberCharred, timberTeak, timberOak},
		Metals: []Finish{metalBlackenedSteel, metalBronzeMesh, textileLinen, screenTimber},
	},
	{
		Name:      "Boho Eclectic",
		Tone:      "warm neutral",
		CoreMoves: []string{"woven texture", "soft plaster", "layered textiles"},
		Palette: PaletteRoles{
			Base:       []string{"#F2DDC7", "#EAD2BB", "#F9E7D3", "#E1C9B1", "#F0D8C1"},
			Stone:      []string{"#C8A88C", "#BD9E82", "#D6B79B", "#B08F74", "#C2A186"},
			Timber:     []string{"#B97846", "#AA6E41", "#C88654", "#9C6237", "#B17447"},
			Shadow:     []string{"#6B5244", "#5E483B", "#775C4D", "#4F3C31", "#634B3E"},
			Vegetation: []string{"#6B7A5E", "#5E6D52", "#788765", "#4F5E45", "#667559"},
			Metal:      []string{"#B07A56", "#A06C4A", "#C28B63", "#93603F", "#B5825D"},
		},
		Walls:  []Finish{wallLimewash, wallClayPlaster, wallWhitePlaster, wallWovenScreen},
		Floors: []Finish{floorTerracotta, floorTeakDeck, floorTerrazzo, floorHonedLimestone},
		Timber: []Finish{timberRattan, timberBamboo, timberTeak, timberReclaimed},
		Metals: []Finish{metalBrushedBrass, textileCotton, textileLinen, screenTimber},
	},
	{
		Name:      "Industrial Modern",
		Tone:      "crisp clean",
		CoreMoves: []string{"raw concrete", "black steel", "durable floors"},
		Palette: PaletteRoles{
			Base:       []string{"#DEE1E4", "#D2D6DA", "#E8EBEE", "#C6CBD0", "#D9DDE1"},
			Stone:      []string{"#B3B8BC", "#A7ACB1", "#C0C5C9", "#9A9FA4", "#B1B6BA"},
			Timber:     []string{"#8E775F", "#7E6954", "#9C846B", "#6F5B47", "#887159"},
			Shadow:     []string{"#2F3235", "#25282B", "#3A3E41", "#1C1F22", "#313437"},
			Vegetation: []string{"#55605A", "#4A5450", "#606B66", "#3F4945", "#515C57"},
			Metal:      []string{"#3A3F44", "#2E3338", "#454A50", "#23282D", "#363B40"},
		},
		Walls:  []Finish{wallRawConcrete, wallMicrocement, wallStoneVeneer, wallWhitePlaster},
		Floors: []Finish{floorPolishedConcrete, floorBasaltPavers, floorTerrazzo, floorHonedLimestone},
		Timber: []Finish{timberCharred, timberWalnut, timberOak, timberReclaimed},
		Metals: []Finish{metalBlackenedSteel, metalBrushedSteel, screenPerforated, metalBronzeMesh},
	},
	{
		Name:      "Mid-century Modern",
		Tone:      "warm neutral",
		CoreMoves: []string{"terrazzo floors", "walnut joinery", "graphic brass"},
		Palette: PaletteRoles{
			Base:       []string{"#EFE0CD", "#E6D6C2", "#F5E6D4", "#DCCCB8", "#EADAC7"},
			Stone:      []string{"#C7B19A", "#BBA48E", "#D2BCA5", "#AF9883", "#C1AB95"},
			Timber:     []string{"#8C5836", "#7F4D30", "#99633E", "#6F4126", "#A16B45"},
			Shadow:     []string{"#5B4A41", "#4F3F37", "#67554B", "#42342D", "#5F4D44"},
			Vegetation: []string{"#5F7056", "#53654B", "#6A7A60", "#46563F", "#596A51"},
			Metal:      []string{"#B5885C", "#A8784E", "#C19569", "#996A42", "#B07F56"},
		},
		Walls:  []Finish{wallLimewash, wallMicrocement, wallTimberSlat, wallWhitePlaster},
		Floors: []Finish{floorTerrazzo, floorWalnutBoard, floorHonedLimestone, floorTeakDeck},
		Timber: []Finish{timberWalnut, timberTeak, timberOak, timberRattan},
		Metals: []Finish{metalBrushedBrass, metalBlackenedSteel, textileLinen, screenTimber},
	},
	{
		Name:      "Contemporary Luxury",
		Tone:      "crisp clean",
		CoreMoves: []string{"refined stone", "quiet timber", "brushed brass"},
		Palette: PaletteRoles{
			Base:       []string{"#F2E7D8", "#E9DED0", "#F7EDE0", "#DED3C5", "#EFE4D6"},
			Stone:      []string{"#C9BBAA", "#BFB2A1", "#D6C8B7", "#B2A694", "#C3B7A6"},
			Timber:     []string{"#A97A50", "#9C7048", "#B58A5E", "#8F6440", "#A2734A"},
			Shadow:     []string{"#4F4A44", "#43403B", "#5B564F", "#383530", "#49443F"},
			Vegetation: []string{"#5B6A5C", "#4F5E51", "#667566", "#3F4C41", "#576657"},
			Metal:      []string{"#C7A57C", "#B9956C", "#D3B088", "#AA8560", "#C09B73"},
		},
		Walls:  []Finish{wallStoneVeneer, wallLimewash, wallMicrocement, wallWhitePlaster},
		Floors: []Finish{floorHonedLimestone, floorTerrazzo, floorPolishedConcrete, floorBasaltPavers},
		Timber: []Finish{timberWalnut, timberOak, timberTeak, timberAsh},
		Metals: []Finish{metalBrushedBrass, metalBronzeMesh, metalBrushedSteel, textileLinen},
	},
}

var genreByName = func() map[string]*Genre {
	m := make(map[string]*Genre, len(Genres))
	for i := range Genres {
		m[Genres[i].Name] = &Genres[i]
	}
	return m
}()

// GenreNames returns the catalog genre names in presentation order.
func GenreNames() []string {
	names := make([]string, len(Genres))
	for i, g := range Genres {
		names[i] = g.Name
	}
	return names
}

// sectionFinishes returns a genre's recommendation list for a section key.
func (g *Genre) sectionFinishes(key string) []Finish {
	switch key {
	case "wallsCeilings":
		return g.Walls
	case "floorsStone":
		return g.Floors
	case "timberJoinery":
		return g.Timber
	case "metalsTextilesScreens":
		return g.Metals
	}
	return nil
}
