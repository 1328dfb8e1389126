package domain

// Closed vocabularies for every enumerable questionnaire field. Loaded once,
// never mutated; the validator checks membership against these exact literals.

var PrimaryUses = []PrimaryUse{
	UsePrimaryHome,
	UseOccasionalRent,
	UseHolidayHome,
	UseInvestment,
	UseLongStay,
}

var WhoStaysOptions = []WhoStays{
	StaysCouple,
	StaysSmallFamily,
	StaysLargeFamily,
	StaysGuests,
	StaysMultiGen,
}

var StaffingOptions = []Staffing{
	StaffNone,
	StaffDay,
	StaffFull,
	StaffLiveIn,
}

var BohOptions = []BohSeparation{
	BohMinimal,
	BohModerate,
	BohFull,
}

var StairsOptions = []Stairs{
	StairsMinimal,
	StairsSome,
	StairsSplit,
}

var PrivacyOptions = []Privacy{
	PrivacyOpen,
	PrivacyScreened,
	PrivacySecluded,
}

var IndoorOutdoorOptions = []IndoorOutdoor{
	OutdoorFirst,
	Balanced,
	IndoorFirst,
}

var StyleOptions = []Style{
	StyleTropicalModern,
	StyleContemporaryThai,
	StyleResortMinimal,
	StyleRusticMinimal,
	StyleMidCentury,
	StyleEcoModern,
}

var MaterialMoodOptions = []MaterialMood{
	MoodLightNatural,
	MoodDark,
	MoodWarmEarthy,
	MoodCrispMinimal,
}

var PoolOptions = []Pool{
	PoolPlunge,
	PoolStandard,
	PoolLarge,
	PoolNone,
}

var ParkingOptions = []Parking{
	ParkingSmall,
	ParkingMedium,
	ParkingLarge,
}

var FlexSpaceOptions = []FlexSpace{
	FlexOffice,
	FlexMedia,
	FlexGym,
	FlexKidsPlay,
	FlexGuestFlex,
	FlexStudio,
}

// ValueOptions is the fixed catalog of selectable personal values.
var ValueOptions = []string{
	"Work-life balance and personal fulfilment",
	"Music and dancing",
	"Nature exploration and adventures",
	"Lifelong learning and personal growth",
	"Nutritional eating & healthy living",
	"Mind-body practices and nature-based spirituality",
	"Festivals, events and cultural celebrations",
	"Child and youth development",
	"Social gatherings and community events",
	"Diverse and global culinary experiences",
	"Plant-based medicine",
	"Support creative arts and humanities",
	"Eco-village and sustainable living",
	"Regeneration of natural resources",
	"Psychedelic and alternative mental health therapy",
	"Personal boundaries and individual freedoms",
	"Integrative and functional medicine",
	"Entrepreneurship and innovation",
	"Hard work and dedication",
	"Alternative energy and sustainable transportation",
	"Intergenerational care and connections",
	"Traditional religious practices",
	"Gender diversity and LGBTQ+",
}
