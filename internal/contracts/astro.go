package contracts

// Element is one of the four classical elements. Every zodiac sign and
// every tarot suit maps to exactly one element.
type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

// Elements lists all elements in the pinned tie-break order used by the
// balance analyzer: fire > earth > air > water.
var Elements = []Element{ElementFire, ElementEarth, ElementAir, ElementWater}

// Body is one of the ten symbolic celestial bodies tracked by the chart
// calculator. Positions are approximations, not ephemeris data.
type Body string

const (
	BodySun     Body = "sun"
	BodyMoon    Body = "moon"
	BodyMercury Body = "mercury"
	BodyVenus   Body = "venus"
	BodyMars    Body = "mars"
	BodyJupiter Body = "jupiter"
	BodySaturn  Body = "saturn"
	BodyUranus  Body = "uranus"
	BodyNeptune Body = "neptune"
	BodyPluto   Body = "pluto"
)

// Bodies lists the ten tracked bodies in a fixed iteration order so that
// derived output (aspects, element tallies) is reproducible.
var Bodies = []Body{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
}

// BodyPosition is an approximate position of a body on the ecliptic.
type BodyPosition struct {
	Body   Body    `json:"body"`
	Degree float64 `json:"degree"` // [0, 360)
	Sign   string  `json:"sign"`
}

// AspectType is one of the five canonical angular relationships.
type AspectType string

const (
	AspectConjunction AspectType = "conjunction" // 0°
	AspectSextile     AspectType = "sextile"     // 60°
	AspectSquare      AspectType = "square"      // 90°
	AspectTrine       AspectType = "trine"       // 120°
	AspectOpposition  AspectType = "opposition"  // 180°
)

// AspectNature classifies an aspect for fallback interpretation text.
type AspectNature string

const (
	NatureHarmonious  AspectNature = "harmonious"
	NatureChallenging AspectNature = "challenging"
	NatureNeutral     AspectNature = "neutral"
)

// Aspect is a matched angular relationship between two bodies.
// AngleDiff is the normalized separation and is always in [0, 180].
type Aspect struct {
	BodyA     Body       `json:"body_a"`
	BodyB     Body       `json:"body_b"`
	Type      AspectType `json:"type"`
	AngleDiff float64    `json:"angle_diff"`
	Text      string     `json:"text"`
}

// ElementCount is the weighted tally for a single element.
type ElementCount struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// ElementBalance aggregates the weighted element distribution of a chart.
type ElementBalance struct {
	Counts   map[Element]ElementCount `json:"counts"`
	Dominant Element                  `json:"dominant"`
	Lacking  Element                  `json:"lacking"`
}

// HousePlacement assigns a sign to one of the twelve houses.
type HousePlacement struct {
	House int    `json:"house"` // 1..12
	Sign  string `json:"sign"`
	Theme string `json:"theme"`
}

// NatalProfile is the derived astrological profile attached to a user.
// It is computed once from birth data and immutable afterwards.
//
// MoonSign and RisingSign come from deliberately low-precision cyclical
// formulas, not a real ephemeris. RisingSign and Houses are empty when
// birth time is unknown.
type NatalProfile struct {
	SunSign    string                `json:"sun_sign"`
	MoonSign   string                `json:"moon_sign,omitempty"`
	RisingSign string                `json:"rising_sign,omitempty"`
	Bodies     map[Body]BodyPosition `json:"bodies"`
	Houses     []HousePlacement      `json:"houses,omitempty"`
	Aspects    []Aspect              `json:"aspects"`
	Balance    ElementBalance        `json:"element_balance"`
	Calculated bool                  `json:"calculated"`
}

// BirthData is the caller-supplied input for profile calculation.
// BirthDate is required; everything else is optional enrichment.
type BirthData struct {
	BirthDate string   `json:"birth_date"`           // ISO date, required
	BirthTime string   `json:"birth_time,omitempty"` // "HH:MM"
	BirthCity string   `json:"birth_city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
}
