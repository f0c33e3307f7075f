// Package astro implements the natal chart approximation: sun sign from
// the zodiac table, moon/rising signs and ten body positions from
// deterministic cyclical formulas, houses and pairwise aspects.
//
// Nothing in this package consults a real ephemeris. The math is a
// deliberate low-precision approximation whose only hard requirement is
// reproducibility: identical inputs always produce identical outputs.
package astro

import (
	"fmt"
	"time"

	"github.com/lunarium/arcana/internal/contracts"
)

// Compatibility groups related signs by affinity.
type Compatibility struct {
	Best        []string
	Good        []string
	Challenging []string
}

// Sign is one immutable zodiac table entry. Date ranges are inclusive
// and non-overlapping; Capricorn wraps across year-end.
type Sign struct {
	Name          string
	StartMonth    time.Month
	StartDay      int
	EndMonth      time.Month
	EndDay        int
	Element       contracts.Element
	RulingBody    contracts.Body
	Compatibility Compatibility

	// Correspondences lists the major arcana cards tied to this sign.
	// Cards on this list get the ×2.0 weighting multiplier.
	Correspondences []string
}

// Table holds the 12 signs in ecliptic order starting at Aries. The
// order matters: body degrees map to signs via floor(degree/30) into
// this slice.
var Table = []Sign{
	{
		Name: "Aries", StartMonth: time.March, StartDay: 21, EndMonth: time.April, EndDay: 19,
		Element: contracts.ElementFire, RulingBody: contracts.BodyMars,
		Compatibility: Compatibility{
			Best:        []string{"Leo", "Sagittarius"},
			Good:        []string{"Gemini", "Aquarius"},
			Challenging: []string{"Cancer", "Capricorn"},
		},
		Correspondences: []string{"The Emperor", "The Tower"},
	},
	{
		Name: "Taurus", StartMonth: time.April, StartDay: 20, EndMonth: time.May, EndDay: 20,
		Element: contracts.ElementEarth, RulingBody: contracts.BodyVenus,
		Compatibility: Compatibility{
			Best:        []string{"Virgo", "Capricorn"},
			Good:        []string{"Cancer", "Pisces"},
			Challenging: []string{"Leo", "Aquarius"},
		},
		Correspondences: []string{"The Hierophant", "The Empress"},
	},
	{
		Name: "Gemini", StartMonth: time.May, StartDay: 21, EndMonth: time.June, EndDay: 20,
		Element: contracts.ElementAir, RulingBody: contracts.BodyMercury,
		Compatibility: Compatibility{
			Best:        []string{"Libra", "Aquarius"},
			Good:        []string{"Aries", "Leo"},
			Challenging: []string{"Virgo", "Pisces"},
		},
		Correspondences: []string{"The Lovers", "The Magician"},
	},
	{
		Name: "Cancer", StartMonth: time.June, StartDay: 21, EndMonth: time.July, EndDay: 22,
		Element: contracts.ElementWater, RulingBody: contracts.BodyMoon,
		Compatibility: Compatibility{
			Best:        []string{"Scorpio", "Pisces"},
			Good:        []string{"Taurus", "Virgo"},
			Challenging: []string{"Aries", "Libra"},
		},
		Correspondences: []string{"The Chariot", "The High Priestess"},
	},
	{
		Name: "Leo", StartMonth: time.July, StartDay: 23, EndMonth: time.August, EndDay: 22,
		Element: contracts.ElementFire, RulingBody: contracts.BodySun,
		Compatibility: Compatibility{
			Best:        []string{"Aries", "Sagittarius"},
			Good:        []string{"Gemini", "Libra"},
			Challenging: []string{"Taurus", "Scorpio"},
		},
		Correspondences: []string{"Strength", "The Sun"},
	},
	{
		Name: "Virgo", StartMonth: time.August, StartDay: 23, EndMonth: time.September, EndDay: 22,
		Element: contracts.ElementEarth, RulingBody: contracts.BodyMercury,
		Compatibility: Compatibility{
			Best:        []string{"Taurus", "Capricorn"},
			Good:        []string{"Cancer", "Scorpio"},
			Challenging: []string{"Gemini", "Sagittarius"},
		},
		Correspondences: []string{"The Hermit", "The Magician"},
	},
	{
		Name: "Libra", StartMonth: time.September, StartDay: 23, EndMonth: time.October, EndDay: 22,
		Element: contracts.ElementAir, RulingBody: contracts.BodyVenus,
		Compatibility: Compatibility{
			Best:        []string{"Gemini", "Aquarius"},
			Good:        []string{"Leo", "Sagittarius"},
			Challenging: []string{"Cancer", "Capricorn"},
		},
		Correspondences: []string{"Justice", "The Empress"},
	},
	{
		Name: "Scorpio", StartMonth: time.October, StartDay: 23, EndMonth: time.November, EndDay: 21,
		Element: contracts.ElementWater, RulingBody: contracts.BodyPluto,
		Compatibility: Compatibility{
			Best:        []string{"Cancer", "Pisces"},
			Good:        []string{"Virgo", "Capricorn"},
			Challenging: []string{"Leo", "Aquarius"},
		},
		Correspondences: []string{"Death", "Judgement"},
	},
	{
		Name: "Sagittarius", StartMonth: time.November, StartDay: 22, EndMonth: time.December, EndDay: 21,
		Element: contracts.ElementFire, RulingBody: contracts.BodyJupiter,
		Compatibility: Compatibility{
			Best:        []string{"Aries", "Leo"},
			Good:        []string{"Libra", "Aquarius"},
			Challenging: []string{"Virgo", "Pisces"},
		},
		Correspondences: []string{"Temperance", "Wheel of Fortune"},
	},
	{
		// The only wrapping range: Dec 22 through Jan 19.
		Name: "Capricorn", StartMonth: time.December, StartDay: 22, EndMonth: time.January, EndDay: 19,
		Element: contracts.ElementEarth, RulingBody: contracts.BodySaturn,
		Compatibility: Compatibility{
			Best:        []string{"Taurus", "Virgo"},
			Good:        []string{"Scorpio", "Pisces"},
			Challenging: []string{"Aries", "Libra"},
		},
		Correspondences: []string{"The Devil", "The World"},
	},
	{
		Name: "Aquarius", StartMonth: time.January, StartDay: 20, EndMonth: time.February, EndDay: 18,
		Element: contracts.ElementAir, RulingBody: contracts.BodyUranus,
		Compatibility: Compatibility{
			Best:        []string{"Gemini", "Libra"},
			Good:        []string{"Aries", "Sagittarius"},
			Challenging: []string{"Taurus", "Scorpio"},
		},
		Correspondences: []string{"The Star", "The Fool"},
	},
	{
		Name: "Pisces", StartMonth: time.February, StartDay: 19, EndMonth: time.March, EndDay: 20,
		Element: contracts.ElementWater, RulingBody: contracts.BodyNeptune,
		Compatibility: Compatibility{
			Best:        []string{"Cancer", "Scorpio"},
			Good:        []string{"Taurus", "Capricorn"},
			Challenging: []string{"Gemini", "Sagittarius"},
		},
		Correspondences: []string{"The Moon", "The Hanged Man"},
	},
}

// signOrder is the fixed ecliptic ordering used to map degrees and
// cyclical indexes to sign names.
var signOrder = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignAt returns the sign at the given ecliptic index (mod 12).
func SignAt(index int) string {
	return signOrder[((index%12)+12)%12]
}

// SignIndex returns the ecliptic index of a sign name, or -1.
func SignIndex(name string) int {
	for i, s := range signOrder {
		if s == name {
			return i
		}
	}
	return -1
}

// SignByName returns the table entry for a sign name.
func SignByName(name string) (Sign, bool) {
	for _, s := range Table {
		if s.Name == name {
			return s, true
		}
	}
	return Sign{}, false
}

// SunSign returns the zodiac sign covering the given calendar date.
//
// Exactly one sign matches every valid (month, day) pair. A miss means
// the table itself is corrupt, which is a programming error: the
// function panics rather than defaulting.
func SunSign(date time.Time) Sign {
	month, day := date.Month(), date.Day()
	for _, s := range Table {
		if matchesRange(s, month, day) {
			return s
		}
	}
	panic(fmt.Sprintf("astro: no zodiac sign covers %s %d, table is corrupt", month, day))
}

// matchesRange checks (month, day) against an inclusive sign range,
// handling the single wrapping range with an OR of its two sub-ranges.
func matchesRange(s Sign, month time.Month, day int) bool {
	if s.StartMonth > s.EndMonth {
		// Wraps year-end: [start..Dec 31] or [Jan 1..end].
		return (month == s.StartMonth && day >= s.StartDay) ||
			(month == s.EndMonth && day <= s.EndDay)
	}
	switch {
	case month == s.StartMonth:
		return day >= s.StartDay
	case month == s.EndMonth:
		return day <= s.EndDay
	default:
		return month > s.StartMonth && month < s.EndMonth
	}
}
