package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lunarium/arcana/internal/contracts"
)

// The moon approximation walks one sign every 28 days through a
// repeating 336-day macro-cycle.
const (
	moonCycleDays  = 336
	moonSignDays   = 28
	risingHourSpan = 2
)

// MoonSignIndex returns the approximate moon sign index for a date.
// Pure function of day-of-year; no lunar ephemeris.
func MoonSignIndex(date time.Time) int {
	doy := date.YearDay()
	return ((doy % moonCycleDays) / moonSignDays) % 12
}

// MoonSign returns the approximate moon sign name for a date.
func MoonSign(date time.Time) string {
	return SignAt(MoonSignIndex(date))
}

// RisingSign returns the approximate rising sign for a birth hour.
// Two-hour increments per sign; location and date are ignored.
func RisingSign(hour int) string {
	return SignAt((hour / risingHourSpan) % 12)
}

// ParseBirthTime parses an "HH:MM" birth time.
func ParseBirthTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", contracts.ErrInvalidBirthTime, s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", contracts.ErrInvalidBirthTime, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", contracts.ErrInvalidBirthTime, s)
	}
	return hour, minute, nil
}

// bodyMotion describes one body's deterministic pseudo-ephemeris. The
// sun moves roughly a degree per day; Mercury and Venus oscillate within
// a bounded offset of the sun; outer bodies creep at fractional rates.
type bodyMotion struct {
	body contracts.Body

	// For free-running bodies: degree = epoch + rate*dayOfYear.
	epoch float64
	rate  float64

	// For sun-attached bodies: degree = sunDegree + swing*sin(2π*doy/period).
	attached bool
	swing    float64
	period   float64
}

var bodyMotions = []bodyMotion{
	{body: contracts.BodySun, epoch: 280, rate: 0.9856},
	{body: contracts.BodyMercury, attached: true, swing: 25, period: 88},
	{body: contracts.BodyVenus, attached: true, swing: 46, period: 225},
	{body: contracts.BodyMars, epoch: 355, rate: 0.524},
	{body: contracts.BodyJupiter, epoch: 34, rate: 0.083},
	{body: contracts.BodySaturn, epoch: 50, rate: 0.034},
	{body: contracts.BodyUranus, epoch: 314, rate: 0.012},
	{body: contracts.BodyNeptune, epoch: 304, rate: 0.006},
	{body: contracts.BodyPluto, epoch: 238, rate: 0.004},
}

// BodyPositions returns approximate positions for all ten bodies on the
// given date. Deterministic: identical dates yield identical positions.
// The stable-daily-reading invariant depends on this.
func BodyPositions(date time.Time) map[contracts.Body]contracts.BodyPosition {
	doy := float64(date.YearDay())
	positions := make(map[contracts.Body]contracts.BodyPosition, len(contracts.Bodies))

	sunDeg := normalizeDegree(280 + 0.9856*doy)

	for _, m := range bodyMotions {
		var deg float64
		if m.attached {
			deg = normalizeDegree(sunDeg + m.swing*math.Sin(2*math.Pi*doy/m.period))
		} else {
			deg = normalizeDegree(m.epoch + m.rate*doy)
		}
		positions[m.body] = contracts.BodyPosition{
			Body:   m.body,
			Degree: deg,
			Sign:   SignAt(int(deg / 30)),
		}
	}

	// The moon's degree is pinned to its sign formula so the body
	// position and the standalone moon sign never disagree.
	moonIdx := MoonSignIndex(date)
	withinSign := float64(date.YearDay()%moonSignDays) / moonSignDays * 30
	moonDeg := normalizeDegree(float64(moonIdx)*30 + withinSign)
	positions[contracts.BodyMoon] = contracts.BodyPosition{
		Body:   contracts.BodyMoon,
		Degree: moonDeg,
		Sign:   SignAt(moonIdx),
	}

	return positions
}

func normalizeDegree(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// BuildProfile derives the full natal profile from birth data.
//
// The moon and rising signs require a birth time: without one the
// profile carries neither, and the element balance is tallied from the
// sun and the ten bodies only.
func BuildProfile(birth contracts.BirthData) (*contracts.NatalProfile, error) {
	if birth.BirthDate == "" {
		return nil, contracts.ErrInvalidBirthDate
	}
	date, err := time.Parse("2006-01-02", birth.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", contracts.ErrInvalidBirthDate, birth.BirthDate)
	}

	sun := SunSign(date)
	profile := &contracts.NatalProfile{
		SunSign:    sun.Name,
		Bodies:     BodyPositions(date),
		Calculated: true,
	}

	if birth.BirthTime != "" {
		hour, _, err := ParseBirthTime(birth.BirthTime)
		if err != nil {
			return nil, err
		}
		profile.MoonSign = MoonSign(date)
		profile.RisingSign = RisingSign(hour)
		profile.Houses = HouseWheel(profile.RisingSign)
	}

	profile.Aspects = Aspects(profile.Bodies)
	profile.Balance = Balance(profile)

	return profile, nil
}
