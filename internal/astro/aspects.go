package astro

import (
	"fmt"
	"math"

	"github.com/lunarium/arcana/internal/contracts"
)

// aspectDef is one canonical aspect with its exact angle and tolerance.
type aspectDef struct {
	Type   contracts.AspectType
	Angle  float64
	Orb    float64
	Nature contracts.AspectNature
}

// aspectDefs lists the five canonical aspects. Orbs follow common
// practice: tighter for sextiles, wider for conjunctions/oppositions.
var aspectDefs = []aspectDef{
	{Type: contracts.AspectConjunction, Angle: 0, Orb: 8, Nature: contracts.NatureNeutral},
	{Type: contracts.AspectSextile, Angle: 60, Orb: 6, Nature: contracts.NatureHarmonious},
	{Type: contracts.AspectSquare, Angle: 90, Orb: 7, Nature: contracts.NatureChallenging},
	{Type: contracts.AspectTrine, Angle: 120, Orb: 7, Nature: contracts.NatureHarmonious},
	{Type: contracts.AspectOpposition, Angle: 180, Orb: 8, Nature: contracts.NatureChallenging},
}

// natureFor returns the nature of an aspect type.
func natureFor(t contracts.AspectType) contracts.AspectNature {
	for _, d := range aspectDefs {
		if d.Type == t {
			return d.Nature
		}
	}
	return contracts.NatureNeutral
}

// Aspects computes every matching aspect between every unordered pair of
// bodies. Pairs are walked in the fixed Bodies order so output is
// reproducible. A pair may legitimately match more than one type when
// orbs overlap at a boundary; no de-duplication happens across types.
func Aspects(positions map[contracts.Body]contracts.BodyPosition) []contracts.Aspect {
	var aspects []contracts.Aspect

	for i := 0; i < len(contracts.Bodies); i++ {
		for j := i + 1; j < len(contracts.Bodies); j++ {
			a, okA := positions[contracts.Bodies[i]]
			b, okB := positions[contracts.Bodies[j]]
			if !okA || !okB {
				continue
			}

			d := math.Abs(a.Degree - b.Degree)
			if d > 180 {
				d = 360 - d
			}

			for _, def := range aspectDefs {
				if math.Abs(d-def.Angle) <= def.Orb {
					aspects = append(aspects, contracts.Aspect{
						BodyA:     a.Body,
						BodyB:     b.Body,
						Type:      def.Type,
						AngleDiff: d,
						Text:      aspectText(a.Body, b.Body, def),
					})
				}
			}
		}
	}

	return aspects
}

// pairKey builds the curated-text lookup key. Bodies always appear in
// the fixed Bodies order, so (sun, moon) and (moon, sun) share a key.
func pairKey(a, b contracts.Body, t contracts.AspectType) string {
	return fmt.Sprintf("%s|%s|%s", a, b, t)
}

// aspectText returns the curated interpretation for a pair+type, or the
// generic nature-keyed fallback.
func aspectText(a, b contracts.Body, def aspectDef) string {
	if text, ok := curatedAspects[pairKey(a, b, def.Type)]; ok {
		return text
	}
	return fmt.Sprintf(natureFallbacks[def.Nature], a, b)
}

// natureFallbacks covers every pair without a curated entry.
var natureFallbacks = map[contracts.AspectNature]string{
	contracts.NatureHarmonious:  "Your %s and %s work together easily, lending quiet support to whatever this pairing touches.",
	contracts.NatureChallenging: "Your %s and %s pull in different directions; friction here is a prompt for conscious effort.",
	contracts.NatureNeutral:     "Your %s and %s share the same space, blending their themes into a single strong signal.",
}

// curatedAspects holds the hand-written pair+type interpretations.
var curatedAspects = map[string]string{
	pairKey(contracts.BodySun, contracts.BodyMoon, contracts.AspectConjunction):     "Your sense of self and your emotional instincts speak with one voice; what you want and what you feel rarely conflict.",
	pairKey(contracts.BodySun, contracts.BodyMoon, contracts.AspectSextile):         "Identity and emotion cooperate smoothly, making self-expression feel natural and unforced.",
	pairKey(contracts.BodySun, contracts.BodyMoon, contracts.AspectSquare):          "Your will and your feelings are frequently at odds; decisions can feel like negotiations with yourself.",
	pairKey(contracts.BodySun, contracts.BodyMoon, contracts.AspectTrine):           "Inner life and outer purpose flow in the same current, a quiet reservoir of self-assurance.",
	pairKey(contracts.BodySun, contracts.BodyMoon, contracts.AspectOpposition):      "Head and heart sit at opposite poles; you grow by letting each have its full say before acting.",
	pairKey(contracts.BodySun, contracts.BodyMercury, contracts.AspectConjunction):  "Thought and identity are fused; you think out loud and your words carry your whole self.",
	pairKey(contracts.BodySun, contracts.BodyVenus, contracts.AspectConjunction):    "Charm sits close to the core of who you are; affection and aesthetics color your presence.",
	pairKey(contracts.BodySun, contracts.BodyMars, contracts.AspectConjunction):     "Will and drive are welded together; once you commit, momentum is rarely a problem.",
	pairKey(contracts.BodySun, contracts.BodyMars, contracts.AspectSquare):          "Ambition runs hotter than patience; impulsive starts can undercut long campaigns.",
	pairKey(contracts.BodySun, contracts.BodyMars, contracts.AspectTrine):           "Energy arrives when purpose calls for it; effort and intention stay in step.",
	pairKey(contracts.BodySun, contracts.BodyJupiter, contracts.AspectConjunction):  "Confidence comes easily and luck seems to follow boldness; guard only against overreach.",
	pairKey(contracts.BodySun, contracts.BodyJupiter, contracts.AspectTrine):        "Optimism is structural for you; opportunities tend to widen wherever you commit.",
	pairKey(contracts.BodySun, contracts.BodySaturn, contracts.AspectConjunction):   "Discipline shadows your identity; achievements feel earned, never given.",
	pairKey(contracts.BodySun, contracts.BodySaturn, contracts.AspectSquare):        "Self-doubt and duty press against your shine; mastery here is slow but durable.",
	pairKey(contracts.BodySun, contracts.BodySaturn, contracts.AspectOpposition):    "Authority figures and obligations test your sense of self; boundaries are the lesson.",
	pairKey(contracts.BodySun, contracts.BodyUranus, contracts.AspectConjunction):   "Your identity carries a live wire; routine chafes and reinvention is a recurring theme.",
	pairKey(contracts.BodySun, contracts.BodyNeptune, contracts.AspectConjunction):  "The boundary between self and dream is thin; imagination is both gift and fog.",
	pairKey(contracts.BodySun, contracts.BodyPluto, contracts.AspectConjunction):    "Intensity is your baseline; you periodically dismantle and rebuild who you are.",
	pairKey(contracts.BodyMoon, contracts.BodyMercury, contracts.AspectConjunction): "Feeling and language sit together; you can usually say exactly what is moving in you.",
	pairKey(contracts.BodyMoon, contracts.BodyMercury, contracts.AspectSquare):      "Emotion and analysis interrupt each other; writing things down restores the signal.",
	pairKey(contracts.BodyMoon, contracts.BodyVenus, contracts.AspectConjunction):   "Warmth comes naturally; comfort, beauty and care are how you metabolize the world.",
	pairKey(contracts.BodyMoon, contracts.BodyVenus, contracts.AspectTrine):         "Affection flows without effort; people relax in your company.",
	pairKey(contracts.BodyMoon, contracts.BodyMars, contracts.AspectSquare):         "Feelings arrive hot; the gap between irritation and reaction needs deliberate widening.",
	pairKey(contracts.BodyMoon, contracts.BodyMars, contracts.AspectOpposition):     "Need and action face off; naming what you actually want defuses most of the conflict.",
	pairKey(contracts.BodyMoon, contracts.BodySaturn, contracts.AspectConjunction):  "Emotions are kept under load-bearing walls; letting others in is slow, deliberate work.",
	pairKey(contracts.BodyMoon, contracts.BodySaturn, contracts.AspectSquare):       "A strict inner critic sits close to your feelings; kindness toward yourself is a practice, not a mood.",
	pairKey(contracts.BodyMoon, contracts.BodyJupiter, contracts.AspectTrine):       "Your emotional weather trends generous; resilience is one of your quiet assets.",
	pairKey(contracts.BodyMoon, contracts.BodyNeptune, contracts.AspectConjunction): "You absorb the moods around you; solitude is maintenance, not avoidance.",
	pairKey(contracts.BodyMoon, contracts.BodyPluto, contracts.AspectSquare):        "Feelings run subterranean and intense; what surfaces has usually been building for a while.",
	pairKey(contracts.BodyMercury, contracts.BodyVenus, contracts.AspectConjunction): "Speech carries grace; persuasion and diplomacy are native skills.",
	pairKey(contracts.BodyMercury, contracts.BodyMars, contracts.AspectConjunction):  "Words are tools and occasionally weapons; your mind moves fast and argues to win.",
	pairKey(contracts.BodyMercury, contracts.BodyMars, contracts.AspectSquare):       "Haste edits your sentences; the second draft of anything important is the one to send.",
	pairKey(contracts.BodyMercury, contracts.BodyJupiter, contracts.AspectTrine):     "Big-picture thinking comes easily; you naturally connect details to meaning.",
	pairKey(contracts.BodyMercury, contracts.BodySaturn, contracts.AspectConjunction): "Your thinking is methodical and your word is a contract; you say less and mean more.",
	pairKey(contracts.BodyMercury, contracts.BodyUranus, contracts.AspectConjunction): "Insight strikes sideways; your best ideas arrive whole and unannounced.",
	pairKey(contracts.BodyVenus, contracts.BodyMars, contracts.AspectConjunction):    "Desire and affection are fused; you pursue what you love with open intent.",
	pairKey(contracts.BodyVenus, contracts.BodyMars, contracts.AspectSquare):         "Wanting and relating tug at each other; passion here needs honest terms.",
	pairKey(contracts.BodyVenus, contracts.BodySaturn, contracts.AspectSquare):       "Love is tested against duty and time; the bonds that survive are the ones you choose daily.",
	pairKey(contracts.BodyVenus, contracts.BodyJupiter, contracts.AspectTrine):       "Generosity is easy for you and tends to return multiplied.",
	pairKey(contracts.BodyMars, contracts.BodySaturn, contracts.AspectSquare):        "Drive meets the brake; frustration converts to endurance when the goal is worth it.",
	pairKey(contracts.BodyMars, contracts.BodyJupiter, contracts.AspectTrine):        "Effort scales well for you; bold moves find room to land.",
	pairKey(contracts.BodyMars, contracts.BodyPluto, contracts.AspectConjunction):    "Your will has depth charges; pace yourself so intensity serves rather than scorches.",
	pairKey(contracts.BodyJupiter, contracts.BodySaturn, contracts.AspectSquare):     "Expansion argues with restraint; timing, not appetite, decides your wins.",
}
