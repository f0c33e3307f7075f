// Package reading orchestrates reading generation: the composer builds
// the interpretation body, the decision module labels the three-card
// spread, and the service ties draws, profiles and persistence together.
package reading

import (
	"fmt"
	"strings"

	"github.com/lunarium/arcana/internal/contracts"
)

// Composer assembles the textual reading body from card data, the
// optional natal profile and the optional mood tag.
//
// Composition uses the ambient random source and is NOT seeded against
// the user or day: it runs exactly once, at creation time, and the
// persisted body is what later reads return.
type Composer struct {
	rng contracts.RNG
}

// NewComposer returns a composer over the given random source.
func NewComposer(rng contracts.RNG) *Composer {
	return &Composer{rng: rng}
}

// pick returns a random element of a non-empty string slice.
func (c *Composer) pick(options []string) string {
	return options[c.rng.Intn(len(options))]
}

// ComposeDaily builds the full daily interpretation in fixed section
// order: description, base meaning, general forecast, expectations,
// do/avoid advice, life areas, lucky block, astrology bonus, mood.
func (c *Composer) ComposeDaily(card contracts.Card, drawn contracts.DrawnCard, profile *contracts.NatalProfile, mood contracts.Mood) contracts.Interpretation {
	var b strings.Builder

	// 1. Card description.
	b.WriteString(c.describe(card, drawn))
	b.WriteString("\n\n")

	// 2. Base meaning from the card's daily pool.
	meanings := card.Interpretations.Daily.Upright
	keywords := card.Keywords.Upright
	if drawn.Reversed {
		meanings = card.Interpretations.Daily.Reversed
		keywords = card.Keywords.Reversed
	}
	base := c.pick(meanings)
	b.WriteString(base)
	b.WriteString("\n\n")

	// 3. General forecast, arcana/suit-keyed.
	b.WriteString(c.forecast(card))
	b.WriteString("\n\n")

	// 4. What to expect: 2-3 bullets.
	b.WriteString("What to expect:\n")
	for _, line := range c.expectations(drawn.Reversed) {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// 5. Do / avoid advice.
	doList, avoidList := adviceDoUpright, adviceAvoidUpright
	if drawn.Reversed {
		doList, avoidList = adviceDoReversed, adviceAvoidReversed
	}
	b.WriteString("Do: ")
	b.WriteString(c.pick(doList))
	b.WriteString("\nAvoid: ")
	b.WriteString(c.pick(avoidList))
	b.WriteString("\n\n")

	// 6. Life areas.
	for _, area := range lifeAreas {
		line := area.Upright
		if drawn.Reversed {
			line = area.Reversed
		}
		fmt.Fprintf(&b, "%s: %s\n", area.Area, line)
	}
	b.WriteString("\n")

	// 7. Lucky block.
	b.WriteString(c.luckyBlock(card))

	// 8. Astrology bonus, only with a profile.
	if profile != nil && profile.Calculated {
		b.WriteString("\n\n")
		b.WriteString(c.astrologyBonus(profile))
	}

	// 9. Mood influence, only with a mood tag.
	if mood != "" {
		b.WriteString("\n\n")
		b.WriteString(c.moodParagraph(mood, drawn.Reversed, profile))
	}

	return contracts.Interpretation{
		Summary:  base,
		Text:     b.String(),
		Keywords: keywords,
	}
}

// ComposeDecision builds the interpretation for a three-card spread:
// one orientation-specific line per position plus the recommendation.
func (c *Composer) ComposeDecision(cards []contracts.Card, drawn []contracts.DrawnCard, question string) (contracts.Interpretation, string) {
	var b strings.Builder

	if question != "" {
		fmt.Fprintf(&b, "Your question: %s\n\n", question)
	}

	byID := make(map[string]contracts.Card, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	keywords := make([]string, 0, len(drawn))
	for i, dc := range drawn {
		card := byID[dc.CardID]
		meanings := card.Interpretations.Decision.Upright
		kw := card.Keywords.Upright
		if dc.Reversed {
			meanings = card.Interpretations.Decision.Reversed
			kw = card.Keywords.Reversed
		}
		fmt.Fprintf(&b, "%s — %s%s: %s\n", DecisionPositions[i], dc.Name, orientationSuffix(dc.Reversed), c.pick(meanings))
		if len(kw) > 0 {
			keywords = append(keywords, kw[0])
		}
	}

	recommendation := Recommend(drawn)
	b.WriteString("\nRecommendation: ")
	b.WriteString(recommendation)

	return contracts.Interpretation{
		Summary:  recommendation,
		Text:     b.String(),
		Keywords: keywords,
	}, recommendation
}

func (c *Composer) describe(card contracts.Card, drawn contracts.DrawnCard) string {
	arcana := "major arcana"
	if card.Arcana == contracts.ArcanaMinor {
		arcana = fmt.Sprintf("minor arcana, suit of %s", card.Suit)
	}
	return fmt.Sprintf("Your card is %s (%s)%s.", card.Name, arcana, orientationSuffix(drawn.Reversed))
}

func orientationSuffix(reversed bool) string {
	if reversed {
		return ", reversed"
	}
	return ", upright"
}

func (c *Composer) forecast(card contracts.Card) string {
	if card.Arcana == contracts.ArcanaMajor {
		return forecastMajor
	}
	if text, ok := forecastBySuit[card.Suit]; ok {
		return text
	}
	return forecastMajor
}

// expectations returns 2 or 3 distinct bullets.
func (c *Composer) expectations(reversed bool) []string {
	pool := expectUpright
	if reversed {
		pool = expectReversed
	}

	count := 2 + c.rng.Intn(2)
	indices := c.rng.Intn(len(pool))
	picked := make([]string, 0, count)
	for i := 0; i < count; i++ {
		picked = append(picked, pool[(indices+i)%len(pool)])
	}
	return picked
}

func (c *Composer) luckyBlock(card contracts.Card) string {
	number := card.Number
	if number <= 0 {
		number = 1 + c.rng.Intn(maxLuckyNumber)
	}
	return fmt.Sprintf("Lucky time: %s. Lucky color: %s. Lucky number: %d.",
		c.pick(luckyTimes), c.pick(luckyColors), number)
}

func (c *Composer) astrologyBonus(p *contracts.NatalProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "For your chart: with the sun in %s", p.SunSign)
	if p.MoonSign != "" {
		fmt.Fprintf(&b, " and the moon in %s", p.MoonSign)
	}
	fmt.Fprintf(&b, ", today's card plays to your %s side", p.Balance.Dominant)
	if p.Balance.Lacking != p.Balance.Dominant {
		fmt.Fprintf(&b, "; borrow a little %s where you can", p.Balance.Lacking)
	}
	b.WriteString(".")
	return b.String()
}

func (c *Composer) moodParagraph(mood contracts.Mood, reversed bool, profile *contracts.NatalProfile) string {
	text, ok := moodTemplates[moodKey{Mood: mood, Reversed: reversed}]
	if !ok {
		// Unrecognized tags never fail the request.
		text = moodNeutral
	}
	if profile != nil && profile.Calculated {
		if clause, ok := moodElementClauses[profile.Balance.Dominant]; ok {
			text += clause
		}
	}
	return text
}
