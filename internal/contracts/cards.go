package contracts

// Arcana distinguishes the 22 major cards from the 56 minor ones.
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// Suit is one of the four minor-arcana suits. Major arcana cards carry
// an empty suit.
type Suit string

const (
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// Suits lists the four suits in fixed order.
var Suits = []Suit{SuitWands, SuitCups, SuitSwords, SuitPentacles}

// SuitForElement maps each element to the suit it favors. Used by the
// weighting rules.
var SuitForElement = map[Element]Suit{
	ElementFire:  SuitWands,
	ElementEarth: SuitPentacles,
	ElementAir:   SuitSwords,
	ElementWater: SuitCups,
}

// CardKeywords holds orientation-specific keyword lists.
type CardKeywords struct {
	Upright  []string `json:"upright"`
	Reversed []string `json:"reversed"`
}

// MeaningSet holds orientation-specific meaning strings for one reading type.
type MeaningSet struct {
	Upright  []string `json:"upright"`
	Reversed []string `json:"reversed"`
}

// CardInterpretations groups meanings by reading type.
type CardInterpretations struct {
	Daily    MeaningSet `json:"daily"`
	Decision MeaningSet `json:"decision"`
}

// Card is a single catalog entry. The catalog is fixed at 78 cards:
// 22 major arcana plus 4 suits of 14.
type Card struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Arcana          Arcana              `json:"arcana"`
	Suit            Suit                `json:"suit,omitempty"`
	Number          int                 `json:"number,omitempty"`
	Keywords        CardKeywords        `json:"keywords"`
	Interpretations CardInterpretations `json:"interpretations"`
}

// DrawnCard is the ephemeral result of drawing one card in a spread.
// Reversed is an independent coin flip decided after the card identity
// is fixed; it is never influenced by weighting.
type DrawnCard struct {
	CardID   string `json:"card_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Reversed bool   `json:"reversed"`
	Arcana   Arcana `json:"arcana"`
	Suit     Suit   `json:"suit,omitempty"`
}
