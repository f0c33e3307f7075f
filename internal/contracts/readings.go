package contracts

import "time"

// ReadingType distinguishes the one-card daily reading from the
// three-card decision reading.
type ReadingType string

const (
	ReadingDaily    ReadingType = "daily"
	ReadingDecision ReadingType = "decision"
)

// Mood is one of the eight recognized mood tags. Unrecognized tags fall
// back to a neutral template instead of failing the request.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodCalm     Mood = "calm"
	MoodAnxious  Mood = "anxious"
	MoodSad      Mood = "sad"
	MoodExcited  Mood = "excited"
	MoodConfused Mood = "confused"
	MoodAngry    Mood = "angry"
	MoodHopeful  Mood = "hopeful"
)

// KnownMoods is the closed set of recognized mood tags.
var KnownMoods = map[Mood]bool{
	MoodHappy:    true,
	MoodCalm:     true,
	MoodAnxious:  true,
	MoodSad:      true,
	MoodExcited:  true,
	MoodConfused: true,
	MoodAngry:    true,
	MoodHopeful:  true,
}

// Interpretation is the composed reading body. Text is built once at
// creation time and re-read from storage afterwards; it is never
// recomposed because composition uses unseeded randomness.
type Interpretation struct {
	Summary  string   `json:"summary"`
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

// ReadingContext records the inputs a reading was generated under.
type ReadingContext struct {
	Type           ReadingType `json:"type"`
	Question       string      `json:"question,omitempty"`
	Mood           Mood        `json:"mood,omitempty"`
	Horoscope      string      `json:"horoscope,omitempty"`
	Recommendation string      `json:"recommendation,omitempty"`
}

// Reading is a persisted reading record. At most one daily reading may
// exist per (user, calendar day); decision readings are unconstrained.
type Reading struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Type           ReadingType    `json:"type"`
	Cards          []DrawnCard    `json:"cards"`
	Interpretation Interpretation `json:"interpretation"`
	Context        ReadingContext `json:"context"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ReadingResult wraps a reading with a flag telling the caller whether
// it was created by this call (HTTP 201) or already existed (HTTP 200).
type ReadingResult struct {
	Reading *Reading `json:"reading"`
	IsNew   bool     `json:"is_new"`
}

// User is the owning record for a natal profile and streak counters.
type User struct {
	ID              string        `json:"id"`
	Profile         *NatalProfile `json:"astrology_profile,omitempty"`
	ReadingStreak   int           `json:"reading_streak"`
	LastReadingDate *time.Time    `json:"last_reading_date,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
