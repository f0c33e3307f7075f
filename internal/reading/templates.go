package reading

import "github.com/lunarium/arcana/internal/contracts"

// moodKey pairs a mood with a card orientation. Each of the eight moods
// carries one template per orientation; unknown moods use the neutral
// fallback instead of failing.
type moodKey struct {
	Mood     contracts.Mood
	Reversed bool
}

var moodTemplates = map[moodKey]string{
	{contracts.MoodHappy, false}:    "Your good mood and this card point the same way: enjoy the momentum and share some of it.",
	{contracts.MoodHappy, true}:     "Your high spirits can carry you past this card's warning; stay cheerful but keep one eye open.",
	{contracts.MoodCalm, false}:     "From your settled state, this card's promise unfolds without resistance. Let it.",
	{contracts.MoodCalm, true}:      "Your calm is the right instrument for this card's friction; steady hands untie tight knots.",
	{contracts.MoodAnxious, false}:  "The card is kinder than your worry suggests. Borrow its confidence for the next hour, then the next.",
	{contracts.MoodAnxious, true}:   "Anxiety and this card both exaggerate; split the difference and take one small, concrete step.",
	{contracts.MoodSad, false}:      "The card offers a gentle counterweight to your heaviness; accept the small good thing it points to.",
	{contracts.MoodSad, true}:       "A low day meets a hard card; be as patient with yourself as you would be with a friend.",
	{contracts.MoodExcited, false}:  "Your excitement is fuel and this card is a green light; just keep your steering precise.",
	{contracts.MoodExcited, true}:   "Channel the buzz carefully: this card asks for aim before acceleration.",
	{contracts.MoodConfused, false}: "The card cuts through your fog with one clear thread; follow it and ignore the rest for now.",
	{contracts.MoodConfused, true}:  "Confusion layered on this card means the honest answer is 'not yet'. Decide nothing big today.",
	{contracts.MoodAngry, false}:    "The card redirects your heat toward something worth building; spend the energy, not the grievance.",
	{contracts.MoodAngry, true}:     "Anger plus this card is a combustible mix; cool down before you act on anything that matters.",
	{contracts.MoodHopeful, false}:  "Hope and this card agree today; water the thing you are hoping for.",
	{contracts.MoodHopeful, true}:   "Keep your hope but let this card edit its timeline; good things, slower schedule.",
}

// moodNeutral covers unrecognized mood tags.
const moodNeutral = "Whatever today's mood, this card meets you where you are; take its message at face value."

// moodElementClauses optionally suffix the mood paragraph with the
// profile's dominant element.
var moodElementClauses = map[contracts.Element]string{
	contracts.ElementFire:  " Your fiery nature wants action on this; pick one front and commit.",
	contracts.ElementEarth: " Your earthy nature prefers the practical route; make it tangible before day's end.",
	contracts.ElementAir:   " Your airy nature will want to talk this through; find the right listener.",
	contracts.ElementWater: " Your watery nature reads the undercurrents; trust what you feel between the lines.",
}

// forecastTemplates key the general-forecast paragraph by arcana for
// majors and by suit for minors.
var forecastMajor = "A major arcana day: the theme is larger than its trigger. Events today rhyme with a longer chapter of your life, so read them at that scale."

var forecastBySuit = map[contracts.Suit]string{
	contracts.SuitWands:     "The day runs on wands energy: initiative is rewarded, waiting is not. Expect sparks around projects and ambition.",
	contracts.SuitCups:      "The day runs on cups energy: feelings carry more information than facts. Expect movement in relationships and inner weather.",
	contracts.SuitSwords:    "The day runs on swords energy: clarity is available but it has edges. Expect decisions, debates and plain truths.",
	contracts.SuitPentacles: "The day runs on pentacles energy: slow and steady compounds. Expect progress in work, money and the body.",
}

// expectations feed the "what to expect" bullets, keyed by orientation.
var expectUpright = []string{
	"An opening you can act on before noon.",
	"A conversation that lands better than you expect.",
	"Small wins that stack if you notice them.",
	"Help arriving from a routine direction.",
	"A moment where preparation quietly pays off.",
}

var expectReversed = []string{
	"A delay that is information, not punishment.",
	"A plan that needs one revision before it works.",
	"Friction with someone reading from a different page.",
	"An old habit volunteering for one more round.",
	"A cost that is smaller faced early than late.",
}

// advice feeds the do/avoid lists.
var adviceDoUpright = []string{"Act on the first clear opportunity.", "Say the generous thing out loud.", "Finish one lingering task completely."}
var adviceAvoidUpright = []string{"Overexplaining a good decision.", "Waiting for a perfect moment.", "Discounting your own contribution."}
var adviceDoReversed = []string{"Double-check assumptions before committing.", "Give yourself slack on the timeline.", "Ask one clarifying question early."}
var adviceAvoidReversed = []string{"Forcing an outcome today.", "Reading silence as verdict.", "Signing anything you have not slept on."}

// lifeAreas produce the four one-liners, orientation-dependent.
type lifeAreaLines struct {
	Area     string
	Upright  string
	Reversed string
}

var lifeAreas = []lifeAreaLines{
	{"Love", "Warmth offered today is returned with interest.", "Go easy on loved ones; everyone is carrying something unseen."},
	{"Career", "Visibility works in your favor; let your work be seen.", "Keep your head down and your drafts private for now."},
	{"Health", "Energy is available; spend some of it on your body.", "Rest is productive today; treat it as scheduled work."},
	{"Finances", "A modest, sensible move beats a bold one.", "Hold spending decisions until the fog clears."},
}

// lucky pools for the time/color block. The lucky number comes from the
// card's own number when it has one, else a pseudo-random 1..22.
var luckyTimes = []string{
	"early morning", "mid-morning", "noon", "early afternoon",
	"late afternoon", "sunset", "evening", "just before midnight",
}

var luckyColors = []string{
	"crimson", "amber", "gold", "emerald", "teal",
	"sapphire", "violet", "silver", "ivory", "charcoal",
}

// astrologyBonus is the optional profile paragraph template. Verb-level
// text is assembled in the composer.
const maxLuckyNumber = 22
