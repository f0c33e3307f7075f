// Package tarot owns the 78-card catalog, the profile-driven weighting
// rules and the weighted draw. Draws are pure computations over an
// injected random source; persistence of the catalog lives in the
// repository and the TTL-cached provider.
package tarot

import (
	"fmt"
	"strings"

	"github.com/lunarium/arcana/internal/contracts"
)

// majorSeed is the hand-written data for the 22 major arcana.
type majorSeed struct {
	Name       string
	Number     int
	Upright    []string
	Reversed   []string
	DailyUp    []string
	DailyRev   []string
	DecisionUp string
	DecisionRev string
}

var majorSeeds = []majorSeed{
	{
		Name: "The Fool", Number: 0,
		Upright:  []string{"beginnings", "spontaneity", "faith"},
		Reversed: []string{"recklessness", "hesitation", "naivety"},
		DailyUp: []string{
			"A fresh start is on the table today; say yes before you talk yourself out of it.",
			"Approach the day with a beginner's eyes and something ordinary will surprise you.",
		},
		DailyRev: []string{
			"Enthusiasm is outrunning preparation; check your footing before the next leap.",
			"A risk you are avoiding deserves a second, calmer look rather than a flat no.",
		},
		DecisionUp:  "Step forward. The unknown here is opportunity wearing a disguise.",
		DecisionRev: "Pause. This leap needs a plan under it before you commit.",
	},
	{
		Name: "The Magician", Number: 1,
		Upright:  []string{"willpower", "skill", "manifestation"},
		Reversed: []string{"manipulation", "scattered energy", "untapped talent"},
		DailyUp: []string{
			"Everything you need is already within reach; today rewards deliberate action.",
			"Focus turns raw resources into results today. Pick one aim and work it.",
		},
		DailyRev: []string{
			"Energy is leaking into too many channels; close a few tabs, literal and otherwise.",
			"Watch for fine print and half-truths today, including the ones you tell yourself.",
		},
		DecisionUp:  "You hold the tools for this. Act while your focus is sharp.",
		DecisionRev: "Something is misaligned between intent and means. Re-check your leverage first.",
	},
	{
		Name: "The High Priestess", Number: 2,
		Upright:  []string{"intuition", "mystery", "inner knowledge"},
		Reversed: []string{"secrets", "disconnection", "ignored instinct"},
		DailyUp: []string{
			"The quiet signal is the true one today; listen before you analyze.",
			"Not everything needs to be said. Holding knowledge lightly is strength today.",
		},
		DailyRev: []string{
			"You already know the answer you keep asking other people for.",
			"Surface noise is drowning your instincts; step away from the crowd to hear yourself.",
		},
		DecisionUp:  "Trust your first instinct here. It has information your spreadsheet lacks.",
		DecisionRev: "Information is being withheld, possibly by you. Surface it before deciding.",
	},
	{
		Name: "The Empress", Number: 3,
		Upright:  []string{"abundance", "nurturing", "creativity"},
		Reversed: []string{"smothering", "creative block", "dependence"},
		DailyUp: []string{
			"Growth favors the tended garden today; invest care in what is already alive.",
			"Comfort and creativity share a root. Make something, or make someone welcome.",
		},
		DailyRev: []string{
			"Care is tipping into control; loosen your grip and let things breathe.",
			"A creative block dissolves the moment you stop demanding output from it.",
		},
		DecisionUp:  "Choose the path that nourishes rather than the one that merely yields.",
		DecisionRev: "Dependence is hiding in this option. Make sure you could stand without it.",
	},
	{
		Name: "The Emperor", Number: 4,
		Upright:  []string{"authority", "structure", "stability"},
		Reversed: []string{"rigidity", "domination", "lack of discipline"},
		DailyUp: []string{
			"Order is your ally today; a firm plan beats an inspired improvisation.",
			"Take the chair at the head of the table. Someone must decide, and it is you.",
		},
		DailyRev: []string{
			"Rules are serving themselves instead of the goal; bend one deliberately.",
			"Control is a poor substitute for trust today. Delegate one real thing.",
		},
		DecisionUp:  "The structured option wins. Build on rock, not on enthusiasm.",
		DecisionRev: "Rigidity is masquerading as strength here. Leave room to adapt.",
	},
	{
		Name: "The Hierophant", Number: 5,
		Upright:  []string{"tradition", "guidance", "conformity"},
		Reversed: []string{"rebellion", "dogma", "unconventionality"},
		DailyUp: []string{
			"The conventional route exists because it works; today is not the day to reinvent it.",
			"Seek the person who has walked this road before; their shortcut is honest.",
		},
		DailyRev: []string{
			"A rule has outlived its reason. Question it politely and firmly.",
			"Borrowed beliefs are feeling tight today; tailor them or set them down.",
		},
		DecisionUp:  "Follow the established path. Precedent is on your side.",
		DecisionRev: "The orthodox answer does not fit this case. Trust the exception.",
	},
	{
		Name: "The Lovers", Number: 6,
		Upright:  []string{"union", "alignment", "choice"},
		Reversed: []string{"disharmony", "imbalance", "avoidance"},
		DailyUp: []string{
			"Alignment matters more than agreement today; seek the shared value under the debate.",
			"A meaningful choice is near. Choose with your values, not your fears.",
		},
		DailyRev: []string{
			"A connection needs maintenance you have been deferring. Today is the day.",
			"Avoiding the choice is itself a choice, and not your best one.",
		},
		DecisionUp:  "Commit wholeheartedly. Half-choices satisfy no one, least of all you.",
		DecisionRev: "Values are misaligned under the surface. Resolve that before anything else.",
	},
	{
		Name: "The Chariot", Number: 7,
		Upright:  []string{"determination", "victory", "control"},
		Reversed: []string{"aggression", "lack of direction", "obstacles"},
		DailyUp: []string{
			"Momentum is yours if you steer with both hands; pick a direction and hold it.",
			"Opposing forces can pull one vehicle forward. Harness today's tension.",
		},
		DailyRev: []string{
			"Speed without direction is just noise; stop and read the map.",
			"Forcing it will stall it. Ease off the pressure today.",
		},
		DecisionUp:  "Drive forward. Willpower carries this one across the line.",
		DecisionRev: "You are pushing against the grain. Re-route rather than accelerate.",
	},
	{
		Name: "Strength", Number: 8,
		Upright:  []string{"courage", "patience", "inner strength"},
		Reversed: []string{"self-doubt", "raw emotion", "weakness"},
		DailyUp: []string{
			"Gentleness is the stronger grip today; persuade where you could compel.",
			"The lion you must tame is your own reaction. You are equal to it.",
		},
		DailyRev: []string{
			"Doubt is loud today but not accurate. Act at half volume and full conviction.",
			"A raw nerve wants acknowledgment, not armor. Tend it.",
		},
		DecisionUp:  "You are stronger than this problem. Proceed with quiet confidence.",
		DecisionRev: "Confidence needs rebuilding first. Shore yourself up, then decide.",
	},
	{
		Name: "The Hermit", Number: 9,
		Upright:  []string{"introspection", "wisdom", "solitude"},
		Reversed: []string{"isolation", "withdrawal", "lost direction"},
		DailyUp: []string{
			"The answer is indoors today; give yourself an hour of genuine quiet.",
			"Step back from the noise. Perspective is today's most valuable currency.",
		},
		DailyRev: []string{
			"Solitude has drifted into hiding. One honest conversation will re-anchor you.",
			"The lamp is for walking by, not staring into. Take what you have learned outside.",
		},
		DecisionUp:  "Withdraw and reflect before acting. The delay will pay for itself.",
		DecisionRev: "You have reflected enough. Further delay is avoidance.",
	},
	{
		Name: "Wheel of Fortune", Number: 10,
		Upright:  []string{"cycles", "destiny", "turning point"},
		Reversed: []string{"resistance", "bad luck", "broken cycle"},
		DailyUp: []string{
			"The wheel is turning in your favor; position yourself where luck can find you.",
			"Change arrives today whether invited or not. Ride it rather than brace against it.",
		},
		DailyRev: []string{
			"A rough patch is a phase of the cycle, not the whole circle.",
			"What you resist persists; loosen your stance and the wheel moves again.",
		},
		DecisionUp:  "Timing favors you. Move with the current, now.",
		DecisionRev: "The cycle is against this right now. Wait for the next turn.",
	},
	{
		Name: "Justice", Number: 11,
		Upright:  []string{"fairness", "truth", "accountability"},
		Reversed: []string{"bias", "dishonesty", "avoidance of consequence"},
		DailyUp: []string{
			"Actions and consequences are keeping close accounts today; deal plainly.",
			"Weigh both pans of the scale before you speak. Fairness is noticed today.",
		},
		DailyRev: []string{
			"A thumb is on the scale somewhere, possibly your own. Check your weights.",
			"An avoided consequence is accruing interest. Settle it early.",
		},
		DecisionUp:  "Choose the fair outcome even if it costs more. It settles cleanest.",
		DecisionRev: "Something about this is not being judged honestly. Audit before acting.",
	},
	{
		Name: "The Hanged Man", Number: 12,
		Upright:  []string{"surrender", "new perspective", "pause"},
		Reversed: []string{"stalling", "martyrdom", "useless sacrifice"},
		DailyUp: []string{
			"Stop struggling and the knot loosens; today rewards deliberate suspension.",
			"Turn the problem upside down. The view from there is the useful one.",
		},
		DailyRev: []string{
			"The pause has become procrastination; name the thing you are waiting for.",
			"You are sacrificing for an audience that is not watching. Stop.",
		},
		DecisionUp:  "Delay on purpose. Letting this hang will reveal its true shape.",
		DecisionRev: "The waiting is now the cost. Cut yourself down and move.",
	},
	{
		Name: "Death", Number: 13,
		Upright:  []string{"endings", "transformation", "release"},
		Reversed: []string{"resistance to change", "stagnation", "clinging"},
		DailyUp: []string{
			"Something is ready to end today; let it, and notice how much lighter you travel.",
			"Clearing dead growth is not loss, it is spring scheduling. Prune boldly.",
		},
		DailyRev: []string{
			"You are holding the door shut against a change that has already happened.",
			"Stagnation is the fee for clinging. Release one small thing today as practice.",
		},
		DecisionUp:  "End it cleanly. The transformation on the far side is the point.",
		DecisionRev: "You are not resisting the decision, you are resisting the ending. Be honest about which.",
	},
	{
		Name: "Temperance", Number: 14,
		Upright:  []string{"balance", "moderation", "patience"},
		Reversed: []string{"excess", "imbalance", "impatience"},
		DailyUp: []string{
			"The middle path is not a compromise today, it is the destination.",
			"Blend rather than choose; two opposites are asking to be mixed.",
		},
		DailyRev: []string{
			"Something is being taken in excess, and it is probably not wine. Rebalance.",
			"Impatience is adulterating good work. Slow the pour.",
		},
		DecisionUp:  "The moderate option is the strong one here. Blend both considerations.",
		DecisionRev: "An extreme is pulling at you. Correct toward the center first.",
	},
	{
		Name: "The Devil", Number: 15,
		Upright:  []string{"attachment", "temptation", "materialism"},
		Reversed: []string{"liberation", "detachment", "breaking free"},
		DailyUp: []string{
			"Notice the chain before you decorate it; today shows you what binds you.",
			"A tempting shortcut carries a hidden subscription fee. Read the terms.",
		},
		DailyRev: []string{
			"A grip you thought was permanent is loosening. Walk through the open door.",
			"Freedom costs a comfort. Today you can afford it.",
		},
		DecisionUp:  "Check what this choice would chain you to before signing.",
		DecisionRev: "This is your exit from an old pattern. Take it.",
	},
	{
		Name: "The Tower", Number: 16,
		Upright:  []string{"upheaval", "revelation", "sudden change"},
		Reversed: []string{"averted disaster", "fear of change", "delayed collapse"},
		DailyUp: []string{
			"What falls today was already structurally unsound. Salvage the foundation.",
			"A sudden truth clears the air like lightning. Breathe the ozone and rebuild.",
		},
		DailyRev: []string{
			"You feel the tremor and are bracing; better to renovate than to wait for collapse.",
			"A near miss today is a blueprint for what to reinforce.",
		},
		DecisionUp:  "Let the unstable thing fall. Building on rubble beats propping a ruin.",
		DecisionRev: "You can still avert this. Act on the warning, not after it.",
	},
	{
		Name: "The Star", Number: 17,
		Upright:  []string{"hope", "renewal", "inspiration"},
		Reversed: []string{"discouragement", "faithlessness", "disconnection"},
		DailyUp: []string{
			"After the storm, the water is clean; today restores something you thought spent.",
			"Hope is a discipline, and today it comes easily. Bank some for later.",
		},
		DailyRev: []string{
			"The stars are still there behind the overcast. Do one small hopeful thing anyway.",
			"Discouragement is data about your reserves, not about your prospects.",
		},
		DecisionUp:  "Proceed with optimism. The long arc of this bends your way.",
		DecisionRev: "Restore your faith in the project before you decide its fate.",
	},
	{
		Name: "The Moon", Number: 18,
		Upright:  []string{"illusion", "intuition", "uncertainty"},
		Reversed: []string{"clarity", "released fear", "truth emerging"},
		DailyUp: []string{
			"Shapes in the dark are mostly shadows today; verify before you react.",
			"The path is lit but dim. Move slowly and trust your night vision.",
		},
		DailyRev: []string{
			"Fog is lifting on a situation that frightened you at midnight. It is smaller by day.",
			"A deception, possibly self-applied, is losing its hold. Let it go completely.",
		},
		DecisionUp:  "Too much is obscured to decide well. Gather light first.",
		DecisionRev: "The confusion has passed. Decide now with your cleared eyes.",
	},
	{
		Name: "The Sun", Number: 19,
		Upright:  []string{"joy", "success", "vitality"},
		Reversed: []string{"dimmed joy", "pessimism", "delayed success"},
		DailyUp: []string{
			"Today operates at full wattage; success is simple, visible and warm.",
			"Let yourself be pleased in public. Joy shared today is joy doubled.",
		},
		DailyRev: []string{
			"The sun is out but you are indoors; step into what is already going well.",
			"Success is delayed, not denied. Keep the curtains open.",
		},
		DecisionUp:  "Yes. This one is as clear as it looks.",
		DecisionRev: "The outcome is good but later than you want. Decide with patience priced in.",
	},
	{
		Name: "Judgement", Number: 20,
		Upright:  []string{"awakening", "reckoning", "renewal"},
		Reversed: []string{"self-doubt", "ignored calling", "harsh self-judgment"},
		DailyUp: []string{
			"An honest reckoning today wipes the slate cleaner than any excuse could.",
			"Something dormant is being called awake. Answer on the first ring.",
		},
		DailyRev: []string{
			"The verdict you fear most is your own. Appeal it with evidence.",
			"A calling keeps ringing. Today, at least pick up.",
		},
		DecisionUp:  "Rise to this. It is the summons you have been preparing for.",
		DecisionRev: "You are judging yourself out of the running. Re-read your own record fairly.",
	},
	{
		Name: "The World", Number: 21,
		Upright:  []string{"completion", "integration", "accomplishment"},
		Reversed: []string{"incompletion", "loose ends", "shortcut"},
		DailyUp: []string{
			"A cycle closes today with everything accounted for. Celebrate before you begin again.",
			"The pieces fit. Step back and see the whole you have assembled.",
		},
		DailyRev: []string{
			"Ninety percent done is a door left open. Close the loop today.",
			"The shortcut skipped a lesson that is now due. Circle back briefly.",
		},
		DecisionUp:  "Complete it. The finish line is closer than the detour.",
		DecisionRev: "Loose ends will snag this choice. Tie them off first.",
	},
}

// suitTheme supplies the suit-flavored phrases the minor deck is
// composed from.
type suitTheme struct {
	Suit     contracts.Suit
	Domain   string
	Upright  string
	Reversed string
}

var suitThemes = []suitTheme{
	{contracts.SuitWands, "energy and ambition", "drive, initiative and creative fire", "burnout, delays and scattered drive"},
	{contracts.SuitCups, "emotion and relationships", "feeling, connection and intuition", "emotional imbalance and withheld feeling"},
	{contracts.SuitSwords, "thought and conflict", "clarity, truth and decisive thought", "confusion, harsh words and mental strain"},
	{contracts.SuitPentacles, "work and material life", "steady effort, resources and results", "insecurity, overwork and stalled returns"},
}

// rankTheme supplies the rank-flavored phrases. Ranks run Ace (1)
// through King (14).
type rankTheme struct {
	Name     string
	Upright  string
	Reversed string
}

var rankThemes = []rankTheme{
	{"Ace", "a seed of pure potential", "potential delayed or squandered"},
	{"Two", "a balance or choice taking shape", "indecision pulling both ways"},
	{"Three", "early growth and collaboration", "friction in a shared effort"},
	{"Four", "stability and consolidation", "restlessness inside the stable thing"},
	{"Five", "conflict and necessary loss", "recovery beginning after strife"},
	{"Six", "harmony restored and progress", "nostalgia holding progress back"},
	{"Seven", "assessment and perseverance", "doubt eroding a long effort"},
	{"Eight", "movement and mastery in motion", "momentum lost or misdirected"},
	{"Nine", "near-completion and resilience", "fatigue at the second-to-last step"},
	{"Ten", "culmination and full weight", "an ending carried longer than needed"},
	{"Page", "a curious messenger energy", "news or study gone astray"},
	{"Knight", "committed pursuit at speed", "pursuit without direction"},
	{"Queen", "mature, receptive command", "command turned inward and brittle"},
	{"King", "seasoned authority", "authority grown rigid"},
}

// BuildDeck assembles the canonical 78-card catalog: 22 hand-written
// major arcana plus 56 minors composed from the suit and rank tables.
// The result is stable across calls and safe to treat as read-only.
func BuildDeck() []contracts.Card {
	cards := make([]contracts.Card, 0, 78)

	for _, m := range majorSeeds {
		cards = append(cards, contracts.Card{
			ID:     fmt.Sprintf("major-%02d", m.Number),
			Name:   m.Name,
			Arcana: contracts.ArcanaMajor,
			Number: m.Number,
			Keywords: contracts.CardKeywords{
				Upright:  m.Upright,
				Reversed: m.Reversed,
			},
			Interpretations: contracts.CardInterpretations{
				Daily: contracts.MeaningSet{
					Upright:  m.DailyUp,
					Reversed: m.DailyRev,
				},
				Decision: contracts.MeaningSet{
					Upright:  []string{m.DecisionUp},
					Reversed: []string{m.DecisionRev},
				},
			},
		})
	}

	for _, st := range suitThemes {
		for i, rt := range rankThemes {
			number := i + 1
			name := fmt.Sprintf("%s of %s", rt.Name, titleSuit(st.Suit))
			cards = append(cards, contracts.Card{
				ID:     fmt.Sprintf("%s-%02d", st.Suit, number),
				Name:   name,
				Arcana: contracts.ArcanaMinor,
				Suit:   st.Suit,
				Number: number,
				Keywords: contracts.CardKeywords{
					Upright:  []string{rt.Upright, st.Upright},
					Reversed: []string{rt.Reversed, st.Reversed},
				},
				Interpretations: contracts.CardInterpretations{
					Daily: contracts.MeaningSet{
						Upright: []string{
							fmt.Sprintf("In %s, today brings %s. Lean into %s.", st.Domain, rt.Upright, st.Upright),
							fmt.Sprintf("Expect %s in matters of %s today.", rt.Upright, st.Domain),
						},
						Reversed: []string{
							fmt.Sprintf("In %s, watch for %s. The day tests your handle on %s.", st.Domain, rt.Reversed, st.Domain),
							fmt.Sprintf("Today surfaces %s; go gently in matters of %s.", rt.Reversed, st.Domain),
						},
					},
					Decision: contracts.MeaningSet{
						Upright: []string{
							fmt.Sprintf("This choice carries %s; in %s that favors moving ahead.", rt.Upright, st.Domain),
						},
						Reversed: []string{
							fmt.Sprintf("This choice carries %s; in %s that argues for caution.", rt.Reversed, st.Domain),
						},
					},
				},
			})
		}
	}

	return cards
}

func titleSuit(s contracts.Suit) string {
	return strings.ToUpper(string(s[0])) + string(s[1:])
}
