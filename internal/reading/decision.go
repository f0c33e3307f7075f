package reading

import "github.com/lunarium/arcana/internal/contracts"

// DecisionPositions labels the three-card spread in draw order.
var DecisionPositions = [3]string{"Past", "Present", "Future"}

// DecisionSpreadSize is the fixed size of a decision spread.
const DecisionSpreadSize = 3

// recommendations maps the reversed-card count to its advice string.
// A fixed 4-branch rule table, not a statistical model.
var recommendations = [4]string{
	"The outlook is favorable. Act confidently.",
	"Mostly clear, with one caveat. Attend to details and proceed carefully.",
	"Obstacles are likely on this path. Consider alternatives before committing.",
	"The timing is unfavorable. Wait for a better moment.",
}

// Recommend derives the single recommendation for a decision spread
// from how many of its cards landed reversed.
func Recommend(cards []contracts.DrawnCard) string {
	reversed := 0
	for _, c := range cards {
		if c.Reversed {
			reversed++
		}
	}
	if reversed > len(recommendations)-1 {
		reversed = len(recommendations) - 1
	}
	return recommendations[reversed]
}
