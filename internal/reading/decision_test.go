package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunarium/arcana/internal/contracts"
)

func spreadWithReversals(reversed int) []contracts.DrawnCard {
	cards := make([]contracts.DrawnCard, DecisionSpreadSize)
	for i := range cards {
		cards[i] = contracts.DrawnCard{
			CardID:   "major-00",
			Position: i + 1,
			Reversed: i < reversed,
		}
	}
	return cards
}

func TestRecommendBranches(t *testing.T) {
	for reversed := 0; reversed <= 3; reversed++ {
		got := Recommend(spreadWithReversals(reversed))
		assert.Equal(t, recommendations[reversed], got, "%d reversed", reversed)
	}
}

func TestRecommendClampsAboveTable(t *testing.T) {
	// More reversed cards than the table has branches clamps to the
	// most cautious advice.
	cards := make([]contracts.DrawnCard, 5)
	for i := range cards {
		cards[i].Reversed = true
	}
	assert.Equal(t, recommendations[3], Recommend(cards))
}

func TestDecisionPositions(t *testing.T) {
	assert.Equal(t, [3]string{"Past", "Present", "Future"}, DecisionPositions)
	assert.Equal(t, 3, DecisionSpreadSize)
}
