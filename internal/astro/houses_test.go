package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseWheel(t *testing.T) {
	wheel := HouseWheel("Aries")
	require.Len(t, wheel, 12)

	assert.Equal(t, 1, wheel[0].House)
	assert.Equal(t, "Aries", wheel[0].Sign)
	assert.Equal(t, "identity and self-image", wheel[0].Theme)

	assert.Equal(t, 12, wheel[11].House)
	assert.Equal(t, "Pisces", wheel[11].Sign)
}

func TestHouseWheelWraps(t *testing.T) {
	// Starting at Capricorn the wheel wraps past Pisces back to Aries.
	wheel := HouseWheel("Capricorn")
	require.Len(t, wheel, 12)

	assert.Equal(t, "Capricorn", wheel[0].Sign)
	assert.Equal(t, "Pisces", wheel[2].Sign)
	assert.Equal(t, "Aries", wheel[3].Sign)
	assert.Equal(t, "Sagittarius", wheel[11].Sign)
}

func TestHouseWheelUnknownSign(t *testing.T) {
	assert.Nil(t, HouseWheel("Ophiuchus"))
}

func TestHouseThemesAllDistinct(t *testing.T) {
	seen := make(map[string]bool, len(houseThemes))
	for _, theme := range houseThemes {
		assert.NotEmpty(t, theme)
		assert.False(t, seen[theme], "duplicate theme %q", theme)
		seen[theme] = true
	}
}
