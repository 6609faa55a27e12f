package suggestions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitiesByStateKeepsTableOrder(t *testing.T) {
	cities := CitiesByState("Karnataka")
	require.NotEmpty(t, cities)
	//Bangalore is listed first, so state searches resolve to it
	assert.Equal(t, "Bangalore", cities[0].Text)

	tn := CitiesByState("Tamil Nadu")
	require.NotEmpty(t, tn)
	assert.Equal(t, "Chennai", tn[0].Text)
}

func TestCitiesByStateIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, CitiesByState("karnataka"), CitiesByState("Karnataka"))
}

func TestAllStates(t *testing.T) {
	states := AllStates()
	require.NotEmpty(t, states)
	assert.Equal(t, "Karnataka", states[0].Text)
	for _, s := range states {
		assert.Equal(t, "state", s.Type)
	}
}

func TestFilterLocations(t *testing.T) {
	t.Run("States come before cities", func(t *testing.T) {
		results := FilterLocations("kar")
		require.NotEmpty(t, results)
		assert.Equal(t, "Karnataka", results[0].Text)
	})

	t.Run("Short queries yield nothing", func(t *testing.T) {
		assert.Empty(t, FilterLocations("k"))
	})

	t.Run("At most seven results", func(t *testing.T) {
		assert.LessOrEqual(t, len(FilterLocations("an")), 7)
	})

	t.Run("Work modes match", func(t *testing.T) {
		results := FilterLocations("remote")
		require.Len(t, results, 1)
		assert.Equal(t, "work_mode", results[0].Type)
	})
}

func TestFilterJobTitles(t *testing.T) {
	results := FilterJobTitles("developer")
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 5)
	assert.Equal(t, "Full Stack Developer", results[0].Text)

	assert.Empty(t, FilterJobTitles(""))
}
