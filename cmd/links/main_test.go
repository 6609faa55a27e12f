package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobscout-automation/internal/portals"
)

func TestValidExperience(t *testing.T) {
	assert.True(t, validExperience("all"))
	assert.True(t, validExperience("fresher"))
	assert.True(t, validExperience("10+"))
	assert.False(t, validExperience("veteran"))
	assert.False(t, validExperience(""))
}

func TestLocationHint(t *testing.T) {
	t.Run("Exact entries stay silent", func(t *testing.T) {
		assert.Empty(t, locationHint("Bangalore"))
		assert.Empty(t, locationHint("karnataka"))
	})

	t.Run("Nationwide default stays silent", func(t *testing.T) {
		assert.Empty(t, locationHint("India"))
		assert.Empty(t, locationHint(""))
	})

	t.Run("Truncated city suggests the full name", func(t *testing.T) {
		assert.Contains(t, locationHint("Bangalor"), "Bangalore")
	})

	t.Run("Unknown location is used as-is", func(t *testing.T) {
		assert.Contains(t, locationHint("Atlantis"), "as-is")
	})
}

func TestTitleHint(t *testing.T) {
	assert.Empty(t, titleHint("Go Developer"), "known roles stay silent")
	assert.Contains(t, titleHint("Developer"), "Full Stack Developer")
	assert.Empty(t, titleHint("Underwater Basket Weaver"))
}

func TestFilterByPortal(t *testing.T) {
	links := portals.SearchLinks(portals.SearchQuery{Title: "Software Engineer", Location: "Pune"})

	t.Run("Empty name keeps all", func(t *testing.T) {
		got, ok := filterByPortal(links, "")
		require.True(t, ok)
		assert.Len(t, got, len(links))
	})

	t.Run("Named portal keeps one, case-insensitive", func(t *testing.T) {
		got, ok := filterByPortal(links, "naukri")
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "Naukri", got[0].Portal)
	})

	t.Run("Unknown portal is rejected", func(t *testing.T) {
		_, ok := filterByPortal(links, "Dice")
		assert.False(t, ok)
	})
}
