package filter

import (
	"strings"
)

// TitleMatches reports whether a scraped job title satisfies the user's
// title terms. Any single term matching as a substring is enough; an empty
// term list (or all-blank terms) keeps every row.
func TitleMatches(scrapedTitle string, terms []string) bool {
	var cleaned []string
	for _, term := range terms {
		if term = strings.ToLower(strings.TrimSpace(term)); term != "" {
			cleaned = append(cleaned, term)
		}
	}
	if len(cleaned) == 0 {
		return true
	}

	title := strings.ToLower(scrapedTitle)
	for _, term := range cleaned {
		if strings.Contains(title, term) {
			return true
		}
	}
	return false
}

// LocationMatches reports whether a scraped location satisfies the user's
// location input. A nationwide search ("india" or empty) keeps every row.
func LocationMatches(scrapedLocation, wanted string) bool {
	wanted = strings.TrimSpace(wanted)
	if wanted == "" || strings.EqualFold(wanted, "india") {
		return true
	}
	return strings.Contains(strings.ToLower(scrapedLocation), strings.ToLower(wanted))
}
