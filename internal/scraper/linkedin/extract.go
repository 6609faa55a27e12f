package linkedin

import (
	"log"

	"go-jobscout-automation/internal/filter"
	"go-jobscout-automation/internal/scraper"
)

// Selectors on the result cards.
const (
	selCompany  = "h4.base-search-card__subtitle"
	selLocation = "span.job-search-card__location"
	selTitle    = "h3.base-search-card__title"
	selJobLink  = `xpath=//a[contains(@href, "/jobs/view/")]`
)

// collectListings scrapes the four parallel field collections from the
// loaded results page and applies the user's title and location filters.
// The collections are truncated to the shortest one before pairing: a
// partially rendered card contributes to some collections but not others,
// and keeping the misaligned tail would pair fields across different jobs.
func collectListings(session scraper.Session, titleTerms []string, location string) []scraper.Listing {
	companies, err := session.Texts(selCompany)
	if err != nil {
		log.Printf("  ⚠️ Error collecting companies: %v", err)
		return nil
	}
	locations, err := session.Texts(selLocation)
	if err != nil {
		log.Printf("  ⚠️ Error collecting locations: %v", err)
		return nil
	}
	titles, err := session.Texts(selTitle)
	if err != nil {
		log.Printf("  ⚠️ Error collecting titles: %v", err)
		return nil
	}
	urls, err := session.Attrs(selJobLink, "href")
	if err != nil {
		log.Printf("  ⚠️ Error collecting job links: %v", err)
		return nil
	}

	if len(companies) == 0 || len(locations) == 0 || len(titles) == 0 || len(urls) == 0 {
		log.Println("  ⚠️ No job listings found. Try different search terms.")
		return nil
	}

	n := len(companies)
	for _, l := range [][]string{locations, titles, urls} {
		if len(l) < n {
			n = len(l)
		}
	}

	var listings []scraper.Listing
	for i := 0; i < n; i++ {
		if !filter.TitleMatches(titles[i], titleTerms) {
			continue
		}
		if !filter.LocationMatches(locations[i], location) {
			continue
		}
		listings = append(listings, scraper.Listing{
			Company:  companies[i],
			Title:    titles[i],
			Location: locations[i],
			URL:      urls[i],
		})
	}
	return listings
}
