package linkedin

import (
	"errors"
	"log"
	"time"

	"go-jobscout-automation/internal/scraper"
)

// Selectors on the public jobs search page.
const (
	selResultsContainer = ".jobs-search-results"
	selResultsList      = ".jobs-search-results-list"
	selResultCard       = ".base-search-card"
	selSignInDismiss    = "button[data-tracking-control-name='public_jobs_contextual-sign-in-modal_modal_dismiss']"
	selSeeMoreJobs      = "button[aria-label='See more jobs']"
)

// Wall-clock waits between browser operations. Variables so tests can zero
// them out.
var (
	settleDelay  = 3 * time.Second
	retryDelay   = 2 * time.Second
	scrollDelay  = 1500 * time.Millisecond
	seeMoreDelay = 2 * time.Second
)

// loadState names each phase of driving the results page to readiness.
type loadState int

const (
	stateNavigating loadState = iota
	stateVerifying
	stateRetrying
	stateScrolling
	stateReady
	stateFailed
)

const maxLoadAttempts = 3

// loadResults opens the search URL and drives the page through
// navigate -> verify -> scroll until it is ready for extraction. Verification
// failures loop back through a bounded retry; exhausting the budget returns
// ErrPageNotLoaded without ever scrolling.
func (s *LinkedInScraper) loadResults(session scraper.Session, link string, jobCount int) error {
	state := stateNavigating
	attempts := 0

	for {
		switch state {
		case stateNavigating:
			if err := session.Navigate(link); err != nil {
				log.Printf("  ⚠️ Navigation error: %v", err)
			}
			time.Sleep(settleDelay)
			state = stateVerifying

		case stateVerifying:
			if resultsVisible(session) {
				state = stateScrolling
			} else {
				state = stateRetrying
			}

		case stateRetrying:
			attempts++
			if attempts >= maxLoadAttempts {
				state = stateFailed
				continue
			}
			log.Printf("  🔄 Results not visible yet, retrying (%d/%d)", attempts, maxLoadAttempts)
			time.Sleep(retryDelay)
			state = stateNavigating

		case stateScrolling:
			s.scrollForResults(session, jobCount)
			state = stateReady

		case stateReady:
			return nil

		case stateFailed:
			log.Printf("  ❌ Jobs page did not load after %d attempts", maxLoadAttempts)
			return ErrPageNotLoaded
		}
	}
}

// resultsVisible runs the readiness probes in order; the first hit wins.
func resultsVisible(session scraper.Session) bool {
	if session.TitleContains("LinkedIn") {
		return true
	}
	for _, sel := range []string{selResultsContainer, selResultsList, selResultCard} {
		if n, err := session.Count(sel); err == nil && n > 0 {
			return true
		}
	}
	return false
}

// scrollForResults repeatedly scrolls to the bottom so lazy loading
// materializes enough result cards. The sign-in interstitial and the
// "See more jobs" button are handled best-effort: their absence is a no-op.
func (s *LinkedInScraper) scrollForResults(session scraper.Session, jobCount int) {
	iterations := jobCount + 5
	if iterations > 15 {
		iterations = 15
	}

	for i := 0; i < iterations; i++ {
		tryClick(session, selSignInDismiss)

		if err := session.ScrollToBottom(); err != nil {
			log.Printf("  ⚠️ Scroll error: %v", err)
		}
		time.Sleep(scrollDelay)

		if tryClick(session, selSeeMoreJobs) {
			time.Sleep(seeMoreDelay)
		}
	}
}

// tryClick clicks the first match if one exists. A missing element is
// expected absence; anything else is logged so selector drift shows up.
func tryClick(session scraper.Session, selector string) bool {
	err := session.ClickFirst(selector)
	if err == nil {
		return true
	}
	if !errors.Is(err, scraper.ErrNotFound) {
		log.Printf("  ⚠️ Click failed on %s: %v", selector, err)
	}
	return false
}
