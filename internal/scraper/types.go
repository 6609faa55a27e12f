// Shared types for all scrapers
// Ensure consistency

package scraper

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Session calls that target an element which is
// not present on the current page. Best-effort interactions (dismissing a
// modal, expanding a description) treat it as expected absence, not failure.
var ErrNotFound = errors.New("element not found")

// Listing is one scraped job posting. Company/Title/Location/URL are filled
// during extraction; Description is filled later or the listing is dropped.
type Listing struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Session is the browser capability a scraper drives. One session backs one
// pipeline run; it is not safe for concurrent use.
type Session interface {
	//Navigate opens url and waits for the DOM to be parsed
	Navigate(url string) error

	//TitleContains reports whether the current page title contains substr
	TitleContains(substr string) bool

	//Count returns the number of elements matching selector
	Count(selector string) (int, error)

	//Texts returns the trimmed inner text of every match, blanks skipped
	Texts(selector string) ([]string, error)

	//Attrs returns the named attribute of every match, empty values skipped.
	//Selectors prefixed with "xpath=" are evaluated as XPath expressions.
	Attrs(selector, attr string) ([]string, error)

	//ClickFirst clicks the first match, ErrNotFound when nothing matches
	ClickFirst(selector string) error

	//ScrollToBottom scrolls the page to its full height
	ScrollToBottom() error

	//Close releases the page
	Close() error
}

//Scraper defines the interface that all platform scrapers must implement
type Scraper interface {
	//Scrape jobs from the platform using the given session
	Scrape(ctx context.Context, session Session) ([]Listing, error)

	//Name is the platform name (LinkedIn, Naukri, ...)
	Name() string
}
