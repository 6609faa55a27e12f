package linkedin

import (
	"context"
	"errors"
	"log"
	"strings"

	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/portals"
	"go-jobscout-automation/internal/scraper"
)

// ErrPageNotLoaded is the terminal outcome when the jobs page never reaches
// a usable state within the retry budget. Callers must stop the pipeline.
var ErrPageNotLoaded = errors.New("linkedin: jobs page did not load")

// maxJobCount caps how many listings one run may describe.
const maxJobCount = 10

type LinkedInScraper struct {
	cfg *config.Config
}

func NewLinkedInScraper(cfg *config.Config) *LinkedInScraper {
	return &LinkedInScraper{cfg: cfg}
}

func (s *LinkedInScraper) Name() string {
	return "LinkedIn"
}

// Scrape runs the pipeline with the configured defaults, satisfying the
// shared Scraper interface.
func (s *LinkedInScraper) Scrape(ctx context.Context, session scraper.Session) ([]scraper.Listing, error) {
	q := portals.SearchQuery{
		Title:      strings.Join(s.cfg.Keywords, ", "),
		Location:   s.cfg.Location,
		Experience: portals.Experience{ID: s.cfg.ExperienceID},
	}
	return s.Search(ctx, session, q, s.cfg.JobCount)
}

// Search scrapes up to jobCount public LinkedIn listings matching the query.
// The stages run strictly sequentially against the one session: load the
// results page, extract listing rows, then fetch descriptions. The only
// outcomes are N listings, zero listings, or ErrPageNotLoaded.
func (s *LinkedInScraper) Search(ctx context.Context, session scraper.Session, q portals.SearchQuery, jobCount int) ([]scraper.Listing, error) {
	if jobCount < 1 {
		jobCount = 1
	}
	if jobCount > maxJobCount {
		jobCount = maxJobCount
	}

	titles := portals.SplitTitles(q.Title)
	link := portals.BuildLinkedInSearchURL(titles, q.Location)
	log.Printf("💼 Searching LinkedIn Jobs: %q in %q (up to %d)", q.Title, q.Location, jobCount)
	log.Printf("  🌐 %s", link)

	if err := s.loadResults(session, link, jobCount); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := collectListings(session, titles, q.Location)
	if len(rows) == 0 {
		return nil, nil
	}
	log.Printf("  📦 %d listings after extraction and filtering", len(rows))

	described := s.fetchDescriptions(ctx, session, rows, jobCount)
	log.Printf("  ✅ %d listings with descriptions", len(described))
	return described, nil
}
