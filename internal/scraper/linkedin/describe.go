package linkedin

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobscout-automation/internal/scraper"
)

// Selectors on a job detail page.
const (
	selShowMore        = `button[data-tracking-control-name="public_jobs_show-more-html-btn"]`
	selDescription     = "div.show-more-less-html__markup"
	selDescriptionAlt  = "div.description__text"
	descriptionBullet  = "•"
	detailSettleMillis = 2000
	expandMillis       = 1000
)

// detailSettleDelay and expandDelay are variables so tests can zero them.
var (
	detailSettleDelay = detailSettleMillis * time.Millisecond
	expandDelay       = expandMillis * time.Millisecond
)

// fetchDescriptions visits each listing's detail page and fills in its
// structured description. At most limit listings are processed; the rest are
// dropped. A listing whose description cannot be retrieved is dropped too,
// never returned with a placeholder. One listing failing never aborts the
// batch.
func (s *LinkedInScraper) fetchDescriptions(ctx context.Context, session scraper.Session, listings []scraper.Listing, limit int) []scraper.Listing {
	if limit < 0 {
		limit = 0
	}
	if limit > len(listings) {
		limit = len(listings)
	}
	listings = listings[:limit]

	var described []scraper.Listing
	for i, listing := range listings {
		if err := ctx.Err(); err != nil {
			log.Printf("  ⚠️ Cancelled after %d/%d descriptions", i, len(listings))
			break
		}
		log.Printf("  📄 Fetching description %d/%d: %s", i+1, len(listings), listing.Title)

		if err := session.Navigate(listing.URL); err != nil {
			log.Printf("    ⚠️ Could not open detail page: %v", err)
			continue
		}
		time.Sleep(detailSettleDelay)

		//expand the truncated description when the toggle exists
		if tryClick(session, selShowMore) {
			time.Sleep(expandDelay)
		}

		raw := firstNonBlankText(session, selDescription, selDescriptionAlt)
		if raw == "" {
			log.Printf("    ⚠️ Description unavailable, dropping listing")
			continue
		}

		listing.Description = StructureDescription(raw)
		described = append(described, listing)
	}
	return described
}

// firstNonBlankText reads the first element's text for each selector in
// turn, returning the first non-blank result.
func firstNonBlankText(session scraper.Session, selectors ...string) string {
	for _, sel := range selectors {
		texts, err := session.Texts(sel)
		if err != nil {
			log.Printf("    ⚠️ Error reading %s: %v", sel, err)
			continue
		}
		if len(texts) > 0 && strings.TrimSpace(texts[0]) != "" {
			return texts[0]
		}
	}
	return ""
}

// headerVocabulary holds the recognized section headers, lowercased and
// deduplicated. The raw list is kept verbatim from the portal copy it was
// collected against, duplicates and all.
var headerVocabulary = buildHeaderVocabulary()

func buildHeaderVocabulary() []string {
	raw := []string{
		"responsibilities", "requirements", "qualifications", "skills",
		"about the job", "about the role", "what you'll do", "what you'll need",
		"about us", "about the company", "who we are", "benefits", "perks",
		"job description", "role description", "experience", "education",
		"job summary", "job overview", "job requirements", "job responsibilities",
		"job qualifications", "job skills", "job benefits", "job perks",
		"job description", "role description", "experience", "education",
		"job summary", "job overview", "job requirements", "job responsibilities",
		"job qualifications", "job skills", "job benefits", "job perks",
		"Education Qualification and Experience", "Required Skills", "Preferred Qualifications", "Key Responsibilities",
		"About Us", "About the Company", "About the Role", "About the Job",
		"About the Team", "About the Organization", "About the Industry", "About the Location",
		"Position", "Job Description", "Job Summary", "Job Overview",
	}

	set := mapset.NewThreadUnsafeSet[string]()
	for _, h := range raw {
		set.Add(strings.ToLower(h))
	}

	vocab := set.ToSlice()
	sort.Strings(vocab)
	return vocab
}

// StructureDescription reformats a raw description into labeled sections.
// Blocks separated by blank lines are classified: recognized section headers
// are emphasized on their own line, bullet blocks get one canonical glyph
// per line, everything else passes through as a paragraph.
func StructureDescription(text string) string {
	if text == "" {
		return text
	}

	var processed []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		switch {
		case isSectionHeader(block):
			processed = append(processed, "**"+block+"**")
		case isBulletBlock(block):
			processed = append(processed, formatBulletBlock(block))
		default:
			processed = append(processed, block)
		}
	}
	return strings.Join(processed, "\n\n")
}

// isSectionHeader reports whether the block's first line starts with a
// recognized header, ignoring case and an optional leading bullet or hyphen.
func isSectionHeader(block string) bool {
	first := strings.ToLower(strings.TrimSpace(firstLine(block)))
	for _, prefix := range []string{descriptionBullet + " ", "- "} {
		first = strings.TrimPrefix(first, prefix)
	}
	for _, header := range headerVocabulary {
		if strings.HasPrefix(first, header) {
			return true
		}
	}
	return false
}

// isBulletBlock reports whether the block's first non-blank line opens with
// a bullet glyph, hyphen, or asterisk.
func isBulletBlock(block string) bool {
	first := strings.TrimSpace(firstLine(block))
	return strings.HasPrefix(first, descriptionBullet) ||
		strings.HasPrefix(first, "-") ||
		strings.HasPrefix(first, "*")
}

// formatBulletBlock rewrites every bulleted line with the one canonical
// glyph; non-bulleted continuation lines are kept as-is.
func formatBulletBlock(block string) string {
	var formatted []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, descriptionBullet) || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
			line = strings.TrimSpace(strings.TrimLeft(line, descriptionBullet+"-* "))
			formatted = append(formatted, descriptionBullet+" "+line)
		} else {
			formatted = append(formatted, line)
		}
	}
	return strings.Join(formatted, "\n")
}

func firstLine(block string) string {
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		return block[:i]
	}
	return block
}
