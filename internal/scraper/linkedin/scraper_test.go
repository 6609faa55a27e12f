package linkedin

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/portals"
	"go-jobscout-automation/internal/scraper"
)

func init() {
	//no wall-clock waits in unit tests
	settleDelay = 0
	retryDelay = 0
	scrollDelay = 0
	seeMoreDelay = 0
	detailSettleDelay = 0
	expandDelay = 0
}

// fakeSession scripts a browser: canned texts/attrs for the search page and
// per-URL canned texts for detail pages.
type fakeSession struct {
	current   string
	title     string
	navigated []string
	navErr    map[string]error
	counts    map[string]int
	texts     map[string][]string
	attrs     map[string][]string
	detail    map[string]map[string][]string
	clicked   []string
	scrolls   int
	closed    bool
}

func (f *fakeSession) Navigate(url string) error {
	f.navigated = append(f.navigated, url)
	if err := f.navErr[url]; err != nil {
		return err
	}
	f.current = url
	return nil
}

func (f *fakeSession) TitleContains(substr string) bool {
	return strings.Contains(f.title, substr)
}

func (f *fakeSession) Count(selector string) (int, error) {
	return f.counts[selector], nil
}

func (f *fakeSession) Texts(selector string) ([]string, error) {
	if page, ok := f.detail[f.current]; ok {
		return page[selector], nil
	}
	return f.texts[selector], nil
}

func (f *fakeSession) Attrs(selector, _ string) ([]string, error) {
	return f.attrs[selector], nil
}

func (f *fakeSession) ClickFirst(selector string) error {
	if f.counts[selector] > 0 {
		f.clicked = append(f.clicked, selector)
		return nil
	}
	return scraper.ErrNotFound
}

func (f *fakeSession) ScrollToBottom() error {
	f.scrolls++
	return nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

func newScraper() *LinkedInScraper {
	return NewLinkedInScraper(&config.Config{})
}

func TestLoadRetryExhaustion(t *testing.T) {
	//page never shows the brand title or any results selector
	sess := &fakeSession{title: "Just a moment"}

	s := newScraper()
	listings, err := s.Search(context.Background(), sess, portals.SearchQuery{Title: "golang"}, 3)

	assert.ErrorIs(t, err, ErrPageNotLoaded)
	assert.Nil(t, listings)
	assert.Len(t, sess.navigated, 3, "exactly 3 load attempts")
	assert.Zero(t, sess.scrolls, "no scrolling after a failed load")
}

func TestSearchHappyPath(t *testing.T) {
	searchURL := portals.BuildLinkedInSearchURL([]string{"Software Engineer"}, "Bangalore")
	sess := &fakeSession{
		title: "30+ Software Engineer Jobs | LinkedIn",
		texts: map[string][]string{
			selCompany:  {"Acme Corp", "Globex"},
			selLocation: {"Bangalore, Karnataka, India", "Bangalore, Karnataka, India"},
			selTitle:    {"Software Engineer", "Senior Software Engineer"},
		},
		attrs: map[string][]string{
			selJobLink: {"https://in.linkedin.com/jobs/view/1", "https://in.linkedin.com/jobs/view/2"},
		},
		detail: map[string]map[string][]string{
			"https://in.linkedin.com/jobs/view/1": {
				selDescription: {"Responsibilities\n\n• Build services\n• Review code"},
			},
			"https://in.linkedin.com/jobs/view/2": {
				selDescription: {"A plain paragraph about the work."},
			},
		},
	}

	s := newScraper()
	q := portals.SearchQuery{Title: "Software Engineer", Location: "Bangalore"}
	listings, err := s.Search(context.Background(), sess, q, 5)

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, searchURL, sess.navigated[0])
	assert.Equal(t, "Acme Corp", listings[0].Company)
	assert.Contains(t, listings[0].Description, "**Responsibilities**")
	assert.Equal(t, "A plain paragraph about the work.", listings[1].Description)
}

func TestAlignmentTruncatesToShortest(t *testing.T) {
	sess := &fakeSession{
		texts: map[string][]string{
			selCompany:  {"C1", "C2", "C3", "C4", "C5"},
			selLocation: {"L1", "L2", "L3"},
			selTitle:    {"T1", "T2", "T3", "T4"},
		},
		attrs: map[string][]string{
			selJobLink: {"u1", "u2", "u3", "u4", "u5"},
		},
	}

	listings := collectListings(sess, nil, "")

	require.Len(t, listings, 3)
	for i, l := range listings {
		assert.Equal(t, sess.texts[selCompany][i], l.Company)
		assert.Equal(t, sess.texts[selLocation][i], l.Location)
		assert.Equal(t, sess.texts[selTitle][i], l.Title)
		assert.Equal(t, sess.attrs[selJobLink][i], l.URL)
	}
}

func TestTitleFilterAnyTermSuffices(t *testing.T) {
	sess := &fakeSession{
		texts: map[string][]string{
			selCompany:  {"Acme"},
			selLocation: {"Bangalore, India"},
			selTitle:    {"Senior Software Engineer"},
		},
		attrs: map[string][]string{selJobLink: {"u1"}},
	}

	assert.Len(t, collectListings(sess, []string{"software", "recruiter"}, ""), 1)
	assert.Empty(t, collectListings(sess, []string{"recruiter"}, ""))
}

func TestLocationFilterSkippedForNationwide(t *testing.T) {
	sess := &fakeSession{
		texts: map[string][]string{
			selCompany:  {"Acme", "Globex"},
			selLocation: {"Mumbai, India", "Pune, India"},
			selTitle:    {"Engineer", "Engineer"},
		},
		attrs: map[string][]string{selJobLink: {"u1", "u2"}},
	}

	assert.Len(t, collectListings(sess, nil, "India"), 2)
	assert.Len(t, collectListings(sess, nil, "Pune"), 1)
}

func TestEmptyCollectionYieldsNoListings(t *testing.T) {
	sess := &fakeSession{
		texts: map[string][]string{
			selCompany:  {"Acme"},
			selLocation: {"Bangalore"},
			selTitle:    {},
		},
		attrs: map[string][]string{selJobLink: {"u1"}},
	}

	assert.Empty(t, collectListings(sess, nil, ""))
}

func TestDescriptionCountClamp(t *testing.T) {
	var rows []scraper.Listing
	urls := []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8"}
	detail := make(map[string]map[string][]string)
	for _, u := range urls {
		rows = append(rows, scraper.Listing{Title: "T " + u, URL: u})
		detail[u] = map[string][]string{selDescription: {"Text for " + u}}
	}
	sess := &fakeSession{detail: detail}

	s := newScraper()
	out := s.fetchDescriptions(context.Background(), sess, rows, 3)

	require.Len(t, out, 3)
	assert.Equal(t, []string{"u1", "u2", "u3"}, sess.navigated, "listings beyond the limit are never fetched")
}

func TestDescriptionFallbackSelector(t *testing.T) {
	sess := &fakeSession{
		detail: map[string]map[string][]string{
			"u1": {
				selDescription:    {"   "},
				selDescriptionAlt: {"Requirements\n\n- Go\n- SQL"},
			},
		},
	}

	s := newScraper()
	out := s.fetchDescriptions(context.Background(), sess, []scraper.Listing{{URL: "u1"}}, 1)

	require.Len(t, out, 1)
	assert.Equal(t, "**Requirements**\n\n• Go\n• SQL", out[0].Description)
}

func TestUnavailableDescriptionDropsListing(t *testing.T) {
	sess := &fakeSession{
		detail: map[string]map[string][]string{
			"u1": {},
			"u2": {selDescription: {"Real text"}},
		},
	}

	s := newScraper()
	rows := []scraper.Listing{{Title: "A", URL: "u1"}, {Title: "B", URL: "u2"}}
	out := s.fetchDescriptions(context.Background(), sess, rows, 2)

	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Title)
}

func TestPerListingNavigationErrorIsIsolated(t *testing.T) {
	sess := &fakeSession{
		navErr: map[string]error{"u1": assert.AnError},
		detail: map[string]map[string][]string{
			"u2": {selDescription: {"Still works"}},
		},
	}

	s := newScraper()
	rows := []scraper.Listing{{Title: "A", URL: "u1"}, {Title: "B", URL: "u2"}}
	out := s.fetchDescriptions(context.Background(), sess, rows, 2)

	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Title)
}

func TestStructureDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Header block is emphasized",
			in:   "Key Responsibilities\n\nYou will build things.",
			want: "**Key Responsibilities**\n\nYou will build things.",
		},
		{
			name: "Header detected behind hyphen prefix",
			in:   "- About Us\n\nWe are a company.",
			want: "**- About Us**\n\nWe are a company.",
		},
		{
			name: "Bullets get the canonical glyph",
			in:   "* write Go\n* review PRs\ncontinuation line",
			want: "• write Go\n• review PRs\ncontinuation line",
		},
		{
			name: "Plain paragraph passes through",
			in:   "  Just some text.  ",
			want: "Just some text.",
		},
		{
			name: "Blank blocks are skipped",
			in:   "First.\n\n   \n\nSecond.",
			want: "First.\n\nSecond.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StructureDescription(tt.in))
		})
	}
}

func TestHeaderVocabularyDeduplicated(t *testing.T) {
	seen := map[string]bool{}
	for _, h := range headerVocabulary {
		assert.Equal(t, strings.ToLower(h), h, "vocabulary is lowercased")
		assert.False(t, seen[h], "vocabulary has no duplicates: %s", h)
		seen[h] = true
	}
	assert.True(t, seen["position"])
	assert.True(t, seen["key responsibilities"])
}
