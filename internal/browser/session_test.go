package browser

import (
	"context"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobscout-automation/internal/scraper"
)

func init() {
	//no real waits while testing
	scrollStepDelayMin = 0
	scrollStepDelayMax = 0
	jiggleDelayMin = 0
	jiggleDelayMax = 0
}

func TestNewPlaywrightHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPlaywright(ctx, true)
	assert.ErrorIs(t, err, context.Canceled)
}

const mockPageHTML = `<html><head><title>Mock Results</title></head><body>
<div style="height: 5000px">
  <span class="row">  First  </span>
  <span class="row">Second</span>
  <span class="row">   </span>
  <a class="card" href="https://example.com/a">a</a>
  <a class="card" href="https://example.com/b">b</a>
  <button class="dismiss">x</button>
</div></body></html>`

//helper start mock browser
func setupPage(t *testing.T) playwright.Page {
	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("could not launch playwright: %v", err)
	}
	t.Cleanup(func() { pw.Stop() })

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("could not launch browser: %v", err)
	}
	t.Cleanup(func() { b.Close() })

	page, err := b.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}

	page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        mockPageHTML,
		})
	})
	return page
}

// integration test: every Session capability against a route-mocked page
func TestPageSessionAgainstMockPage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	page := setupPage(t)
	session := NewPageSession(page)

	require.NoError(t, session.Navigate("https://example.com/results"))
	assert.True(t, session.TitleContains("Mock"))
	assert.False(t, session.TitleContains("Sign In"))

	count, err := session.Count("span.row")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	texts, err := session.Texts("span.row")
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second"}, texts, "texts are trimmed and blanks skipped")

	hrefs, err := session.Attrs("a.card", "href")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, hrefs)

	require.NoError(t, session.ClickFirst("button.dismiss"))
	assert.ErrorIs(t, session.ClickFirst("button.gone"), scraper.ErrNotFound)

	//the humanized scroll must still end up down the page
	require.NoError(t, session.ScrollToBottom())
	scrolled, err := page.Evaluate("() => window.scrollY > 0")
	require.NoError(t, err)
	assert.Equal(t, true, scrolled)
}

func TestStealthMovesOnMockPage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	page := setupPage(t)
	session := NewPageSession(page)
	require.NoError(t, session.Navigate("https://example.com/"))

	assert.NoError(t, HumanScroll(session.Page()))
	assert.NoError(t, MouseJiggle(session.Page()))
}
