package browser

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"go-jobscout-automation/internal/scraper"
)

// PageSession adapts a playwright page to the scraper.Session capability.
type PageSession struct {
	page playwright.Page
}

func NewPageSession(page playwright.Page) *PageSession {
	return &PageSession{page: page}
}

// Page exposes the underlying page for browser-level concerns the Session
// interface does not cover (screenshots, stealth moves).
func (s *PageSession) Page() playwright.Page {
	return s.page
}

func (s *PageSession) Navigate(url string) error {
	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (s *PageSession) TitleContains(substr string) bool {
	title, err := s.page.Title()
	if err != nil {
		return false
	}
	return strings.Contains(title, substr)
}

func (s *PageSession) Count(selector string) (int, error) {
	return s.page.Locator(selector).Count()
}

func (s *PageSession) Texts(selector string) ([]string, error) {
	elements, err := s.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}

	var texts []string
	for _, el := range elements {
		text, err := el.InnerText()
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}

func (s *PageSession) Attrs(selector, attr string) ([]string, error) {
	elements, err := s.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}

	var values []string
	for _, el := range elements {
		value, err := el.GetAttribute(attr)
		if err != nil || value == "" {
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

func (s *PageSession) ClickFirst(selector string) error {
	locator := s.page.Locator(selector)
	count, err := locator.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		return scraper.ErrNotFound
	}
	return locator.First().Click(playwright.LocatorClickOptions{
		Force: playwright.Bool(true),
	})
}

// ScrollToBottom skims down the page in human steps before jumping to the
// end, so lazy-loaded results keep appearing without tripping bot detection.
func (s *PageSession) ScrollToBottom() error {
	if err := HumanScroll(s.page); err != nil {
		return err
	}
	_, err := s.page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}

func (s *PageSession) Close() error {
	return s.page.Close()
}
