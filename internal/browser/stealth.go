package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// step delay bounds in milliseconds, variables so tests can run without real waits
var (
	scrollStepDelayMin = 500
	scrollStepDelayMax = 1500
	jiggleDelayMin     = 100
	jiggleDelayMax     = 300
)

// RandomDelay waits for a random duration between min and max milliseconds
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	time.Sleep(time.Duration(rand.Intn(max-min)+min) * time.Millisecond)
}

// HumanScroll scrolls down in uneven steps with a small correction upward,
// the way a reader skims a results page
func HumanScroll(page playwright.Page) error {
	for i := 0; i < 5; i++ {
		if _, err := page.Evaluate("window.scrollBy(0, window.innerHeight / 2)"); err != nil {
			return err
		}
		RandomDelay(scrollStepDelayMin, scrollStepDelayMax)
	}
	_, err := page.Evaluate("window.scrollBy(0, -200)")
	return err
}

// MouseJiggle moves the mouse to a few random viewport positions to prevent
// idle detection
func MouseJiggle(page playwright.Page) error {
	viewport := page.ViewportSize()
	if viewport == nil {
		return nil
	}
	for i := 0; i < 3; i++ {
		x := rand.Intn(viewport.Width)
		y := rand.Intn(viewport.Height)
		if err := page.Mouse().Move(float64(x), float64(y)); err != nil {
			return err
		}
		RandomDelay(jiggleDelayMin, jiggleDelayMax)
	}
	return nil
}
