package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-jobscout-automation/internal/browser"
	"go-jobscout-automation/internal/config"
	"go-jobscout-automation/internal/dedup"
	"go-jobscout-automation/internal/scraper"
	"go-jobscout-automation/internal/scraper/linkedin"
	"go-jobscout-automation/internal/telegram"
	"go-jobscout-automation/utils"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Keywords: %v, Location: %s, Count: %d", cfg.Keywords, cfg.Location, cfg.JobCount)

	//init telegram bot when configured
	var bot *telegram.Bot
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		var err error
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram Bot: %v", err)
		}
		log.Println("🤖 Telegram Bot initialized.")
	} else {
		log.Println("ℹ️ Telegram not configured, results go to logs only.")
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting JobScout scraper...")

	//init playwright manager
	pwManager, err := browser.NewPlaywright(ctx, cfg.Headless)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	//close playwright when the run stops, success or not
	defer pwManager.Close()

	//load linkedin cookies (optional, public search works without them)
	pwCookies, err := browser.LoadCookies(filepath.Join(cfg.CookiesPath, "cookies-linkedin.json"))
	if err != nil {
		log.Printf("⚠️ Could not load cookies: %v. Continuing without.", err)
		pwCookies = nil
	} else {
		log.Printf("🍪 Loaded %d cookies", len(pwCookies))
	}

	//create new browser context and page
	browserCtx, err := pwManager.NewContext(pwCookies)
	if err != nil {
		log.Fatalf("❌ Failed to create browser context: %v", err)
	}
	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("❌ Failed to create new page: %v", err)
	}
	log.Println("✅ Browser initialized successfully!")

	session := browser.NewPageSession(page)
	defer session.Close()

	//random warm up before the first navigation
	browser.RandomDelay(2000, 4000)
	if err := browser.MouseJiggle(session.Page()); err != nil {
		log.Printf("⚠️ Mouse jiggle failed: %v", err)
	}

	//run the scrape pipeline
	li := linkedin.NewLinkedInScraper(cfg)
	listings, err := li.Scrape(ctx, session)
	if err != nil {
		if errors.Is(err, linkedin.ErrPageNotLoaded) {
			utils.NewScreenShotDebugger().CaptureAndLog(page, "linkedin-load-failed", "🚨 LinkedIn: jobs page did not load")
			if bot != nil {
				bot.SendError(err)
			}
			log.Fatalf("❌ %v", err)
		}
		log.Fatalf("❌ Scrape failed: %v", err)
	}
	log.Printf("📦 Total listings collected: %d", len(listings))

	//dedup against previous runs
	cache := dedup.NewListingCache(cfg.CachePath)
	unseen := cache.FilterUnseen(listings)
	log.Printf("🔍 Deduplication: %d total -> %d unseen listings", len(listings), len(unseen))

	var unseenURLs []string
	for _, l := range unseen {
		unseenURLs = append(unseenURLs, l.URL)
	}
	cache.Add(unseenURLs)

	//push to telegram
	if bot != nil && len(unseen) > 0 {
		for _, l := range unseen {
			log.Printf("  📨 %s @ %s", l.Title, l.Company)
			if err := bot.SendListing(l); err != nil {
				log.Printf("⚠️ Failed to send listing to Telegram: %v", err)
			}
			//1 second delay to avoid 429
			time.Sleep(1 * time.Second)
		}
		statusMsg := fmt.Sprintf("✅ Found %d new listings for %v in %s.", len(unseen), cfg.Keywords, cfg.Location)
		if err := bot.SendStatus(statusMsg); err != nil {
			log.Printf("⚠️ Failed to send status to Telegram: %v", err)
		}
	}

	//save results
	saveListings(unseen)

	log.Println("🏁 Execution finished.")
}

func saveListings(listings []scraper.Listing) {
	if len(listings) == 0 {
		log.Println("ℹ️ No listings to save.")
		return
	}

	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: job-search-YYYY-MM-DD.json
	filename := fmt.Sprintf("job-search-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	data, err := json.MarshalIndent(listings, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal listings to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write results file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
