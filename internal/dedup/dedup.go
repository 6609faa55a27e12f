package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobscout-automation/internal/scraper"
)

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// ListingCache remembers which listing URLs previous runs already surfaced,
// so repeat searches only report new postings. Entries expire after 30 days.
type ListingCache struct {
	mu       sync.Mutex
	filePath string
	seen     mapset.Set[string]
	stamps   map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewListingCache creates or loads the cache under cacheDir.
func NewListingCache(cacheDir string) *ListingCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &ListingCache{
		filePath: filepath.Join(cacheDir, "seen_listings.json"),
		seen:     mapset.NewThreadUnsafeSet[string](),
		stamps:   make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSeen checks whether a listing URL was already surfaced.
func (c *ListingCache) IsSeen(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen.Contains(url)
}

// FilterUnseen returns the listings not seen before, preserving order.
func (c *ListingCache) FilterUnseen(listings []scraper.Listing) []scraper.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()

	var unseen []scraper.Listing
	for _, l := range listings {
		if !c.seen.Contains(l.URL) {
			unseen = append(unseen, l)
		}
	}
	return unseen
}

// Add marks URLs as seen and persists the cache when anything changed.
func (c *ListingCache) Add(urls []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, url := range urls {
		if c.seen.Add(url) {
			c.stamps[url] = now
			changed = true
		}
	}

	if changed {
		c.save()
	}
}

func (c *ListingCache) load() {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_listings.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_listings.json: %v", err)
		return
	}

	cutoff := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			c.seen.Add(e.URL)
			c.stamps[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen listings (%d expired)", loaded, len(entries)-loaded)
}

func (c *ListingCache) save() {
	entries := make([]seenEntry, 0, len(c.stamps))
	for url, ts := range c.stamps {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen listings: %v", err)
		return
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_listings.json: %v", err)
	}
}
