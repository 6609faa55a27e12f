package filter

import (
	"testing"
)

func TestTitleMatches(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		terms   []string
		matched bool
	}{
		{
			name:    "Single term is enough",
			title:   "Senior Software Engineer",
			terms:   []string{"software", "engineer"},
			matched: true,
		},
		{
			name:    "Disjoint only term drops row",
			title:   "Senior Software Engineer",
			terms:   []string{"recruiter"},
			matched: false,
		},
		{
			name:    "No terms keeps everything",
			title:   "Anything",
			terms:   nil,
			matched: true,
		},
		{
			name:    "Blank terms keep everything",
			title:   "Anything",
			terms:   []string{"  ", ""},
			matched: true,
		},
		{
			name:    "Case insensitive",
			title:   "GOLANG BACKEND DEVELOPER",
			terms:   []string{"Golang"},
			matched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleMatches(tt.title, tt.terms)
			if got != tt.matched {
				t.Errorf("got %v, want %v", got, tt.matched)
			}
		})
	}
}

func TestLocationMatches(t *testing.T) {
	tests := []struct {
		name    string
		scraped string
		wanted  string
		matched bool
	}{
		{
			name:    "Substring match",
			scraped: "Bangalore, Karnataka, India",
			wanted:  "Bangalore",
			matched: true,
		},
		{
			name:    "Mismatch drops row",
			scraped: "Mumbai, Maharashtra, India",
			wanted:  "Bangalore",
			matched: false,
		},
		{
			name:    "Nationwide search keeps everything",
			scraped: "Pune, Maharashtra, India",
			wanted:  "India",
			matched: true,
		},
		{
			name:    "Empty input keeps everything",
			scraped: "Pune, Maharashtra, India",
			wanted:  "",
			matched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocationMatches(tt.scraped, tt.wanted)
			if got != tt.matched {
				t.Errorf("got %v, want %v", got, tt.matched)
			}
		})
	}
}
