// Deep-link builders for the supported job portals
// Pure formatting: same inputs always produce byte-identical URLs

package portals

import (
	"fmt"
	"log"
	"strings"

	"go-jobscout-automation/internal/suggestions"
)

// Experience is the user's selected experience bracket.
type Experience struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SearchQuery is one normalized user search, consumed immediately.
type SearchQuery struct {
	Title      string
	Location   string
	Experience Experience
}

// Portal describes one supported job site. The URL template parameter order
// is fixed per portal.
type Portal struct {
	Name     string
	Icon     string
	Color    string
	Template string
}

// Link is a ready-to-open search URL for one portal.
type Link struct {
	Portal string `json:"portal"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// registry is built once and never mutated after init.
var registry = []Portal{
	{
		Name:     "LinkedIn",
		Icon:     "fab fa-linkedin",
		Color:    "#0A66C2",
		Template: "https://www.linkedin.com/jobs/search/?keywords=%s&location=%s&f_E=%s",
	},
	{
		Name:     "Naukri",
		Icon:     "fas fa-building",
		Color:    "#FF7555",
		Template: "https://www.naukri.com/%s-jobs-in-%s?experience=%s",
	},
	{
		Name:     "Foundit (Monster)",
		Icon:     "fas fa-globe",
		Color:    "#5D3FD3",
		Template: "https://www.foundit.in/srp/results?query=%s&locations=%s",
	},
	{
		Name:     "FreshersWorld",
		Icon:     "fas fa-graduation-cap",
		Color:    "#003A9B",
		Template: "https://www.freshersworld.com/jobs/jobsearch/%s-jobs-in-%s",
	},
	{
		Name:     "TimesJobs",
		Icon:     "fas fa-briefcase",
		Color:    "#003A9B",
		Template: "https://www.timesjobs.com/candidate/job-search.html?searchType=personalizedSearch&from=submit&txtKeywords=%s&txtLocation=%s",
	},
	{
		Name:     "Instahyre",
		Icon:     "fas fa-user-tie",
		Color:    "#003A9B",
		Template: "https://www.instahyre.com/%s-jobs-in-%s",
	},
	{
		Name:     "Indeed",
		Icon:     "fas fa-search-dollar",
		Color:    "#003A9B",
		Template: "https://in.indeed.com/jobs?q=%s&l=%s&explvl=%s",
	},
}

// Registry returns a copy of the portal table.
func Registry() []Portal {
	out := make([]Portal, len(registry))
	copy(out, registry)
	return out
}

// FormatLocation resolves a state name to its first listed city and returns
// a lowercase hyphenated slug ("Tamil Nadu" -> "chennai", "New Delhi" ->
// "new-delhi").
func FormatLocation(location string) string {
	if location == "" {
		return ""
	}
	location = strings.TrimSpace(location)

	for _, loc := range suggestions.Locations {
		if loc.Type == "state" && strings.EqualFold(loc.Text, location) {
			//states give poor portal results, swap in the primary city
			if cities := suggestions.CitiesByState(loc.Text); len(cities) > 0 {
				location = cities[0].Text
			}
			break
		}
	}

	return strings.ReplaceAll(strings.ToLower(location), " ", "-")
}

// FormatJobTitle strips the generic role suffixes and slugifies the rest
// ("Golang Developer" -> "golang").
func FormatJobTitle(title string) string {
	title = strings.ToLower(title)
	title = strings.ReplaceAll(title, "developer", "")
	title = strings.ReplaceAll(title, "engineer", "")
	title = strings.TrimSpace(title)
	title = strings.ReplaceAll(title, " ", "-")
	return strings.Trim(title, "-")
}

// FormatExperience maps a bracket to (portal level id, min years, max years,
// entry/experienced stage). Malformed input falls back to the "all" defaults
// and is logged, never raised.
func FormatExperience(exp Experience) (level, min, max, stage string) {
	id := strings.TrimSpace(exp.ID)
	if id == "" {
		log.Printf("⚠️ Malformed experience selection %+v, defaulting to all levels", exp)
		return "", "0", "0", "entry"
	}
	if id == "all" {
		return "", "0", "0", "entry"
	}

	switch {
	case id == "fresher":
		min, max = "0", "1"
	case id == "10+":
		//cap the open-ended bracket at a reasonable maximum
		min, max = "10", "15"
	case strings.Contains(id, "-"):
		parts := strings.SplitN(id, "-", 2)
		min, max = parts[0], parts[1]
	default:
		min, max = "0", "1"
	}

	levels := map[string]string{
		"fresher": "0",
		"0-1":     "0",
		"1-3":     "1",
		"3-5":     "2",
		"5-7":     "3",
		"7-10":    "4",
		"10+":     "5",
	}
	level, ok := levels[id]
	if !ok {
		level = "0"
	}

	stage = "experienced"
	if min == "0" {
		stage = "entry"
	}
	return level, min, max, stage
}

// ExperienceParam returns the experience fragment a specific portal expects.
// Portals without an experience filter get an empty string.
func ExperienceParam(portalName string, exp Experience) string {
	id := exp.ID
	if id == "" {
		id = "all"
	}

	if id == "all" {
		if portalName == "Indeed" {
			return "entry_level"
		}
		return ""
	}

	switch portalName {
	case "Foundit (Monster)":
		ranges := map[string]string{
			"fresher": "0~0",
			"0-1":     "0~1",
			"1-3":     "1~3",
			"3-5":     "3~5",
			"5-7":     "5~7",
			"7-10":    "7~10",
			"10+":     "10~50",
		}
		if r, ok := ranges[id]; ok {
			return "&experienceRanges=" + r
		}

	case "Naukri":
		ranges := map[string]string{
			"fresher": "0",
			"0-1":     "0-1",
			"1-3":     "1-3",
			"3-5":     "3-5",
			"5-7":     "5-7",
			"7-10":    "7-10",
			"10+":     "10-50",
		}
		if r, ok := ranges[id]; ok {
			return r
		}

	case "LinkedIn":
		switch id {
		case "fresher", "0-1":
			return "1" //entry level
		case "1-3", "3-5":
			return "2" //associate
		case "5-7", "7-10":
			return "3" //mid-senior
		case "10+":
			return "4" //director
		}

	case "Indeed":
		switch id {
		case "fresher", "0-1":
			return "entry_level"
		case "1-3", "3-5":
			return "mid_level"
		case "5-7", "7-10", "10+":
			return "senior_level"
		}
	}

	return ""
}

// SearchLinks builds one deep link per portal for the given query. Portals
// whose URL cannot be built are omitted rather than failing the whole set.
func SearchLinks(q SearchQuery) []Link {
	exp := q.Experience
	if exp.ID == "" {
		exp = Experience{ID: "all", Text: "All Levels"}
	}

	var results []Link
	for _, portal := range registry {
		var formattedJob, formattedLoc string

		switch portal.Name {
		case "Foundit (Monster)":
			formattedJob = strings.ReplaceAll(q.Title, " ", "+")
			formattedLoc = "India"
			if q.Location != "" {
				formattedLoc = strings.ReplaceAll(q.Location, " ", "+")
			}
		case "Naukri":
			formattedJob = FormatJobTitle(q.Title)
			formattedLoc = "india"
			if q.Location != "" {
				formattedLoc = FormatLocation(q.Location)
			}
		case "LinkedIn", "Indeed", "TimesJobs":
			formattedJob = strings.ReplaceAll(q.Title, " ", "%20")
			formattedLoc = "India"
			if q.Location != "" {
				formattedLoc = strings.ReplaceAll(q.Location, " ", "%20")
			}
		case "FreshersWorld", "Instahyre":
			formattedJob = strings.ReplaceAll(strings.ToLower(q.Title), " ", "-")
			formattedLoc = "india"
			if q.Location != "" {
				formattedLoc = strings.ReplaceAll(strings.ToLower(q.Location), " ", "-")
			}
		default:
			//unknown portal, leave it out of the results
			continue
		}

		expParam := ExperienceParam(portal.Name, exp)

		var url string
		switch portal.Name {
		case "Foundit (Monster)":
			url = fmt.Sprintf(portal.Template, formattedJob, formattedLoc)
			if expParam != "" {
				url += expParam
			}
		case "Naukri", "LinkedIn", "Indeed":
			url = fmt.Sprintf(portal.Template, formattedJob, formattedLoc, expParam)
		case "TimesJobs", "FreshersWorld", "Instahyre":
			url = fmt.Sprintf(portal.Template, formattedJob, formattedLoc)
		}

		displayLoc := q.Location
		if displayLoc == "" {
			displayLoc = "India"
		}

		results = append(results, Link{
			Portal: portal.Name,
			Icon:   portal.Icon,
			Color:  portal.Color,
			Title:  fmt.Sprintf("%s jobs in %s", q.Title, displayLoc),
			URL:    url,
		})
	}
	return results
}

// SplitTitles breaks a comma-separated title input into trimmed sub-titles,
// dropping blanks.
func SplitTitles(raw string) []string {
	var titles []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// BuildLinkedInSearchURL builds the public jobs search URL the scraper
// drives. Titles are percent-encoded individually and joined with an
// encoded ", "; an empty title list falls back to the literal "jobs".
func BuildLinkedInSearchURL(titles []string, location string) string {
	var formatted []string
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		formatted = append(formatted, strings.Join(strings.Fields(title), "%20"))
	}
	if len(formatted) == 0 {
		formatted = []string{"jobs"}
	}

	keywords := strings.Join(formatted, "%2C%20")
	loc := strings.ReplaceAll(location, " ", "%20")

	return fmt.Sprintf(
		"https://in.linkedin.com/jobs/search?keywords=%s&location=%s&geoId=102713980&f_TPR=r604800&position=1&pageNum=0",
		keywords, loc,
	)
}
