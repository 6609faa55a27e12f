package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"go-jobscout-automation/internal/portals"
	"go-jobscout-automation/internal/suggestions"
)

// Prints the deep-link search URL for every supported portal, one per line.
func main() {
	title := flag.String("title", "Software Engineer", "job title, comma-separated for multiple")
	location := flag.String("location", "India", "city or state")
	experience := flag.String("exp", "all", "experience bracket id, see -filters")
	portal := flag.String("portal", "", "limit output to one portal, e.g. Naukri")
	filters := flag.Bool("filters", false, "print the supported filter options and locations, then exit")
	flag.Parse()

	if *filters {
		printFilterOptions()
		return
	}

	if !validExperience(*experience) {
		log.Fatalf("❌ Unknown experience id %q. Valid ids: %s", *experience, strings.Join(experienceIDs(), ", "))
	}
	if hint := locationHint(*location); hint != "" {
		log.Printf("ℹ️ %s", hint)
	}
	for _, t := range portals.SplitTitles(*title) {
		if hint := titleHint(t); hint != "" {
			log.Printf("ℹ️ %s", hint)
		}
	}

	q := portals.SearchQuery{
		Title:      *title,
		Location:   *location,
		Experience: portals.Experience{ID: *experience},
	}

	links, ok := filterByPortal(portals.SearchLinks(q), *portal)
	if !ok {
		log.Fatalf("❌ Unknown portal %q. Supported: %s", *portal, strings.Join(portalNames(), ", "))
	}
	if len(links) == 0 {
		log.Fatal("❌ No portal links could be built")
	}

	for _, l := range links {
		fmt.Printf("%s %-18s %s\n", l.Icon, l.Portal, l.URL)
	}
	if *portal == "" {
		fmt.Printf("🔍 %-18s %s\n", "LinkedIn (scrape)", portals.BuildLinkedInSearchURL(portals.SplitTitles(*title), *location))
	}
}

// validExperience reports whether id is one of the known brackets.
func validExperience(id string) bool {
	for _, opt := range suggestions.ExperienceLevels {
		if opt.ID == id {
			return true
		}
	}
	return false
}

func experienceIDs() []string {
	ids := make([]string, 0, len(suggestions.ExperienceLevels))
	for _, opt := range suggestions.ExperienceLevels {
		ids = append(ids, opt.ID)
	}
	return ids
}

// locationHint returns a did-you-mean line when the location is not an exact
// entry in the suggestion table. Nationwide searches pass through silently.
func locationHint(location string) string {
	if location == "" || strings.EqualFold(location, "india") {
		return ""
	}

	var names []string
	for _, match := range suggestions.FilterLocations(location) {
		if strings.EqualFold(match.Text, location) {
			return ""
		}
		names = append(names, match.Text)
	}
	if len(names) == 0 {
		return fmt.Sprintf("Location %q is not in the suggestion table, using it as-is.", location)
	}
	return fmt.Sprintf("Location %q is not an exact match, did you mean: %s?", location, strings.Join(names, ", "))
}

// titleHint lists related roles for a title that is not itself a known role.
func titleHint(title string) string {
	var names []string
	for _, match := range suggestions.FilterJobTitles(title) {
		if strings.EqualFold(match.Text, title) {
			return ""
		}
		names = append(names, match.Text)
	}
	if len(names) == 0 {
		return ""
	}
	return fmt.Sprintf("Related roles for %q: %s", title, strings.Join(names, ", "))
}

// filterByPortal keeps only the named portal's link; an empty name keeps
// everything. ok is false when the name is not in the registry.
func filterByPortal(links []portals.Link, portal string) ([]portals.Link, bool) {
	if portal == "" {
		return links, true
	}

	known := false
	for _, p := range portals.Registry() {
		if strings.EqualFold(p.Name, portal) {
			known = true
			break
		}
	}
	if !known {
		return nil, false
	}

	var filtered []portals.Link
	for _, l := range links {
		if strings.EqualFold(l.Portal, portal) {
			filtered = append(filtered, l)
		}
	}
	return filtered, true
}

func portalNames() []string {
	var names []string
	for _, p := range portals.Registry() {
		names = append(names, p.Name)
	}
	return names
}

func printFilterOptions() {
	printOptions("Experience", suggestions.ExperienceLevels)
	printOptions("Job type", suggestions.JobTypes)
	printOptions("Salary", suggestions.SalaryRanges)

	fmt.Println("States (with their primary job market):")
	for _, state := range suggestions.AllStates() {
		primary := ""
		if cities := suggestions.CitiesByState(state.Text); len(cities) > 0 {
			primary = cities[0].Text
		}
		fmt.Printf("  %-16s %s\n", state.Text, primary)
	}
}

func printOptions(label string, opts []suggestions.Option) {
	fmt.Printf("%s:\n", label)
	for _, opt := range opts {
		fmt.Printf("  %-10s %s\n", opt.ID, opt.Text)
	}
}
