// Static suggestion tables for the search surface
// Location table order matters: state resolution picks the first city

package suggestions

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Suggestion is one selectable entry shown while the user types.
type Suggestion struct {
	Text  string
	Icon  string
	Type  string //"city", "state", "work_mode" or empty for plain entries
	State string //owning state, cities only
}

// Option is an id/label pair for fixed dropdowns.
type Option struct {
	ID   string
	Text string
}

// Locations is the ordered location table. Work modes first, then the major
// tech hubs, then states, then remaining cities grouped by state. The first
// city listed for a state is its primary job market.
var Locations = []Suggestion{
	{Text: "Remote", Icon: "🏠", Type: "work_mode"},
	{Text: "Work from Home", Icon: "🏠", Type: "work_mode"},
	{Text: "Hybrid", Icon: "🏢", Type: "work_mode"},

	{Text: "Bangalore", Icon: "📍", Type: "city", State: "Karnataka"},
	{Text: "Mumbai", Icon: "📍", Type: "city", State: "Maharashtra"},
	{Text: "Delhi", Icon: "📍", Type: "city", State: "Delhi"},
	{Text: "Hyderabad", Icon: "📍", Type: "city", State: "Telangana"},
	{Text: "Pune", Icon: "📍", Type: "city", State: "Maharashtra"},
	{Text: "Chennai", Icon: "📍", Type: "city", State: "Tamil Nadu"},
	{Text: "Noida", Icon: "📍", Type: "city", State: "Uttar Pradesh"},
	{Text: "Gurgaon", Icon: "📍", Type: "city", State: "Haryana"},

	{Text: "Karnataka", Icon: "🗺️", Type: "state"},
	{Text: "Maharashtra", Icon: "🗺️", Type: "state"},
	{Text: "Tamil Nadu", Icon: "🗺️", Type: "state"},
	{Text: "Telangana", Icon: "🗺️", Type: "state"},
	{Text: "Delhi", Icon: "🗺️", Type: "state"},
	{Text: "Uttar Pradesh", Icon: "🗺️", Type: "state"},
	{Text: "Gujarat", Icon: "🗺️", Type: "state"},
	{Text: "Rajasthan", Icon: "🗺️", Type: "state"},
	{Text: "Kerala", Icon: "🗺️", Type: "state"},
	{Text: "West Bengal", Icon: "🗺️", Type: "state"},
	{Text: "Punjab", Icon: "🗺️", Type: "state"},
	{Text: "Haryana", Icon: "🗺️", Type: "state"},
	{Text: "Andhra Pradesh", Icon: "🗺️", Type: "state"},
	{Text: "Madhya Pradesh", Icon: "🗺️", Type: "state"},
	{Text: "Bihar", Icon: "🗺️", Type: "state"},

	{Text: "Mysore", Icon: "📍", Type: "city", State: "Karnataka"},
	{Text: "Hubli", Icon: "📍", Type: "city", State: "Karnataka"},
	{Text: "Mangalore", Icon: "📍", Type: "city", State: "Karnataka"},
	{Text: "Belgaum", Icon: "📍", Type: "city", State: "Karnataka"},
	{Text: "Davangere", Icon: "📍", Type: "city", State: "Karnataka"},

	{Text: "Nagpur", Icon: "📍", Type: "city", State: "Maharashtra"},
	{Text: "Nashik", Icon: "📍", Type: "city", State: "Maharashtra"},
	{Text: "Aurangabad", Icon: "📍", Type: "city", State: "Maharashtra"},
	{Text: "Kolhapur", Icon: "📍", Type: "city", State: "Maharashtra"},
	{Text: "Solapur", Icon: "📍", Type: "city", State: "Maharashtra"},

	{Text: "Coimbatore", Icon: "📍", Type: "city", State: "Tamil Nadu"},
	{Text: "Madurai", Icon: "📍", Type: "city", State: "Tamil Nadu"},
	{Text: "Salem", Icon: "📍", Type: "city", State: "Tamil Nadu"},
	{Text: "Tiruchirappalli", Icon: "📍", Type: "city", State: "Tamil Nadu"},
	{Text: "Vellore", Icon: "📍", Type: "city", State: "Tamil Nadu"},

	{Text: "Lucknow", Icon: "📍", Type: "city", State: "Uttar Pradesh"},
	{Text: "Kanpur", Icon: "📍", Type: "city", State: "Uttar Pradesh"},
	{Text: "Agra", Icon: "📍", Type: "city", State: "Uttar Pradesh"},
	{Text: "Varanasi", Icon: "📍", Type: "city", State: "Uttar Pradesh"},
	{Text: "Meerut", Icon: "📍", Type: "city", State: "Uttar Pradesh"},

	{Text: "Vijayawada", Icon: "📍", Type: "city", State: "Andhra Pradesh"},
	{Text: "Visakhapatnam", Icon: "📍", Type: "city", State: "Andhra Pradesh"},
	{Text: "Tirupati", Icon: "📍", Type: "city", State: "Andhra Pradesh"},
	{Text: "Guntur", Icon: "📍", Type: "city", State: "Andhra Pradesh"},
	{Text: "Nellore", Icon: "📍", Type: "city", State: "Andhra Pradesh"},

	{Text: "Kolkata", Icon: "📍", Type: "city", State: "West Bengal"},
	{Text: "Darjeeling", Icon: "📍", Type: "city", State: "West Bengal"},
	{Text: "Siliguri", Icon: "📍", Type: "city", State: "West Bengal"},
	{Text: "Durgapur", Icon: "📍", Type: "city", State: "West Bengal"},
	{Text: "Asansol", Icon: "📍", Type: "city", State: "West Bengal"},

	{Text: "Ahmedabad", Icon: "📍", Type: "city", State: "Gujarat"},
	{Text: "Surat", Icon: "📍", Type: "city", State: "Gujarat"},
	{Text: "Vadodara", Icon: "📍", Type: "city", State: "Gujarat"},
	{Text: "Rajkot", Icon: "📍", Type: "city", State: "Gujarat"},
	{Text: "Bhavnagar", Icon: "📍", Type: "city", State: "Gujarat"},

	{Text: "Jaipur", Icon: "📍", Type: "city", State: "Rajasthan"},
	{Text: "Jodhpur", Icon: "📍", Type: "city", State: "Rajasthan"},
	{Text: "Udaipur", Icon: "📍", Type: "city", State: "Rajasthan"},
	{Text: "Kota", Icon: "📍", Type: "city", State: "Rajasthan"},
	{Text: "Ajmer", Icon: "📍", Type: "city", State: "Rajasthan"},

	{Text: "Kochi", Icon: "📍", Type: "city", State: "Kerala"},
	{Text: "Thiruvananthapuram", Icon: "📍", Type: "city", State: "Kerala"},
	{Text: "Kozhikode", Icon: "📍", Type: "city", State: "Kerala"},
	{Text: "Thrissur", Icon: "📍", Type: "city", State: "Kerala"},
	{Text: "Alappuzha", Icon: "📍", Type: "city", State: "Kerala"},

	{Text: "Amritsar", Icon: "📍", Type: "city", State: "Punjab"},
	{Text: "Ludhiana", Icon: "📍", Type: "city", State: "Punjab"},
	{Text: "Jalandhar", Icon: "📍", Type: "city", State: "Punjab"},
	{Text: "Patiala", Icon: "📍", Type: "city", State: "Punjab"},
	{Text: "Bathinda", Icon: "📍", Type: "city", State: "Punjab"},

	{Text: "Faridabad", Icon: "📍", Type: "city", State: "Haryana"},
	{Text: "Panipat", Icon: "📍", Type: "city", State: "Haryana"},
	{Text: "Ambala", Icon: "📍", Type: "city", State: "Haryana"},
	{Text: "Karnal", Icon: "📍", Type: "city", State: "Haryana"},
	{Text: "Hisar", Icon: "📍", Type: "city", State: "Haryana"},

	{Text: "Guwahati", Icon: "📍", Type: "city", State: "Assam"},
	{Text: "Shillong", Icon: "📍", Type: "city", State: "Meghalaya"},
	{Text: "Imphal", Icon: "📍", Type: "city", State: "Manipur"},
	{Text: "Aizawl", Icon: "📍", Type: "city", State: "Mizoram"},
	{Text: "Gangtok", Icon: "📍", Type: "city", State: "Sikkim"},

	{Text: "Chandigarh", Icon: "📍", Type: "city", State: "Chandigarh"},
	{Text: "Port Blair", Icon: "📍", Type: "city", State: "Andaman and Nicobar Islands"},
	{Text: "Shimla", Icon: "📍", Type: "city", State: "Himachal Pradesh"},
	{Text: "Dehradun", Icon: "📍", Type: "city", State: "Uttarakhand"},
	{Text: "Itanagar", Icon: "📍", Type: "city", State: "Arunachal Pradesh"},
}

// JobTitles are common roles offered as completions in the title field.
var JobTitles = []Suggestion{
	{Text: "Software Engineer", Icon: "💻"},
	{Text: "Full Stack Developer", Icon: "🔧"},
	{Text: "Data Scientist", Icon: "📊"},
	{Text: "Product Manager", Icon: "📱"},
	{Text: "DevOps Engineer", Icon: "⚙️"},
	{Text: "UI/UX Designer", Icon: "🎨"},
	{Text: "Python Developer", Icon: "🐍"},
	{Text: "Java Developer", Icon: "☕"},
	{Text: "React Developer", Icon: "⚛️"},
	{Text: "Machine Learning Engineer", Icon: "🤖"},
	{Text: "Backend Developer", Icon: "🖧"},
	{Text: "Frontend Developer", Icon: "🎨"},
	{Text: "Go Developer", Icon: "🚀"},
	{Text: "Cloud Engineer", Icon: "☁️"},
	{Text: "Data Analyst", Icon: "📈"},
	{Text: "Database Administrator", Icon: "🗄️"},
	{Text: "Network Engineer", Icon: "🔌"},
	{Text: "Cybersecurity Analyst", Icon: "🔒"},
	{Text: "Mobile App Developer", Icon: "📱"},
	{Text: "iOS Developer", Icon: "🍏"},
	{Text: "Android Developer", Icon: "🤖"},
	{Text: "Blockchain Developer", Icon: "🔗"},
	{Text: "Project Manager", Icon: "📋"},
	{Text: "Technical Writer", Icon: "✍️"},
	{Text: "QA Engineer", Icon: "✅"},
	{Text: "Support Engineer", Icon: "📞"},
}

// ExperienceLevels mirror the brackets the portals understand.
var ExperienceLevels = []Option{
	{ID: "all", Text: "All Levels"},
	{ID: "fresher", Text: "Fresher"},
	{ID: "0-1", Text: "0-1 years"},
	{ID: "1-3", Text: "1-3 years"},
	{ID: "3-5", Text: "3-5 years"},
	{ID: "5-7", Text: "5-7 years"},
	{ID: "7-10", Text: "7-10 years"},
	{ID: "10+", Text: "10+ years"},
}

var JobTypes = []Option{
	{ID: "all", Text: "All Types"},
	{ID: "full-time", Text: "Full Time"},
	{ID: "part-time", Text: "Part Time"},
	{ID: "contract", Text: "Contract"},
	{ID: "internship", Text: "Internship"},
	{ID: "remote", Text: "Remote"},
}

var SalaryRanges = []Option{
	{ID: "all", Text: "All Ranges"},
	{ID: "0-3", Text: "0-3 LPA"},
	{ID: "3-6", Text: "3-6 LPA"},
	{ID: "6-10", Text: "6-10 LPA"},
	{ID: "10-15", Text: "10-15 LPA"},
	{ID: "15+", Text: "15+ LPA"},
}

// normalizeText strips diacritics and lowercases so "Bengalūru" still
// matches "bengaluru" while typing.
func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// CitiesByState returns the cities of a state in table order.
func CitiesByState(state string) []Suggestion {
	var cities []Suggestion
	for _, loc := range Locations {
		if loc.Type == "city" && strings.EqualFold(loc.State, state) {
			cities = append(cities, loc)
		}
	}
	return cities
}

// AllStates returns every state entry in table order.
func AllStates() []Suggestion {
	var states []Suggestion
	for _, loc := range Locations {
		if loc.Type == "state" {
			states = append(states, loc)
		}
	}
	return states
}

// FilterLocations returns up to 7 matching locations, states first, then
// cities, then work modes. Queries shorter than 2 runes yield nothing.
func FilterLocations(query string) []Suggestion {
	if len([]rune(query)) < 2 {
		return nil
	}
	q := normalizeText(query)

	var results []Suggestion
	for _, wanted := range []string{"state", "city", "work_mode"} {
		for _, loc := range Locations {
			if loc.Type == wanted && strings.Contains(normalizeText(loc.Text), q) {
				results = append(results, loc)
			}
		}
	}
	if len(results) > 7 {
		results = results[:7]
	}
	return results
}

// FilterJobTitles returns up to 5 matching role suggestions.
func FilterJobTitles(query string) []Suggestion {
	if query == "" {
		return nil
	}
	q := normalizeText(query)

	var results []Suggestion
	for _, s := range JobTitles {
		if strings.Contains(normalizeText(s.Text), q) {
			results = append(results, s)
			if len(results) == 5 {
				break
			}
		}
	}
	return results
}
