package handlers

import (
	"github.com/iaibm/icibm-web/internal/edition"
	"github.com/iaibm/icibm-web/internal/nav"
)

// Route binds one navigable path to the template that renders its content.
type Route struct {
	Path     string
	Template string
	// Heading is the page's unique h1/h2 text.
	Heading func(*edition.Edition) string
	// Description overrides the excerpt used for the meta description.
	Description func(*edition.Edition) string
}

// Content is the data every content template receives.
type Content struct {
	Edition *edition.Edition
	Heading string
	Path    string
}

const notFoundTemplate = "page/notfound"

// Table lists the content routes. Paths match nav.Main one to one.
var Table = []Route{
	{
		Path:        "/",
		Template:    "page/home",
		Heading:     fixed("Keynote Speakers"),
		Description: func(ed *edition.Edition) string { return ed.Tagline },
	},
	{Path: "/submission", Template: "page/submission", Heading: fixed("Submission")},
	{Path: "/important-dates", Template: "page/important-dates", Heading: fixed("Important Dates")},
	{
		Path:     "/registration",
		Template: "page/registration",
		Heading:  func(ed *edition.Edition) string { return "Register for " + ed.Title() },
	},
	{Path: "/program", Template: "page/program", Heading: fixed("Program")},
	{Path: "/organization", Template: "page/organization", Heading: fixed("Organization Committee")},
	{Path: "/travel", Template: "page/travel", Heading: fixed("Travel")},
	{Path: "/sponsors", Template: "page/sponsors", Heading: fixed("Sponsors")},
	{Path: "/contact", Template: "page/contact", Heading: fixed("Contact")},
}

// Lookup selects the route registered for p.
func Lookup(p string) (Route, bool) {
	p = nav.Normalize(p)
	for _, rt := range Table {
		if rt.Path == p {
			return rt, true
		}
	}
	return Route{}, false
}

// Paths returns every routed path in table order.
func Paths() []string {
	out := make([]string, 0, len(Table))
	for _, rt := range Table {
		out = append(out, rt.Path)
	}
	return out
}

func fixed(s string) func(*edition.Edition) string {
	return func(*edition.Edition) string { return s }
}
