package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/travel"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition, in menu order.
var Main = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/submission", Label: "Submission"},
	{Path: "/important-dates", Label: "Important Dates"},
	{Path: "/registration", Label: "Registration"},
	{Path: "/program", Label: "Program"},
	{Path: "/organization", Label: "Organization"},
	{Path: "/travel", Label: "Travel"},
	{Path: "/sponsors", Label: "Sponsors"},
	{Path: "/contact", Label: "Contact"},
}

// Build renders navigation items with active state given the current path.
// An item is active only when its path equals the current path, so at most one item is active.
func Build(currentPath string) []RenderedItem {
	current := Normalize(currentPath)
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: it.Path == current,
		})
	}
	return items
}

// Lookup returns the nav item registered for the path.
func Lookup(p string) (Item, bool) {
	p = Normalize(p)
	for _, it := range Main {
		if it.Path == p {
			return it, true
		}
	}
	return Item{}, false
}

// Normalize cleans a request path: leading slash, no trailing slash, no duplicate slashes.
func Normalize(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with Home
// - Known pages use their nav label
// - Anything else uses a prettified segment label
func Breadcrumbs(currentPath string) []Crumb {
	current := Normalize(currentPath)
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: current == "/"}}
	if current == "/" {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(current, "/"), "/")
	href := ""
	for i, part := range parts {
		href += "/" + part
		label := titleFromSegment(part)
		if it, ok := Lookup(href); ok {
			label = it.Label
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: i == len(parts)-1})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	// replace hyphens/underscores with spaces and capitalize each word
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = toUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
