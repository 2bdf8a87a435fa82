package handlers

import (
	"html/template"

	"github.com/iaibm/icibm-web/internal/edition"
	"github.com/iaibm/icibm-web/internal/nav"
	"github.com/iaibm/icibm-web/internal/seo"
)

const (
	notFoundHeading   = "Page Not Found"
	descriptionLength = 160
)

// PageData is the view model of the layout shell. The nav fragment is rendered
// from the same value.
type PageData struct {
	Title  string
	SEO    seo.Meta
	JSONLD []template.JS

	Path           string
	Nav            []nav.RenderedItem
	Menu           nav.Menu
	MenuToggleHref string
	Breadcrumbs    []nav.Crumb

	Edition  *edition.Edition
	Body     template.HTML
	NotFound bool
}

// shell builds the chrome around a page: everything except Body and SEO.
func (s *Site) shell(path string, menu nav.Menu) PageData {
	return PageData{
		Path:           path,
		Nav:            nav.Build(path),
		Menu:           menu,
		MenuToggleHref: menu.ToggleHref(path),
		Edition:        s.ed,
	}
}

func (s *Site) pageTitle(heading string, home bool) string {
	if home {
		return s.ed.Title() + " | " + s.ed.Name
	}
	return heading + " | " + s.ed.Title()
}

// meta fills SEO metadata and structured data for a routed page.
func (s *Site) meta(data *PageData, rt Route, heading string) {
	home := rt.Path == "/"
	title := s.pageTitle(heading, home)

	description := ""
	if rt.Description != nil {
		description = rt.Description(s.ed)
	}
	if description == "" {
		description = seo.Excerpt(string(data.Body), descriptionLength)
	}

	canonical := seo.Canonical(s.baseURL, rt.Path)
	data.Title = title
	data.SEO = seo.Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: seo.OpenGraph{
			Title:       title,
			Description: description,
			Image:       s.ed.Hero.URL,
			Type:        "website",
			URL:         canonical,
			SiteName:    s.ed.Title(),
		},
	}

	if home {
		data.JSONLD = append(data.JSONLD, template.JS(seo.JSON(seo.Event(s.eventInfo(canonical, description)))))
	} else {
		data.Breadcrumbs = nav.Breadcrumbs(rt.Path)
		if s.baseURL != "" {
			data.JSONLD = append(data.JSONLD, template.JS(seo.JSON(seo.BreadcrumbList(s.breadcrumbItems(data.Breadcrumbs)))))
		}
	}
	if rt.Path == "/contact" {
		data.JSONLD = append(data.JSONLD, template.JS(seo.JSON(s.organization())))
	}
}

func (s *Site) notFoundMeta(data *PageData) {
	title := s.pageTitle(notFoundHeading, false)
	data.NotFound = true
	data.Title = title
	data.SEO = seo.Meta{
		Title:  title,
		Robots: "noindex",
		OG: seo.OpenGraph{
			Title:    title,
			Type:     "website",
			SiteName: s.ed.Title(),
		},
	}
}

func (s *Site) eventInfo(url, description string) seo.EventInfo {
	v := s.ed.Venue
	return seo.EventInfo{
		Name:        s.ed.Title() + ": " + s.ed.Name,
		Description: description,
		URL:         url,
		StartDate:   s.ed.StartDate,
		EndDate:     s.ed.EndDate,
		Image:       s.ed.Hero.URL,
		Location: seo.Place{
			Name:       v.Institution,
			Locality:   v.City,
			Region:     v.Region,
			PostalCode: v.PostalCode,
			Country:    v.Country,
		},
		Organizer: s.organization(),
	}
}

func (s *Site) organization() map[string]any {
	org := s.ed.Organizer
	name := org.Name
	if name == "" {
		name = s.ed.Name
	}
	return seo.Organization(name, org.URL, s.ed.Contact.GeneralEmail)
}

func (s *Site) breadcrumbItems(crumbs []nav.Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: seo.Canonical(s.baseURL, c.Href)})
	}
	return items
}
