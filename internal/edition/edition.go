// Package edition holds the year-specific content of the conference site.
// An Edition is loaded once at start-up and is read-only afterwards.
package edition

import (
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/yaml.v3"
)

// PaperDeadlineEvent is the DateEntry label every edition must carry.
const PaperDeadlineEvent = "Paper Submission Deadline"

// Edition is the complete content of one conference year.
type Edition struct {
	Year      int    `yaml:"year"`
	Ordinal   string `yaml:"ordinal"`
	Name      string `yaml:"name"`
	Acronym   string `yaml:"acronym"`
	Tagline   string `yaml:"tagline"`
	Dates     string `yaml:"dates"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`

	Organizer Organizer `yaml:"organizer"`
	Venue     Venue     `yaml:"venue"`
	Contact   Contact   `yaml:"contact"`
	Hero      Image     `yaml:"hero"`

	Speakers       []Speaker     `yaml:"speakers"`
	CallForPapers  string        `yaml:"call_for_papers"`
	ImportantDates []DateEntry   `yaml:"important_dates"`
	Submission     []Section     `yaml:"submission"`
	Registration   Registration  `yaml:"registration"`
	Program        Program       `yaml:"program"`
	Committees     []Committee   `yaml:"committees"`
	SponsorTiers   []SponsorTier `yaml:"sponsor_tiers"`
	Travel         []Section     `yaml:"travel"`
}

// Organizer is the association running the conference.
type Organizer struct {
	Name    string `yaml:"name"`
	Acronym string `yaml:"acronym"`
	URL     string `yaml:"url"`
}

// Venue describes where the conference takes place.
type Venue struct {
	Institution string `yaml:"institution"`
	City        string `yaml:"city"`
	Region      string `yaml:"region"`
	RegionCode  string `yaml:"region_code"`
	PostalCode  string `yaml:"postal_code"`
	Country     string `yaml:"country"`
	CountryCode string `yaml:"country_code"`
}

// Summary is the one-line venue shown in the top bar, e.g. "University at Buffalo, New York, USA".
func (v Venue) Summary() string {
	return joinNonEmpty(", ", v.Institution, v.Region, v.CountryCode)
}

// CityLine is the short locality shown in the hero, e.g. "Buffalo, NY".
func (v Venue) CityLine() string {
	return joinNonEmpty(", ", v.City, firstNonEmpty(v.RegionCode, v.Region))
}

// Locality is the city and region, e.g. "Buffalo, New York".
func (v Venue) Locality() string {
	return joinNonEmpty(", ", v.City, v.Region)
}

// PostalLine is the locality with postal code, e.g. "Buffalo, New York 14260".
func (v Venue) PostalLine() string {
	return joinNonEmpty(" ", v.Locality(), v.PostalCode)
}

// Contact lists the addresses published on the site.
type Contact struct {
	SubmissionEmail string `yaml:"submission_email"`
	GeneralEmail    string `yaml:"general_email"`
	PersonName      string `yaml:"person_name"`
	PersonURL       string `yaml:"person_url"`
}

// Image is an external image reference.
type Image struct {
	URL string `yaml:"url"`
	Alt string `yaml:"alt"`
}

// Speaker is a keynote speaker card.
type Speaker struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Institution string `yaml:"institution"`
	Image       string `yaml:"image"`
}

// DateEntry is one row of the important dates table.
type DateEntry struct {
	Event string `yaml:"event"`
	Date  string `yaml:"date"`
}

// Section is a headed block of markdown prose.
type Section struct {
	Heading string   `yaml:"heading"`
	Body    Markdown `yaml:"body"`
}

// Registration holds the fee table and the policies around it.
type Registration struct {
	Intro          Markdown `yaml:"intro"`
	EarlyWindow    string   `yaml:"early_window"`
	StandardWindow string   `yaml:"standard_window"`
	Currency       string   `yaml:"currency"`
	Fees           []FeeRow `yaml:"fees"`
	Notes          Markdown `yaml:"notes"`
	Cancellation   Markdown `yaml:"cancellation"`
	Refund         Markdown `yaml:"refund"`
}

// FeeRow is one registration package. Fees are in minor units.
type FeeRow struct {
	Package   string `yaml:"package"`
	Early     int64  `yaml:"early"`
	Standard  int64  `yaml:"standard"`
	LinkLabel string `yaml:"link_label"`
	LinkURL   string `yaml:"link_url"`
}

// Program is the schedule overview.
type Program struct {
	Note string       `yaml:"note"`
	Days []ProgramDay `yaml:"days"`
}

// ProgramDay lists the sessions of one conference day.
type ProgramDay struct {
	Label string   `yaml:"label"`
	Date  string   `yaml:"date"`
	Items []string `yaml:"items"`
}

// Committee is a named group of organisers.
type Committee struct {
	Name    string            `yaml:"name"`
	Members []CommitteeMember `yaml:"members"`
}

// CommitteeMember is one organiser.
type CommitteeMember struct {
	Name        string `yaml:"name"`
	Affiliation string `yaml:"affiliation"`
}

// String formats the member as "Name, Affiliation".
func (m CommitteeMember) String() string {
	return joinNonEmpty(", ", m.Name, m.Affiliation)
}

// SponsorTier groups sponsors of the same level, e.g. "Gold".
type SponsorTier struct {
	Name     string    `yaml:"name"`
	Sponsors []Sponsor `yaml:"sponsors"`
}

// Sponsor is a sponsor logo.
type Sponsor struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
	URL  string `yaml:"url"`
}

// Markdown is prose authored in markdown. HTML is filled in at load time.
type Markdown struct {
	Source string
	HTML   template.HTML
}

// UnmarshalYAML decodes a plain scalar into Source.
func (m *Markdown) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("edition: markdown must be a string (line %d)", node.Line)
	}
	m.Source = node.Value
	return nil
}

// IsZero reports whether there is no prose.
func (m Markdown) IsZero() bool { return strings.TrimSpace(m.Source) == "" }

// Title returns e.g. "ICIBM 2025".
func (e *Edition) Title() string {
	return fmt.Sprintf("%s %d", e.Acronym, e.Year)
}

// DatesTable returns the important dates with the conference itself as the last row.
// The conference row always shows Dates so the dates string has a single source.
func (e *Edition) DatesTable() []DateEntry {
	rows := make([]DateEntry, 0, len(e.ImportantDates)+1)
	rows = append(rows, e.ImportantDates...)
	rows = append(rows, DateEntry{Event: e.Acronym + " Conference", Date: e.Dates})
	return rows
}

// PaperDeadline returns the paper submission deadline row.
func (e *Edition) PaperDeadline() (DateEntry, bool) {
	for _, d := range e.ImportantDates {
		if d.Event == PaperDeadlineEvent {
			return d, true
		}
	}
	return DateEntry{}, false
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
