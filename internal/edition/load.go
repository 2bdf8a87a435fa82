package edition

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ErrUnknownEdition is returned when no embedded edition exists for a year.
var ErrUnknownEdition = errors.New("edition: unknown edition")

// ValidationError lists the required fields an edition is missing.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "edition: invalid: " + strings.Join(e.Problems, "; ")
}

// Available returns the years of the embedded editions in ascending order.
func Available() []int {
	entries, err := fs.ReadDir(dataFS, "data")
	if err != nil {
		return nil
	}
	years := make([]int, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if year, err := strconv.Atoi(name); err == nil {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years
}

// Load returns the embedded edition for year.
func Load(year int) (*Edition, error) {
	raw, err := dataFS.ReadFile(fmt.Sprintf("data/%d.yaml", year))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %d (available: %v)", ErrUnknownEdition, year, Available())
		}
		return nil, fmt.Errorf("edition: read %d: %w", year, err)
	}
	ed, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("edition %d: %w", year, err)
	}
	return ed, nil
}

// LoadFile parses an edition from a YAML file on disk.
func LoadFile(file string) (*Edition, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("edition: read %s: %w", file, err)
	}
	ed, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("edition %s: %w", file, err)
	}
	return ed, nil
}

// Parse decodes, validates and renders an edition document.
// Unknown keys are rejected so typos in content files surface at start-up.
func Parse(raw []byte) (*Edition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var ed Edition
	if err := dec.Decode(&ed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Problems: []string{"document is empty"}}
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	ed.normalize()
	if err := ed.Validate(); err != nil {
		return nil, err
	}
	if err := renderMarkdown(&ed); err != nil {
		return nil, err
	}
	return &ed, nil
}

// Validate checks the fields every page relies on.
func (e *Edition) Validate() error {
	var problems []string
	require := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}
	require(e.Year > 0, "year is required")
	require(e.Name != "", "name is required")
	require(e.Acronym != "", "acronym is required")
	require(e.Dates != "", "dates is required")
	require(e.Contact.SubmissionEmail != "", "contact.submission_email is required")
	require(e.Contact.GeneralEmail != "", "contact.general_email is required")
	require(e.Venue.Institution != "", "venue.institution is required")
	_, ok := e.PaperDeadline()
	require(ok, fmt.Sprintf("important_dates must include %q", PaperDeadlineEvent))
	for i, c := range e.Committees {
		require(c.Name != "", fmt.Sprintf("committees[%d].name is required", i))
	}
	for i, t := range e.SponsorTiers {
		require(t.Name != "", fmt.Sprintf("sponsor_tiers[%d].name is required", i))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func (e *Edition) normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.Acronym = strings.TrimSpace(e.Acronym)
	e.Dates = strings.TrimSpace(e.Dates)
	e.Contact.SubmissionEmail = strings.TrimSpace(e.Contact.SubmissionEmail)
	e.Contact.GeneralEmail = strings.TrimSpace(e.Contact.GeneralEmail)
	if e.Contact.PersonURL == "" && e.Contact.PersonName != "" {
		e.Contact.PersonURL = "#"
	}
	if e.Registration.Currency == "" {
		e.Registration.Currency = "USD"
	}
	for i := range e.Registration.Fees {
		if e.Registration.Fees[i].LinkURL == "" {
			e.Registration.Fees[i].LinkURL = "#"
		}
	}
	for i := range e.ImportantDates {
		e.ImportantDates[i].Event = strings.TrimSpace(e.ImportantDates[i].Event)
		e.ImportantDates[i].Date = strings.TrimSpace(e.ImportantDates[i].Date)
	}
}
