package edition

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvailableListsEmbeddedEditions(t *testing.T) {
	require.Equal(t, []int{2025, 2026}, Available())
}

func TestLoad2025(t *testing.T) {
	ed, err := Load(2025)
	require.NoError(t, err)

	require.Equal(t, "ICIBM 2025", ed.Title())
	require.Equal(t, "August 3-5, 2025", ed.Dates)
	require.Equal(t, "University at Buffalo, New York, USA", ed.Venue.Summary())
	require.Equal(t, "Buffalo, NY", ed.Venue.CityLine())
	require.Equal(t, "Buffalo, New York 14260", ed.Venue.PostalLine())
	require.Len(t, ed.Speakers, 4)
	require.Len(t, ed.Committees, 6)
	require.Len(t, ed.SponsorTiers, 2)
	require.Len(t, ed.SponsorTiers[1].Sponsors, 5)

	deadline, ok := ed.PaperDeadline()
	require.True(t, ok)
	require.Equal(t, "April 28, 2025", deadline.Date)

	require.Equal(t, "Yusi Fu, Texas A&M University", ed.Committees[3].Members[1].String())
}

func TestLoad2026(t *testing.T) {
	ed, err := Load(2026)
	require.NoError(t, err)
	require.Equal(t, "ICIBM 2026", ed.Title())
	require.Empty(t, ed.Speakers)
	require.Empty(t, ed.Registration.Fees)
	require.Equal(t, "USD", ed.Registration.Currency, "currency defaults to USD")
}

func TestLoadUnknownEdition(t *testing.T) {
	_, err := Load(1999)
	require.ErrorIs(t, err, ErrUnknownEdition)
}

func TestDatesTableEndsWithConference(t *testing.T) {
	ed, err := Load(2025)
	require.NoError(t, err)

	rows := ed.DatesTable()
	require.Len(t, rows, len(ed.ImportantDates)+1)
	last := rows[len(rows)-1]
	require.Equal(t, "ICIBM Conference", last.Event)
	require.Equal(t, ed.Dates, last.Date)
	require.Equal(t, PaperDeadlineEvent, rows[0].Event)
}

func TestMarkdownBlocksRendered(t *testing.T) {
	ed, err := Load(2025)
	require.NoError(t, err)

	require.Len(t, ed.Submission, 3)
	abstract := string(ed.Submission[0].Body.HTML)
	require.Contains(t, abstract, `href="mailto:icibm2025@gmail.com"`)
	require.Contains(t, abstract, "<p>")

	review := string(ed.Submission[1].Body.HTML)
	require.Contains(t, review, "<ol>")
	require.Contains(t, review, "<strong>Conference Review:</strong>")

	notes := string(ed.Registration.Notes.HTML)
	require.True(t, strings.HasPrefix(notes, "<p>**The regular registration fee"), notes)

	local := string(ed.Travel[2].Body.HTML)
	require.Contains(t, local, "<li>NFTA Metro Rail and bus system serves the Buffalo area</li>")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html, err := RenderMarkdown("[click](javascript:alert(1))\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	require.NotContains(t, string(html), "javascript:")
	require.NotContains(t, string(html), "<script>")

	empty, err := RenderMarkdown("   ")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("year: 2027\nnmae: typo\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "nmae")
}

func TestParseReportsMissingFields(t *testing.T) {
	_, err := Parse([]byte("year: 2027\nacronym: ICIBM\n"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Problems, "name is required")
	require.Contains(t, verr.Problems, "dates is required")
	require.Contains(t, verr.Problems, `important_dates must include "Paper Submission Deadline"`)
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := Parse(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLoadFile(t *testing.T) {
	doc := `year: 2027
name: International Conference on Intelligent Biology and Medicine
acronym: ICIBM
dates: June 1-3, 2027
venue: {institution: Example University}
contact: {submission_email: papers@example.org, general_email: info@example.org}
important_dates:
  - {event: Paper Submission Deadline, date: "March 1, 2027"}
registration:
  fees:
    - {package: Regular Registration, early: 50000, standard: 60000, link_label: Register}
`
	file := filepath.Join(t.TempDir(), "2027.yaml")
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o600))

	ed, err := LoadFile(file)
	require.NoError(t, err)
	require.Equal(t, "ICIBM 2027", ed.Title())
	require.Equal(t, "#", ed.Registration.Fees[0].LinkURL, "missing link defaults to a placeholder anchor")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
