package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Text returns the whitespace-collapsed text of the selection.
func Text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// HasHeading reports whether an h1, h2 or h3 in doc reads exactly text.
func HasHeading(doc *goquery.Document, text string) bool {
	return doc.Find("h1, h2, h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return Text(s) == text
	}).Length() > 0
}
