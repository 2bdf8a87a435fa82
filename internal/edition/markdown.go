package edition

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy   = newProsePolicy()
)

// newProsePolicy allows the usual prose markup; links keep mailto and relative targets.
func newProsePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowURLSchemes("mailto", "http", "https")
	p.RequireNoFollowOnLinks(false)
	return p
}

// RenderMarkdown converts markdown to sanitised HTML.
func RenderMarkdown(src string) (template.HTML, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(strings.TrimSpace(policy.Sanitize(buf.String()))), nil
}

func renderMarkdown(ed *Edition) error {
	blocks := map[string]*Markdown{
		"registration.intro":        &ed.Registration.Intro,
		"registration.notes":        &ed.Registration.Notes,
		"registration.cancellation": &ed.Registration.Cancellation,
		"registration.refund":       &ed.Registration.Refund,
	}
	for i := range ed.Submission {
		blocks[fmt.Sprintf("submission[%d]", i)] = &ed.Submission[i].Body
	}
	for i := range ed.Travel {
		blocks[fmt.Sprintf("travel[%d]", i)] = &ed.Travel[i].Body
	}
	for name, block := range blocks {
		html, err := RenderMarkdown(block.Source)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		block.HTML = html
	}
	return nil
}
