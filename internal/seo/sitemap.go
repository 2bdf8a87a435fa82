package seo

import (
	"encoding/xml"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// Sitemap renders a sitemap.xml document listing the given paths under baseURL.
func Sitemap(baseURL string, paths []string) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNS}
	for _, p := range paths {
		if loc := Canonical(baseURL, p); loc != "" {
			set.URLs = append(set.URLs, sitemapURL{Loc: loc})
		}
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
