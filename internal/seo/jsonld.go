package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, email string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if email != "" {
		m["email"] = email
	}
	return m
}

// Place describes an event location.
type Place struct {
	Name       string
	Locality   string
	Region     string
	PostalCode string
	Country    string
}

// EventInfo carries the fields needed for an Event schema.
type EventInfo struct {
	Name        string
	Description string
	URL         string
	StartDate   string // ISO 8601 date, optional
	EndDate     string
	Image       string
	Location    Place
	Organizer   map[string]any
}

// Event returns a schema.org Event payload for an in-person conference.
func Event(info EventInfo) map[string]any {
	m := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "Event",
		"name":                info.Name,
		"eventAttendanceMode": "https://schema.org/OfflineEventAttendanceMode",
		"eventStatus":         "https://schema.org/EventScheduled",
	}
	if info.Description != "" {
		m["description"] = info.Description
	}
	if info.URL != "" {
		m["url"] = info.URL
	}
	if info.StartDate != "" {
		m["startDate"] = info.StartDate
	}
	if info.EndDate != "" {
		m["endDate"] = info.EndDate
	}
	if info.Image != "" {
		m["image"] = info.Image
	}
	if info.Location.Name != "" {
		address := map[string]any{"@type": "PostalAddress"}
		if info.Location.Locality != "" {
			address["addressLocality"] = info.Location.Locality
		}
		if info.Location.Region != "" {
			address["addressRegion"] = info.Location.Region
		}
		if info.Location.PostalCode != "" {
			address["postalCode"] = info.Location.PostalCode
		}
		if info.Location.Country != "" {
			address["addressCountry"] = info.Location.Country
		}
		m["location"] = map[string]any{
			"@type":   "Place",
			"name":    info.Location.Name,
			"address": address,
		}
	}
	if info.Organizer != nil {
		org := make(map[string]any, len(info.Organizer))
		for k, v := range info.Organizer {
			if k == "@context" {
				continue
			}
			org[k] = v
		}
		m["organizer"] = org
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}
