// Package seo builds head metadata and structured data for the listing page.
package seo

import (
	"html/template"
	"strings"

	"mapprio.com/flat-web/internal/listing"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []template.JS
}

// Build assembles page metadata. description is the localized fallback
// used when the listing has no description paragraphs.
func Build(l listing.Listing, baseURL, lang, description string, cover listing.Photo, images []listing.Photo) Meta {
	desc := description
	if len(l.Description) > 0 {
		desc = strings.Join(l.Description, " ")
	}
	canonical := ""
	if baseURL != "" {
		canonical = strings.TrimRight(baseURL, "/") + "/"
	}
	image := Absolute(baseURL, cover.Src)
	m := Meta{
		Title:       l.Name,
		Description: desc,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       l.Name,
			Description: desc,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    l.Name,
			Locale:      ogLocale(lang),
		},
		Twitter: Twitter{Card: "summary_large_image", Image: image},
	}
	for _, doc := range []map[string]any{WebSite(l.Name, canonical), VacationRental(l, canonical, images)} {
		if s := JSON(doc); s != "" {
			m.JSONLD = append(m.JSONLD, template.JS(s))
		}
	}
	return m
}

func ogLocale(lang string) string {
	switch lang {
	case "en":
		return "en_US"
	default:
		return "pt_BR"
	}
}
