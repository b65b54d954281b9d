package seo

import (
	"encoding/json"
	"net/url"
	"strings"

	"mapprio.com/flat-web/internal/listing"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, siteURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if siteURL != "" {
		m["url"] = siteURL
	}
	return m
}

// VacationRental describes the listing as a schema.org VacationRental.
// Image paths are made absolute against baseURL when it is set.
func VacationRental(l listing.Listing, baseURL string, images []listing.Photo) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "VacationRental",
		"name":     l.Name,
	}
	if len(l.Description) > 0 {
		m["description"] = strings.Join(l.Description, " ")
	}
	if baseURL != "" {
		m["url"] = baseURL
	}
	if l.Address != "" {
		m["address"] = map[string]any{
			"@type":         "PostalAddress",
			"streetAddress": l.Address,
		}
	}
	if c := l.CheckInOut; c != nil {
		if c.CheckInFrom != "" {
			m["checkinTime"] = c.CheckInFrom
		}
		if c.CheckOutUntil != "" {
			m["checkoutTime"] = c.CheckOutUntil
		}
	}
	var sameAs []string
	for _, u := range []string{l.BookingURL, l.SocialURL} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	var imgs []string
	for _, p := range images {
		imgs = append(imgs, Absolute(baseURL, p.Src))
	}
	if len(imgs) > 0 {
		m["image"] = imgs
	}
	var amenities []map[string]any
	for _, g := range l.AmenityGroups {
		for _, it := range g.Items {
			amenities = append(amenities, map[string]any{
				"@type": "LocationFeatureSpecification",
				"name":  it,
				"value": true,
			})
		}
	}
	if len(amenities) > 0 {
		m["amenityFeature"] = amenities
	}
	return m
}

// Absolute resolves ref against base. Absolute refs and an empty base are
// returned unchanged.
func Absolute(base, ref string) string {
	if base == "" || ref == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil || r.IsAbs() {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
