package listing

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("listing: invalid")

//go:embed data/mapp-flat801b.md
var defaultSource []byte

type frontMatter struct {
	Name         string         `yaml:"name"`
	Tagline      string         `yaml:"tagline"`
	LocationLine string         `yaml:"location_line"`
	BookingURL   string         `yaml:"booking_url"`
	MessagingURL string         `yaml:"messaging_url"`
	SocialURL    string         `yaml:"social_url"`
	SocialHandle string         `yaml:"social_handle"`
	Description  []string       `yaml:"description"`
	Highlights   []string       `yaml:"highlights"`
	Amenities    []AmenityGroup `yaml:"amenity_groups"`
	NotIncluded  []string       `yaml:"not_included"`
	SafetyNotes  []Note         `yaml:"safety_notes"`
	HouseRules   []string       `yaml:"house_rules"`
	RuleSections []RuleSection  `yaml:"rule_sections"`
	Prohibitions []string       `yaml:"prohibitions"`
	CheckInOut   *CheckInOut    `yaml:"check_in_out"`
	Photos       []Photo        `yaml:"photos"`
	Address      string         `yaml:"address"`
	Notes        string         `yaml:"notes"`
	Video        string         `yaml:"video"`
	LocalGuide   []Place        `yaml:"local_guide"`
	SuggestedMsg string         `yaml:"suggested_message"`
}

// Default returns the listing compiled into the binary.
func Default() (Listing, error) {
	return Parse(defaultSource)
}

// Load reads a listing file. An empty path selects the compiled-in listing.
func Load(path string) (Listing, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Listing{}, fmt.Errorf("listing: read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return Listing{}, fmt.Errorf("listing: %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a markdown document whose YAML front matter carries the
// structured fields and whose body is the "about" text. The result is
// validated.
func Parse(data []byte) (Listing, error) {
	fm, body := splitFrontMatter(string(data))
	if strings.TrimSpace(fm) == "" {
		return Listing{}, fmt.Errorf("%w: missing front matter", ErrInvalid)
	}
	var front frontMatter
	if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
		return Listing{}, fmt.Errorf("parse front matter: %w", err)
	}
	l := Listing{
		Name:          strings.TrimSpace(front.Name),
		Tagline:       strings.TrimSpace(front.Tagline),
		LocationLine:  strings.TrimSpace(front.LocationLine),
		BookingURL:    strings.TrimSpace(front.BookingURL),
		MessagingURL:  strings.TrimSpace(front.MessagingURL),
		SocialURL:     strings.TrimSpace(front.SocialURL),
		SocialHandle:  strings.TrimSpace(front.SocialHandle),
		Description:   trimAll(front.Description),
		Highlights:    trimAll(front.Highlights),
		AmenityGroups: front.Amenities,
		NotIncluded:   trimAll(front.NotIncluded),
		SafetyNotes:   front.SafetyNotes,
		HouseRules:    trimAll(front.HouseRules),
		RuleSections:  front.RuleSections,
		Prohibitions:  trimAll(front.Prohibitions),
		CheckInOut:    front.CheckInOut,
		Photos:        front.Photos,
		About:         strings.TrimSpace(body),
		Address:       strings.TrimSpace(front.Address),
		Notes:         strings.TrimSpace(front.Notes),
		Video:         strings.TrimSpace(front.Video),
		LocalGuide:    front.LocalGuide,
		SuggestedMsg:  strings.TrimSpace(front.SuggestedMsg),
	}
	if c := l.CheckInOut; c != nil {
		c.CheckInFrom = strings.TrimSpace(c.CheckInFrom)
		c.CheckOutUntil = strings.TrimSpace(c.CheckOutUntil)
		if c.CheckInFrom == "" && c.CheckOutUntil == "" && c.SelfCheckIn == nil {
			l.CheckInOut = nil
		}
	}
	if err := l.Validate(); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// Validate checks required fields and link shapes.
func (l Listing) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if l.BookingURL == "" {
		return fmt.Errorf("%w: booking_url is required", ErrInvalid)
	}
	links := []struct{ field, value string }{
		{"booking_url", l.BookingURL},
		{"messaging_url", l.MessagingURL},
		{"social_url", l.SocialURL},
	}
	for _, link := range links {
		if link.value == "" {
			continue
		}
		if !isWebURL(link.value) {
			return fmt.Errorf("%w: %s must be an absolute http(s) URL, got %q", ErrInvalid, link.field, link.value)
		}
	}
	for i, p := range l.Photos {
		if strings.TrimSpace(p.Src) == "" {
			return fmt.Errorf("%w: photos[%d] has no src", ErrInvalid, i)
		}
	}
	return nil
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}

// splitFrontMatter separates a leading "---" delimited block from the body.
func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
