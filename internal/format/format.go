package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Count formats n with the digit grouping of lang.
// Example: Count(1562, "pt") => "1.562", Count(1562, "en") => "1,562"
func Count(n int, lang string) string {
	tag := language.English
	if strings.ToLower(lang) == "pt" {
		tag = language.BrazilianPortuguese
	}
	return message.NewPrinter(tag).Sprintf("%d", n)
}

// ClockTime renders a "15:04" listing time in the visitor's convention.
// Values that do not parse are returned unchanged.
func ClockTime(v, lang string) string {
	v = strings.TrimSpace(v)
	t, err := time.Parse("15:04", v)
	if err != nil {
		return v
	}
	switch strings.ToLower(lang) {
	case "en":
		return t.Format("3:04 PM")
	default:
		return t.Format("15:04")
	}
}
