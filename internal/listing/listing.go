// Package listing holds the static record that describes the rental property.
//
// The record is parsed once at startup and passed around by value. Every
// optional field is either a zero string, a nil pointer or an empty slice;
// templates test for absence and suppress the matching UI element.
package listing

// Photo is a displayable image. Src is either a local path served by the
// site (e.g. "/images/01.jpg") or a remote URL.
type Photo struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// AmenityGroup is a titled list of amenities.
type AmenityGroup struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// CheckInOut holds the optional arrival and departure rules.
type CheckInOut struct {
	CheckInFrom   string `yaml:"check_in_from"`
	CheckOutUntil string `yaml:"check_out_until"`
	// SelfCheckIn distinguishes "not informed" (nil) from an explicit answer.
	SelfCheckIn *bool `yaml:"self_check_in"`
}

// Place is a local guide entry.
type Place struct {
	Name string `yaml:"name"`
	// Recommendations is the number of locals recommending the place; zero
	// renders the generic "many locals recommend" line.
	Recommendations int    `yaml:"recommendations"`
	Description     string `yaml:"description"`
}

// RuleSection is a titled block of the detailed house rules.
type RuleSection struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
	Items      []string `yaml:"items"`
	Wide       bool     `yaml:"wide"`
}

// Note is a titled paragraph, used for safety and property notes.
type Note struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Listing describes the property, its booking links and its content.
type Listing struct {
	Name         string
	Tagline      string
	LocationLine string

	BookingURL   string
	MessagingURL string
	SocialURL    string
	SocialHandle string

	Description   []string
	Highlights    []string
	AmenityGroups []AmenityGroup
	NotIncluded   []string
	SafetyNotes   []Note
	HouseRules    []string
	RuleSections  []RuleSection
	Prohibitions  []string
	CheckInOut    *CheckInOut
	Photos        []Photo

	// About is the long "about this space" text in markdown.
	About        string
	Address      string
	Notes        string
	Video        string
	LocalGuide   []Place
	SuggestedMsg string
}

// HasCheckIn reports whether a check-in time is known.
func (l Listing) HasCheckIn() bool {
	return l.CheckInOut != nil && l.CheckInOut.CheckInFrom != ""
}

// HasCheckOut reports whether a check-out time is known.
func (l Listing) HasCheckOut() bool {
	return l.CheckInOut != nil && l.CheckInOut.CheckOutUntil != ""
}

// SelfCheckIn returns the self check-in flag and whether it was informed.
func (l Listing) SelfCheckIn() (self bool, known bool) {
	if l.CheckInOut == nil || l.CheckInOut.SelfCheckIn == nil {
		return false, false
	}
	return *l.CheckInOut.SelfCheckIn, true
}

// ContactURL is the URL behind the primary "talk / book" call to action:
// the messaging link when present, otherwise the booking page.
func (l Listing) ContactURL() string {
	if l.MessagingURL != "" {
		return l.MessagingURL
	}
	return l.BookingURL
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (l Listing) Clone() Listing {
	cp := l
	cp.Description = cloneStrings(l.Description)
	cp.Highlights = cloneStrings(l.Highlights)
	cp.HouseRules = cloneStrings(l.HouseRules)
	cp.NotIncluded = cloneStrings(l.NotIncluded)
	cp.Prohibitions = cloneStrings(l.Prohibitions)
	if l.AmenityGroups != nil {
		cp.AmenityGroups = make([]AmenityGroup, len(l.AmenityGroups))
		for i, g := range l.AmenityGroups {
			cp.AmenityGroups[i] = AmenityGroup{Title: g.Title, Items: cloneStrings(g.Items)}
		}
	}
	if l.RuleSections != nil {
		cp.RuleSections = make([]RuleSection, len(l.RuleSections))
		for i, s := range l.RuleSections {
			cp.RuleSections[i] = RuleSection{
				Title:      s.Title,
				Paragraphs: cloneStrings(s.Paragraphs),
				Items:      cloneStrings(s.Items),
				Wide:       s.Wide,
			}
		}
	}
	if l.SafetyNotes != nil {
		cp.SafetyNotes = append([]Note(nil), l.SafetyNotes...)
	}
	if l.LocalGuide != nil {
		cp.LocalGuide = append([]Place(nil), l.LocalGuide...)
	}
	if l.Photos != nil {
		cp.Photos = append([]Photo(nil), l.Photos...)
	}
	if l.CheckInOut != nil {
		c := *l.CheckInOut
		if c.SelfCheckIn != nil {
			v := *c.SelfCheckIn
			c.SelfCheckIn = &v
		}
		cp.CheckInOut = &c
	}
	return cp
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	return append([]string(nil), src...)
}
