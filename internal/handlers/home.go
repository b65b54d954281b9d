package handlers

import (
	"fmt"
	"html/template"
	"time"

	"mapprio.com/flat-web/internal/format"
	"mapprio.com/flat-web/internal/gallery"
	"mapprio.com/flat-web/internal/listing"
	"mapprio.com/flat-web/internal/nav"
	"mapprio.com/flat-web/internal/photos"
	"mapprio.com/flat-web/internal/seo"
)

// Translator resolves UI labels. *i18n.Bundle satisfies it.
type Translator interface {
	T(lang, key string) string
	TF(lang, key string, args ...any) string
}

// Markdown renders listing markdown into sanitised HTML. *cms.Renderer
// satisfies it.
type Markdown interface {
	Render(src string) (template.HTML, error)
}

// HomeInput collects everything the home page is composed from.
type HomeInput struct {
	Listing   listing.Listing
	Photos    []listing.Photo // resolved sequence, see photos.Resolve
	Gallery   *gallery.Gallery
	Lang      string
	Path      string
	BaseURL   string
	Analytics Analytics
	Text      Translator
	Markdown  Markdown
	Now       time.Time
}

// HomeData is the view model for the home page.
type HomeData struct {
	Lang      string
	Path      string
	Nav       []nav.RenderedItem
	SEO       seo.Meta
	Analytics Analytics

	Header    HeaderView
	Hero      HeroView
	About     AboutView
	Video     *VideoView
	Gallery   GalleryView
	Amenities AmenitiesView
	Guide     []GuideEntry
	Rules     RulesView
	Contact   ContactView
	Footer    FooterView
}

type HeaderView struct {
	Name         string
	LocationLine string
	BookingURL   string
	// ContactURL is the messaging link, or the booking page without one.
	ContactURL   string
	SocialURL    string
}

type HeroView struct {
	Tagline     string
	Name        string
	Description []string
	Highlights  []string
	Background  listing.Photo
	Thumbnails  []listing.Photo
	Schedule    string
	BookingURL  string
}

type AboutView struct {
	HTML    template.HTML
	Address string
	Notes   string
}

type VideoView struct {
	Src    string
	Poster listing.Photo
}

type GalleryView struct {
	Tiles      []gallery.Tile
	View       *gallery.View
	BookingURL string
}

type AmenitiesView struct {
	Groups      []listing.AmenityGroup
	NotIncluded []string
	SafetyNotes []listing.Note
}

type GuideEntry struct {
	Name           string
	Description    string
	Recommendation string
}

type RulesView struct {
	CheckIn  string
	CheckOut string
	// SelfCheckIn is empty when the listing does not say.
	SelfCheckIn  string
	HouseRules   []string
	Sections     []listing.RuleSection
	Prohibitions []string
}

type ContactView struct {
	BookingURL string
	// MessagingURL is empty when no messaging channel exists; the button is
	// then hidden.
	MessagingURL     string
	SuggestedMessage string
}

type FooterView struct {
	Name         string
	BookingURL   string
	SocialURL    string
	SocialHandle string
	Year         int
}

// BuildHomeData maps the listing and the resolved photo sequence onto the
// page sections.
func BuildHomeData(in HomeInput) (HomeData, error) {
	l := in.Listing
	seq := in.Photos
	if len(seq) == 0 {
		seq = []listing.Photo{photos.Placeholder}
	}
	g := in.Gallery
	if g == nil {
		g = gallery.New(seq, nil)
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	t := func(key string) string { return in.Text.T(in.Lang, key) }
	tf := func(key string, args ...any) string { return in.Text.TF(in.Lang, key, args...) }

	about, err := in.Markdown.Render(l.About)
	if err != nil {
		return HomeData{}, fmt.Errorf("render about: %w", err)
	}

	active := ""
	if _, open := g.Open(); open {
		active = nav.SectionPhotos
	}

	vm := HomeData{
		Lang:      in.Lang,
		Path:      in.Path,
		Analytics: in.Analytics,
		Nav: nav.Build(nav.Options{
			HasVideo:  l.Video != "",
			HasGuide:  len(l.LocalGuide) > 0,
			SocialURL: l.SocialURL,
			Active:    active,
		}),
		Header: HeaderView{
			Name:         l.Name,
			LocationLine: l.LocationLine,
			BookingURL:   l.BookingURL,
			ContactURL:   l.ContactURL(),
			SocialURL:    l.SocialURL,
		},
		Hero: HeroView{
			Tagline:     l.Tagline,
			Name:        l.Name,
			Description: l.Description,
			Highlights:  firstN(l.Highlights, 5),
			Background:  photos.Hero(seq),
			Thumbnails:  photos.First(seq, 3),
			Schedule:    heroSchedule(l, in.Lang, t, tf),
			BookingURL:  l.BookingURL,
		},
		About: AboutView{HTML: about, Address: l.Address, Notes: l.Notes},
		Gallery: GalleryView{
			Tiles:      g.Tiles(),
			View:       g.View(),
			BookingURL: l.BookingURL,
		},
		Amenities: AmenitiesView{
			Groups:      l.AmenityGroups,
			NotIncluded: l.NotIncluded,
			SafetyNotes: l.SafetyNotes,
		},
		Rules: buildRules(l, in.Lang, t, tf),
		Contact: ContactView{
			BookingURL:       l.BookingURL,
			MessagingURL:     l.MessagingURL,
			SuggestedMessage: l.SuggestedMsg,
		},
		Footer: FooterView{
			Name:         l.Name,
			BookingURL:   l.BookingURL,
			SocialURL:    l.SocialURL,
			SocialHandle: l.SocialHandle,
			Year:         now.Year(),
		},
	}
	if vm.Hero.Tagline == "" {
		vm.Hero.Tagline = t("hero.tagline_default")
	}
	if l.Video != "" {
		vm.Video = &VideoView{Src: l.Video, Poster: seq[0]}
	}
	for _, p := range l.LocalGuide {
		e := GuideEntry{Name: p.Name, Description: p.Description}
		if p.Recommendations > 0 {
			e.Recommendation = tf("guide.recommend", format.Count(p.Recommendations, in.Lang))
		} else {
			e.Recommendation = t("guide.many")
		}
		vm.Guide = append(vm.Guide, e)
	}
	vm.SEO = seo.Build(l, in.BaseURL, in.Lang, tf("meta.description", l.Name), vm.Hero.Background, seq)
	return vm, nil
}

func heroSchedule(l listing.Listing, lang string, t func(string) string, tf func(string, ...any) string) string {
	s := t("checkin.ask")
	if l.HasCheckIn() {
		s = tf("checkin.from", format.ClockTime(l.CheckInOut.CheckInFrom, lang))
	}
	if l.HasCheckOut() {
		s += " • " + tf("checkout.until", format.ClockTime(l.CheckInOut.CheckOutUntil, lang))
	}
	return s
}

func buildRules(l listing.Listing, lang string, t func(string) string, tf func(string, ...any) string) RulesView {
	rv := RulesView{
		CheckIn:      t("checkin.unknown"),
		CheckOut:     t("checkout.unknown"),
		HouseRules:   l.HouseRules,
		Sections:     l.RuleSections,
		Prohibitions: l.Prohibitions,
	}
	if l.HasCheckIn() {
		rv.CheckIn = tf("checkin.from", format.ClockTime(l.CheckInOut.CheckInFrom, lang))
	}
	if l.HasCheckOut() {
		rv.CheckOut = tf("checkout.until", format.ClockTime(l.CheckInOut.CheckOutUntil, lang))
	}
	if self, known := l.SelfCheckIn(); known {
		if self {
			rv.SelfCheckIn = t("checkin.self")
		} else {
			rv.SelfCheckIn = t("checkin.host")
		}
	}
	return rv
}

func firstN(v []string, n int) []string {
	if len(v) <= n {
		return v
	}
	return v[:n]
}
