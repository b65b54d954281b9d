// Package nav defines the in-page navigation of the listing site.
package nav

// Item is a header navigation entry pointing at a page section or an
// external profile.
type Item struct {
	Anchor   string // section id, e.g. "fotos"
	LabelKey string // i18n key, e.g. "nav.photos"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	External bool
	Active   bool
}

// Section ids. They are part of the public URL surface ("/#fotos").
const (
	SectionAbout     = "sobre"
	SectionVideo     = "video"
	SectionPhotos    = "fotos"
	SectionAmenities = "comodidades"
	SectionGuide     = "guias"
	SectionRules     = "regras"
	SectionContact   = "contato"
)

// Main is the header navigation, in page order.
var Main = []Item{
	{Anchor: SectionAbout, LabelKey: "nav.about"},
	{Anchor: SectionVideo, LabelKey: "nav.video"},
	{Anchor: SectionPhotos, LabelKey: "nav.photos"},
	{Anchor: SectionAmenities, LabelKey: "nav.amenities"},
	{Anchor: SectionGuide, LabelKey: "nav.guide"},
	{Anchor: SectionRules, LabelKey: "nav.rules"},
	{Anchor: SectionContact, LabelKey: "nav.contact"},
}

// Options toggles entries that depend on optional listing data.
type Options struct {
	HasVideo  bool
	HasGuide  bool
	SocialURL string
	// Active marks the section the visitor is looking at (e.g. the gallery
	// when a photo is open).
	Active string
}

// Build renders navigation items. Sections without content are skipped and
// the social profile is appended when configured.
func Build(opts Options) []RenderedItem {
	items := make([]RenderedItem, 0, len(Main)+1)
	for _, it := range Main {
		if it.Anchor == SectionVideo && !opts.HasVideo {
			continue
		}
		if it.Anchor == SectionGuide && !opts.HasGuide {
			continue
		}
		items = append(items, RenderedItem{
			Href:     "#" + it.Anchor,
			LabelKey: it.LabelKey,
			Active:   opts.Active != "" && opts.Active == it.Anchor,
		})
	}
	if opts.SocialURL != "" {
		items = append(items, RenderedItem{
			Href:     opts.SocialURL,
			LabelKey: "nav.social",
			External: true,
		})
	}
	return items
}
