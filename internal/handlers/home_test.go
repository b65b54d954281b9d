package handlers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapprio.com/flat-web/internal/cms"
	"mapprio.com/flat-web/internal/config"
	"mapprio.com/flat-web/internal/gallery"
	"mapprio.com/flat-web/internal/listing"
	"mapprio.com/flat-web/internal/nav"
	"mapprio.com/flat-web/internal/photos"
)

type keyText struct{}

func (keyText) T(_, key string) string { return key }
func (keyText) TF(_, key string, args ...any) string {
	return key + fmt.Sprint(args...)
}

func boolPtr(v bool) *bool { return &v }

func baseListing() listing.Listing {
	return listing.Listing{
		Name:       "Flat",
		BookingURL: "https://www.airbnb.com.br/rooms/1",
		Highlights: []string{"a", "b", "c", "d", "e", "f"},
		Photos: []listing.Photo{
			{Src: "/images/01.jpg", Alt: "Sala"},
			{Src: "/images/02.jpg", Alt: "Quarto"},
		},
		About: "### O espaço\n\nConfortável.",
	}
}

func build(t *testing.T, in HomeInput) HomeData {
	t.Helper()
	if in.Text == nil {
		in.Text = keyText{}
	}
	if in.Markdown == nil {
		in.Markdown = cms.NewRenderer()
	}
	if in.Lang == "" {
		in.Lang = "pt"
	}
	vm, err := BuildHomeData(in)
	require.NoError(t, err)
	return vm
}

func TestBuildHomeDataOptionalFieldsAbsent(t *testing.T) {
	l := baseListing()
	vm := build(t, HomeInput{Listing: l, Photos: l.Photos})

	assert.Equal(t, "hero.tagline_default", vm.Hero.Tagline)
	assert.Len(t, vm.Hero.Highlights, 5)
	assert.Equal(t, l.BookingURL, vm.Header.ContactURL)
	assert.Empty(t, vm.Header.LocationLine)
	assert.Empty(t, vm.Contact.MessagingURL)
	assert.Nil(t, vm.Video)
	assert.Empty(t, vm.Guide)
	assert.Equal(t, "checkin.ask", vm.Hero.Schedule)
	assert.Equal(t, "checkin.unknown", vm.Rules.CheckIn)
	assert.Equal(t, "checkout.unknown", vm.Rules.CheckOut)
	assert.Empty(t, vm.Rules.SelfCheckIn)
	for _, it := range vm.Nav {
		assert.NotEqual(t, "#"+nav.SectionVideo, it.Href)
		assert.False(t, it.External)
	}
	assert.Contains(t, string(vm.About.HTML), "<h3")
}

func TestBuildHomeDataCheckInOut(t *testing.T) {
	l := baseListing()
	l.CheckInOut = &listing.CheckInOut{CheckInFrom: "15:00", CheckOutUntil: "11:00", SelfCheckIn: boolPtr(false)}
	vm := build(t, HomeInput{Listing: l, Photos: l.Photos})

	assert.Equal(t, "checkin.from15:00 • checkout.until11:00", vm.Hero.Schedule)
	assert.Equal(t, "checkin.from15:00", vm.Rules.CheckIn)
	assert.Equal(t, "checkin.host", vm.Rules.SelfCheckIn)

	vm = build(t, HomeInput{Listing: l, Photos: l.Photos, Lang: "en"})
	assert.Equal(t, "checkin.from3:00 PM", vm.Rules.CheckIn)
}

func TestBuildHomeDataSharesOnePhotoSequence(t *testing.T) {
	l := baseListing()
	l.Video = "/images/video_1.mp4"
	seq := []listing.Photo{
		{Src: "/images/a.jpg", Alt: "a"},
		{Src: "/images/b.jpg", Alt: "b"},
		{Src: "/images/c.jpg", Alt: "c"},
		{Src: "/images/d.jpg", Alt: "d"},
	}
	vm := build(t, HomeInput{Listing: l, Photos: seq})

	assert.Equal(t, seq[2], vm.Hero.Background)
	assert.Equal(t, seq[:3], vm.Hero.Thumbnails)
	require.NotNil(t, vm.Video)
	assert.Equal(t, seq[0], vm.Video.Poster)
	require.Len(t, vm.Gallery.Tiles, 4)
	for i, tile := range vm.Gallery.Tiles {
		assert.Equal(t, seq[i], tile.Photo)
	}
	assert.Nil(t, vm.Gallery.View)
}

func TestBuildHomeDataEmptyPhotosUsesPlaceholder(t *testing.T) {
	l := baseListing()
	vm := build(t, HomeInput{Listing: l})

	require.Len(t, vm.Gallery.Tiles, 1)
	assert.Equal(t, photos.Placeholder, vm.Gallery.Tiles[0].Photo)
	assert.Equal(t, photos.Placeholder, vm.Hero.Background)
}

func TestBuildHomeDataOpenGallery(t *testing.T) {
	l := baseListing()
	g := gallery.New(l.Photos, nil)
	require.NoError(t, g.Select(1))
	vm := build(t, HomeInput{Listing: l, Photos: l.Photos, Gallery: g})

	require.NotNil(t, vm.Gallery.View)
	assert.Equal(t, 1, vm.Gallery.View.Index)
	assert.Equal(t, gallery.FitContain, vm.Gallery.View.Fit)
	var active []string
	for _, it := range vm.Nav {
		if it.Active {
			active = append(active, it.Href)
		}
	}
	assert.Equal(t, []string{"#" + nav.SectionPhotos}, active)
}

func TestBuildHomeDataGuideAndFooter(t *testing.T) {
	l := baseListing()
	l.MessagingURL = "https://wa.me/5511999999999"
	l.SocialURL = "https://www.instagram.com/flat.801b"
	l.SocialHandle = "@flat.801b"
	l.LocalGuide = []listing.Place{{Name: "Teatro", Recommendations: 1562}, {Name: "Sé"}}
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	vm := build(t, HomeInput{Listing: l, Photos: l.Photos, Now: now})

	require.Len(t, vm.Guide, 2)
	assert.Equal(t, "guide.recommend1.562", vm.Guide[0].Recommendation)
	assert.Equal(t, "guide.many", vm.Guide[1].Recommendation)
	assert.Equal(t, l.MessagingURL, vm.Header.ContactURL)
	assert.Equal(t, l.MessagingURL, vm.Contact.MessagingURL)
	assert.Equal(t, 2025, vm.Footer.Year)
	last := vm.Nav[len(vm.Nav)-1]
	assert.True(t, last.External)
	assert.Equal(t, l.SocialURL, last.Href)
}

func TestNewAnalytics(t *testing.T) {
	a := NewAnalytics(config.Config{Dev: true, Analytics: config.Analytics{GA4MeasurementID: "G-1"}})
	assert.True(t, a.Enabled())
	assert.True(t, a.Debug)
	assert.False(t, Analytics{}.Enabled())
}
