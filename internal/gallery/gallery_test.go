package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapprio.com/flat-web/internal/listing"
	"mapprio.com/flat-web/internal/photos"
)

func samplePhotos(n int) []listing.Photo {
	out := make([]listing.Photo, n)
	for i := range out {
		out[i] = listing.Photo{Src: "/images/" + string(rune('a'+i)) + ".jpg", Alt: string(rune('A' + i))}
	}
	return out
}

func TestTilesMatchInputOrder(t *testing.T) {
	seq := samplePhotos(5)
	g := New(seq, nil)
	tiles := g.Tiles()
	require.Len(t, tiles, len(seq))
	for i, tile := range tiles {
		assert.Equal(t, i, tile.Index)
		assert.Equal(t, seq[i], tile.Photo)
		assert.Equal(t, FitCover, tile.Fit)
	}
}

func TestEmptyInputUsesPlaceholder(t *testing.T) {
	for _, seq := range [][]listing.Photo{nil, {}} {
		g := New(seq, nil)
		tiles := g.Tiles()
		require.Len(t, tiles, 1)
		assert.Equal(t, photos.Placeholder, tiles[0].Photo)
	}
}

func TestStartsClosed(t *testing.T) {
	d := NewDispatcher()
	g := New(samplePhotos(3), d)
	_, open := g.Open()
	assert.False(t, open)
	assert.Nil(t, g.View())
	assert.Zero(t, d.Listeners())
}

func TestSelectOpensIndex(t *testing.T) {
	seq := samplePhotos(4)
	d := NewDispatcher()
	g := New(seq, d)

	require.NoError(t, g.Select(2))
	idx, open := g.Open()
	assert.True(t, open)
	assert.Equal(t, 2, idx)

	v := g.View()
	require.NotNil(t, v)
	assert.Equal(t, seq[2], v.Photo)
	assert.Equal(t, FitContain, v.Fit)
	assert.Equal(t, 4, v.Total)
	assert.Equal(t, 1, d.Listeners())
	assert.True(t, g.Listening())
}

func TestReselectKeepsSingleListener(t *testing.T) {
	d := NewDispatcher()
	g := New(samplePhotos(4), d)
	require.NoError(t, g.Select(0))
	require.NoError(t, g.Select(3))
	assert.Equal(t, 1, d.Listeners())
	idx, _ := g.Open()
	assert.Equal(t, 3, idx)
}

func TestSelectOutOfRange(t *testing.T) {
	d := NewDispatcher()
	g := New(samplePhotos(2), d)
	for _, i := range []int{-1, 2, 99} {
		err := g.Select(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	_, open := g.Open()
	assert.False(t, open)
	assert.Zero(t, d.Listeners())

	require.NoError(t, g.Select(1))
	assert.ErrorIs(t, g.Select(5), ErrIndexOutOfRange)
	idx, open := g.Open()
	assert.True(t, open)
	assert.Equal(t, 1, idx)
}

func TestEscapeCloses(t *testing.T) {
	d := NewDispatcher()
	g := New(samplePhotos(3), d)
	require.NoError(t, g.Select(1))

	d.Dispatch(KeyEvent{Key: "Enter"})
	_, open := g.Open()
	assert.True(t, open, "non-Escape keys are ignored")

	d.Dispatch(KeyEvent{Key: KeyEscape})
	_, open = g.Open()
	assert.False(t, open)
	assert.Zero(t, d.Listeners())
}

func TestBackgroundClickClosesImageClickDoesNot(t *testing.T) {
	d := NewDispatcher()
	g := New(samplePhotos(3), d)
	require.NoError(t, g.Select(0))

	g.Click(TargetImage)
	_, open := g.Open()
	assert.True(t, open)
	assert.Equal(t, 1, d.Listeners())

	g.Click(TargetBackground)
	_, open = g.Open()
	assert.False(t, open)
	assert.Zero(t, d.Listeners())
}

func TestCloseButton(t *testing.T) {
	d := NewDispatcher()
	g := New(samplePhotos(3), d)
	require.NoError(t, g.Select(2))
	g.Click(TargetCloseButton)
	_, open := g.Open()
	assert.False(t, open)
	assert.Zero(t, d.Listeners())
}

func TestEscapeAfterCloseHasNoEffect(t *testing.T) {
	d := NewDispatcher()
	g := New(samplePhotos(3), d)
	require.NoError(t, g.Select(1))
	g.Close()

	assert.NotPanics(t, func() { d.Dispatch(KeyEvent{Key: KeyEscape}) })
	_, open := g.Open()
	assert.False(t, open)
	assert.Zero(t, d.Listeners())

	g.Close()
	g.Click(TargetBackground)
	_, open = g.Open()
	assert.False(t, open)
}

func TestUnmountReleasesListener(t *testing.T) {
	d := NewDispatcher()
	g := New(samplePhotos(3), d)
	require.NoError(t, g.Select(1))
	g.Unmount()

	assert.Zero(t, d.Listeners())
	assert.False(t, g.Listening())
	assert.ErrorIs(t, g.Select(0), ErrUnmounted)
	d.Dispatch(KeyEvent{Key: KeyEscape})
	_, open := g.Open()
	assert.False(t, open)
}

func TestGalleriesShareDispatcher(t *testing.T) {
	d := NewDispatcher()
	a := New(samplePhotos(2), d)
	b := New(samplePhotos(2), d)
	require.NoError(t, a.Select(0))
	require.NoError(t, b.Select(1))
	assert.Equal(t, 2, d.Listeners())

	d.Dispatch(KeyEvent{Key: KeyEscape})
	_, aOpen := a.Open()
	_, bOpen := b.Open()
	assert.False(t, aOpen)
	assert.False(t, bOpen)
	assert.Zero(t, d.Listeners())
}

func TestPhotosIsACopy(t *testing.T) {
	seq := samplePhotos(2)
	g := New(seq, nil)
	seq[0].Alt = "mutated"
	got := g.Photos()
	assert.Equal(t, "A", got[0].Alt)
	got[1].Alt = "mutated"
	assert.Equal(t, "B", g.Photos()[1].Alt)
}

func TestSubscriptionReleaseIdempotent(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	s := d.Subscribe(func(KeyEvent) { calls++ })
	d.Dispatch(KeyEvent{Key: "a"})
	s.Release()
	s.Release()
	d.Dispatch(KeyEvent{Key: "a"})
	assert.Equal(t, 1, calls)
	assert.False(t, s.Active())
	var nilSub *Subscription
	assert.NotPanics(t, nilSub.Release)
}
