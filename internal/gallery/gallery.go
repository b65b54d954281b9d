// Package gallery implements the photo grid and its full-screen viewer.
//
// A Gallery starts closed. Selecting a tile opens that photo and attaches
// a key listener to the page dispatcher; every way of closing (Escape, a
// click on the dimmed background, the close control, unmounting) detaches
// it again, so a stray Escape after closing never reaches the gallery.
package gallery

import (
	"errors"
	"fmt"

	"mapprio.com/flat-web/internal/listing"
	"mapprio.com/flat-web/internal/photos"
)

var (
	// ErrIndexOutOfRange is returned when a selection does not address a photo.
	ErrIndexOutOfRange = errors.New("gallery: index out of range")
	// ErrUnmounted is returned when a torn-down gallery is used.
	ErrUnmounted = errors.New("gallery: unmounted")
)

// Target identifies what a click landed on while the viewer is open.
type Target int

const (
	// TargetBackground is the dimmed overlay around the photo.
	TargetBackground Target = iota
	// TargetImage is the photo area; clicks there do not reach the background.
	TargetImage
	// TargetCloseButton is the explicit close control.
	TargetCloseButton
)

// Fit describes how a photo is scaled into its box.
type Fit string

const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
)

// Tile is one entry of the thumbnail grid.
type Tile struct {
	Index int
	Photo listing.Photo
	Fit   Fit
}

// View is the full-screen viewer model for the open photo.
type View struct {
	Index int
	Total int
	Photo listing.Photo
	Fit   Fit
}

// Gallery holds the photo sequence and the open/closed state of the viewer.
type Gallery struct {
	photos    []listing.Photo
	events    *Dispatcher
	open      int
	isOpen    bool
	sub       *Subscription
	unmounted bool
}

// New mounts a gallery over seq. An empty seq is replaced by the
// placeholder photo. A nil dispatcher gets a private one.
func New(seq []listing.Photo, events *Dispatcher) *Gallery {
	if len(seq) == 0 {
		seq = []listing.Photo{photos.Placeholder}
	}
	if events == nil {
		events = NewDispatcher()
	}
	return &Gallery{
		photos: append([]listing.Photo(nil), seq...),
		events: events,
	}
}

// Len returns the number of photos in the grid.
func (g *Gallery) Len() int { return len(g.photos) }

// Photos returns a copy of the displayed sequence.
func (g *Gallery) Photos() []listing.Photo {
	return append([]listing.Photo(nil), g.photos...)
}

// Tiles returns one tile per photo in display order.
func (g *Gallery) Tiles() []Tile {
	tiles := make([]Tile, len(g.photos))
	for i, p := range g.photos {
		tiles[i] = Tile{Index: i, Photo: p, Fit: FitCover}
	}
	return tiles
}

// Open returns the open index, if any.
func (g *Gallery) Open() (int, bool) {
	if !g.isOpen {
		return 0, false
	}
	return g.open, true
}

// Select opens the photo at index i. An invalid index leaves the state
// untouched.
func (g *Gallery) Select(i int) error {
	if g.unmounted {
		return ErrUnmounted
	}
	if i < 0 || i >= len(g.photos) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(g.photos))
	}
	g.open = i
	g.isOpen = true
	if !g.sub.Active() {
		g.sub = g.events.Subscribe(g.onKey)
	}
	return nil
}

// Close dismisses the viewer. Closing a closed gallery does nothing.
func (g *Gallery) Close() {
	g.isOpen = false
	g.open = 0
	g.sub.Release()
	g.sub = nil
}

// Click routes a click on the open viewer.
func (g *Gallery) Click(t Target) {
	if !g.isOpen {
		return
	}
	switch t {
	case TargetBackground, TargetCloseButton:
		g.Close()
	case TargetImage:
		// stops at the image
	}
}

// Unmount tears the gallery down, releasing any listener it holds.
func (g *Gallery) Unmount() {
	g.Close()
	g.unmounted = true
}

// Listening reports whether the gallery currently holds a key listener.
func (g *Gallery) Listening() bool { return g.sub.Active() }

// View returns the viewer model, or nil when closed.
func (g *Gallery) View() *View {
	if !g.isOpen {
		return nil
	}
	return &View{
		Index: g.open,
		Total: len(g.photos),
		Photo: g.photos[g.open],
		Fit:   FitContain,
	}
}

func (g *Gallery) onKey(ev KeyEvent) {
	if ev.Key == KeyEscape {
		g.Close()
	}
}
