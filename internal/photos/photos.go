// Package photos builds the photo sequence shown by the hero and gallery
// sections.
package photos

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"mapprio.com/flat-web/internal/listing"
)

// Source tells where a resolved sequence came from.
type Source string

const (
	SourceDiscovered  Source = "discovered"
	SourceStatic      Source = "static"
	SourcePlaceholder Source = "placeholder"
)

// Placeholder is substituted when no photo is available at all.
var Placeholder = listing.Photo{Src: "/images/placeholder.jpg", Alt: "Imagem do apartamento"}

var extensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".avif": {},
	".png":  {},
	".webp": {},
}

// IsImage reports whether name carries a recognised image extension.
func IsImage(name string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Discover lists image files in dir sorted by filename. Each photo is
// addressed as urlPrefix + "/" + name, with name path-escaped; Alt keeps
// the raw name. A file whose URL equals Placeholder.Src is deliberately
// excluded: it is the stand-in shown when there are no photos, not a photo
// of the property. Any failure yields an empty result.
func Discover(dir, urlPrefix string) []listing.Photo {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsImage(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	prefix := "/" + strings.Trim(urlPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	out := make([]listing.Photo, 0, len(names))
	for _, name := range names {
		src := prefix + "/" + url.PathEscape(name)
		if src == Placeholder.Src {
			continue
		}
		out = append(out, listing.Photo{
			Src: src,
			Alt: AltFromName(name),
		})
	}
	return out
}

// AltFromName strips the final extension and turns '-' and '_' into spaces.
func AltFromName(name string) string {
	base := strings.TrimSuffix(name, path.Ext(name))
	return strings.NewReplacer("-", " ", "_", " ").Replace(base)
}

// Resolve applies the fallback policy used by every section of the page:
// discovered photos, else the listing's static photos, else the placeholder.
// The returned slice is never empty.
func Resolve(discovered, fallback []listing.Photo) ([]listing.Photo, Source) {
	switch {
	case len(discovered) > 0:
		return discovered, SourceDiscovered
	case len(fallback) > 0:
		return fallback, SourceStatic
	default:
		return []listing.Photo{Placeholder}, SourcePlaceholder
	}
}

// Hero picks the hero background: the third photo when present, else the first.
func Hero(seq []listing.Photo) listing.Photo {
	if len(seq) == 0 {
		return Placeholder
	}
	if len(seq) > 2 {
		return seq[2]
	}
	return seq[0]
}

// First returns up to n leading photos.
func First(seq []listing.Photo, n int) []listing.Photo {
	if n < 0 {
		n = 0
	}
	if len(seq) < n {
		n = len(seq)
	}
	return seq[:n]
}
