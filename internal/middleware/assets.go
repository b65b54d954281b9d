package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// AssetsWithCache serves files under dir, mounted at prefix, with
// Cache-Control, Vary and ETag handling. Directory listings are not served.
//
// Photos may be dropped into dir while the server runs, so ETags are
// computed on first request and recomputed when a file's size or
// modification time changes.
func AssetsWithCache(dir, prefix string, maxAge time.Duration) http.Handler {
	prefix = "/" + strings.Trim(prefix, "/")
	tags := &etagCache{dir: dir, entries: map[string]etagEntry{}}
	cacheControl := fmt.Sprintf("public, max-age=%d, stale-while-revalidate=86400", int(maxAge.Seconds()))
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(r.URL.Path, prefix)
		if rel == "" || strings.HasSuffix(rel, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", cacheControl)
		if et := tags.get(rel); et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

type etagEntry struct {
	size  int64
	mod   time.Time
	value string
}

type etagCache struct {
	dir     string
	mu      sync.Mutex
	entries map[string]etagEntry
}

// get returns the ETag of the regular file at rel, or "" when there is none.
func (c *etagCache) get(rel string) string {
	clean := path.Clean("/" + rel)
	full := filepath.Join(c.dir, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}
	c.mu.Lock()
	e, ok := c.entries[clean]
	c.mu.Unlock()
	if ok && e.size == info.Size() && e.mod.Equal(info.ModTime()) {
		return e.value
	}
	et, err := fileETag(full)
	if err != nil {
		return ""
	}
	c.mu.Lock()
	c.entries[clean] = etagEntry{size: info.Size(), mod: info.ModTime(), value: et}
	c.mu.Unlock()
	return et
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
