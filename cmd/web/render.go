package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"mapprio.com/flat-web/internal/gallery"
	mw "mapprio.com/flat-web/internal/middleware"
)

// lightboxData is the payload of the viewer fragment, both when it is
// swapped in by htmx and when the page is rendered with ?foto=.
type lightboxData struct {
	Lang string
	View *gallery.View
}

func (s *server) funcMap() template.FuncMap {
	return template.FuncMap{
		"now": time.Now,
		"t": func(lang, key string) string {
			return s.bundle.T(lang, key)
		},
		"tf": func(lang, key string, args ...any) string {
			return s.bundle.TF(lang, key, args...)
		},
		"imgsrc": s.images.Src,
		"add":    func(a, b int) int { return a + b },
		"lightbox": func(lang string, v *gallery.View) lightboxData {
			return lightboxData{Lang: lang, View: v}
		},
	}
}

func (s *server) parseTemplates() (*template.Template, error) {
	dir := s.cfg.TemplatesDir
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}
	return template.New("_root").Funcs(s.funcMap()).ParseFiles(files...)
}

// templates returns the parsed set. In dev mode, templates are reparsed on
// each request.
func (s *server) templates() (*template.Template, error) {
	if s.cfg.Dev {
		return s.parseTemplates()
	}
	if s.tmpl == nil {
		return nil, fmt.Errorf("template not initialized")
	}
	return s.tmpl, nil
}

// renderPage executes the base layout.
func (s *server) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	s.renderTemplate(w, r, "base", data)
}

// renderTemplate executes a named template into a buffer first so that a
// failing template never leaves a half-written page behind.
func (s *server) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, err := s.templates()
	if err != nil {
		s.log.WithError(err).Error("template parse")
		mw.WriteError(w, r, http.StatusInternalServerError, "template parse error")
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.WithError(err).WithField("template", name).Error("template exec")
		mw.WriteError(w, r, http.StatusInternalServerError, "template exec error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
