package main

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"mapprio.com/flat-web/internal/gallery"
	handlersPkg "mapprio.com/flat-web/internal/handlers"
	"mapprio.com/flat-web/internal/listing"
	mw "mapprio.com/flat-web/internal/middleware"
	"mapprio.com/flat-web/internal/photos"
)

// photoSequence scans the images directory and applies the fallback policy.
// It runs on every render so new files show up without a restart.
func (s *server) photoSequence() []listing.Photo {
	seq, src := photos.Resolve(photos.Discover(s.cfg.ImagesDir, s.cfg.ImagesPrefix), s.listing.Photos)
	s.metrics.PhotoSource(string(src))
	return seq
}

// mountGallery builds a gallery for one request. The caller must Unmount it.
func (s *server) mountGallery() *gallery.Gallery {
	return gallery.New(s.photoSequence(), gallery.NewDispatcher())
}

// HomeHandler renders the landing page. ?foto=N renders it with photo N
// open in the viewer; an unknown N renders the gallery closed.
func (s *server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	g := s.mountGallery()
	defer g.Unmount()

	if raw := strings.TrimSpace(r.URL.Query().Get("foto")); raw != "" {
		i, err := strconv.Atoi(raw)
		if err == nil {
			err = g.Select(i)
		}
		if err != nil {
			s.metrics.GalleryEvent("invalid")
		} else {
			s.metrics.GalleryEvent("open")
		}
	}

	vm, err := handlersPkg.BuildHomeData(handlersPkg.HomeInput{
		Listing:   s.listing,
		Photos:    g.Photos(),
		Gallery:   g,
		Lang:      lang,
		Path:      r.URL.Path,
		BaseURL:   s.cfg.BaseURL,
		Analytics: s.analytics,
		Text:      s.bundle,
		Markdown:  s.markdown,
	})
	if err != nil {
		s.log.WithError(err).Error("build home data")
		mw.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	s.renderPage(w, r, vm)
	s.metrics.PageRendered(lang)
}

// GalleryFrag renders the viewer overlay for one photo.
func (s *server) GalleryFrag(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/?foto="+url.QueryEscape(raw)+"#fotos", http.StatusSeeOther)
		return
	}
	g := s.mountGallery()
	defer g.Unmount()

	i, err := strconv.Atoi(raw)
	if err == nil {
		err = g.Select(i)
	}
	if err != nil {
		s.metrics.GalleryEvent("invalid")
		mw.WriteError(w, r, http.StatusNotFound, "photo not found")
		return
	}
	s.metrics.GalleryEvent("open")
	w.Header().Set("HX-Push-Url", "/?foto="+strconv.Itoa(i))
	s.renderTemplate(w, r, "frag_lightbox", lightboxData{Lang: mw.Lang(r), View: g.View()})
}

// GalleryCloseFrag swaps the viewer out for nothing.
func (s *server) GalleryCloseFrag(w http.ResponseWriter, r *http.Request) {
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/#fotos", http.StatusSeeOther)
		return
	}
	s.metrics.GalleryEvent("close")
	w.Header().Set("HX-Push-Url", "/")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}
