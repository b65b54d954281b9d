package main

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"mapprio.com/flat-web/internal/cms"
	"mapprio.com/flat-web/internal/config"
	handlersPkg "mapprio.com/flat-web/internal/handlers"
	"mapprio.com/flat-web/internal/i18n"
	"mapprio.com/flat-web/internal/images"
	"mapprio.com/flat-web/internal/listing"
	"mapprio.com/flat-web/internal/metrics"
	mw "mapprio.com/flat-web/internal/middleware"
	"mapprio.com/flat-web/internal/photos"
)

// server carries the dependencies shared by every handler. Everything in it
// is read-only once newServer returns.
type server struct {
	cfg       config.Config
	log       logrus.FieldLogger
	listing   listing.Listing
	bundle    *i18n.Bundle
	markdown  *cms.Renderer
	images    *images.Allowlist
	metrics   *metrics.SiteMetrics
	analytics handlersPkg.Analytics
	tmpl      *template.Template
}

// newServer wires the site. reg may be nil, in which case metrics are off
// regardless of cfg.Metrics.
func newServer(cfg config.Config, log logrus.FieldLogger, l listing.Listing, reg *prometheus.Registry) (*server, error) {
	bundle, err := i18n.Load(cfg.LocalesDir, cfg.DefaultLang, []string{"pt", "en"})
	if err != nil {
		return nil, fmt.Errorf("load i18n: %w", err)
	}
	s := &server{
		cfg:       cfg,
		log:       log,
		listing:   l.Clone(),
		bundle:    bundle,
		markdown:  cms.NewRenderer(),
		analytics: handlersPkg.NewAnalytics(cfg),
	}
	if cfg.Metrics && reg != nil {
		m, err := metrics.New(reg)
		if err != nil {
			return nil, err
		}
		s.metrics = m
	}
	patterns := images.ParsePatterns(cfg.RemoteImages)
	if len(patterns) == 0 {
		patterns = images.DefaultPatterns
	}
	s.images = images.NewAllowlist(patterns, photos.Placeholder.Src, func(src string) {
		s.log.WithField("src", src).Warn("remote image not in allow-list")
		s.metrics.ImageBlocked()
	})
	if !cfg.Dev {
		// Parse templates once in production
		tc, err := s.parseTemplates()
		if err != nil {
			return nil, fmt.Errorf("parse templates: %w", err)
		}
		s.tmpl = tc
	}
	return s, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Locale(s.bundle))
	r.Use(mw.Logger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	r.Handle("/assets/*", mw.AssetsWithCache(filepath.Join(s.cfg.PublicDir, "assets"), "/assets", 24*time.Hour))
	r.Handle(s.cfg.ImagesPrefix+"/*", mw.AssetsWithCache(s.cfg.ImagesDir, s.cfg.ImagesPrefix, time.Hour))

	r.Group(func(r chi.Router) {
		r.Use(mw.VaryLocale)
		r.Get("/", s.HomeHandler)
		r.Get("/gallery/close", s.GalleryCloseFrag)
		r.Get("/gallery/{index}", s.GalleryFrag)
	})

	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	return r
}
