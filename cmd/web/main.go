package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"mapprio.com/flat-web/internal/config"
	"mapprio.com/flat-web/internal/listing"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	fs := config.Flags("flat-web")
	cfg, err := config.Load(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	l, err := listing.Load(cfg.ListingFile)
	if err != nil {
		log.WithError(err).WithField("listing", cfg.ListingFile).Fatal("load listing")
	}

	s, err := newServer(cfg, log, l, prometheus.NewRegistry())
	if err != nil {
		log.WithError(err).Fatal("init server")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":    cfg.Addr,
		"dev":     cfg.Dev,
		"listing": l.Name,
		"images":  cfg.ImagesDir,
	}).Info("web listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("listen")
	}
}
