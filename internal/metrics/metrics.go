// Package metrics provides Prometheus metrics for the listing site.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SiteMetrics groups the counters the handlers update. All methods are safe
// on a nil receiver so callers need not check whether metrics are enabled.
type SiteMetrics struct {
	PageRendersTotal   *prometheus.CounterVec // by lang
	GalleryEventsTotal *prometheus.CounterVec // by action: open, close, invalid
	PhotoSourceTotal   *prometheus.CounterVec // by source: discovered, static, placeholder
	BlockedImagesTotal prometheus.Counter

	registry *prometheus.Registry
}

// New creates the metrics and registers them, along with the Go and process
// collectors, on registry.
func New(registry *prometheus.Registry) (*SiteMetrics, error) {
	m := &SiteMetrics{registry: registry}
	m.PageRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flatweb_page_renders_total",
			Help: "Total number of home page renders by language",
		},
		[]string{"lang"},
	)
	m.GalleryEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flatweb_gallery_events_total",
			Help: "Total number of gallery viewer fragment requests by action",
		},
		[]string{"action"},
	)
	m.PhotoSourceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flatweb_photo_source_total",
			Help: "Total number of photo sequence resolutions by source",
		},
		[]string{"source"},
	)
	m.BlockedImagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flatweb_blocked_remote_images_total",
			Help: "Distinct remote image sources rejected by the allow-list",
		},
	)
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register site metrics: %w", err)
	}
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register runtime collector: %w", err)
		}
	}
	return m, nil
}

// Describe implements prometheus.Collector.
func (m *SiteMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.PageRendersTotal.Describe(ch)
	m.GalleryEventsTotal.Describe(ch)
	m.PhotoSourceTotal.Describe(ch)
	m.BlockedImagesTotal.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *SiteMetrics) Collect(ch chan<- prometheus.Metric) {
	m.PageRendersTotal.Collect(ch)
	m.GalleryEventsTotal.Collect(ch)
	m.PhotoSourceTotal.Collect(ch)
	m.BlockedImagesTotal.Collect(ch)
}

// PageRendered counts a home page render.
func (m *SiteMetrics) PageRendered(lang string) {
	if m == nil {
		return
	}
	m.PageRendersTotal.WithLabelValues(lang).Inc()
}

// GalleryEvent counts a viewer fragment request.
func (m *SiteMetrics) GalleryEvent(action string) {
	if m == nil {
		return
	}
	m.GalleryEventsTotal.WithLabelValues(action).Inc()
}

// PhotoSource counts which source fed the photo sequence.
func (m *SiteMetrics) PhotoSource(source string) {
	if m == nil {
		return
	}
	m.PhotoSourceTotal.WithLabelValues(source).Inc()
}

// ImageBlocked counts a rejected remote image.
func (m *SiteMetrics) ImageBlocked() {
	if m == nil {
		return
	}
	m.BlockedImagesTotal.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *SiteMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
