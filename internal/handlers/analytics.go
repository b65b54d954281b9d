package handlers

import "mapprio.com/flat-web/internal/config"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
	Debug            bool
}

// NewAnalytics builds Analytics from the resolved configuration. Dev mode
// turns on debug_mode for GA4.
func NewAnalytics(c config.Config) Analytics {
	return Analytics{
		GA4MeasurementID: c.Analytics.GA4MeasurementID,
		GTMContainerID:   c.Analytics.GTMContainerID,
		Debug:            c.Dev,
	}
}

// Enabled reports whether any tag should be rendered.
func (a Analytics) Enabled() bool {
	return a.GA4MeasurementID != "" || a.GTMContainerID != ""
}
