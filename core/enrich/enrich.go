package enrich

import (
	"context"
	"log/slog"

	"github.com/seoscope/seoscope/providers/dataforseo"
)

const (
	// DefaultLocationCode targets the United States, DataForSEO's broadest
	// single market.
	DefaultLocationCode = 2840

	// DefaultDateFrom is the default start of the historical search-volume
	// window.
	DefaultDateFrom = "2021-08-01"
)

// Metric is the normalized per-keyword record built from a DataForSEO
// result. Missing provider fields are replaced with the documented defaults:
// "Unknown" keyword, zero volume/index/CPC, "UNKNOWN" competition label.
type Metric struct {
	Keyword          string  `json:"keyword"`
	SearchVolume     int     `json:"search_volume"`
	Competition      string  `json:"competition"`
	CompetitionIndex int     `json:"competition_index"`
	CPC              float64 `json:"cpc"`
}

// SearchVolumeEnricher fetches search-volume metrics for keyword batches
// through a DataForSEO client.
type SearchVolumeEnricher struct {
	client       *dataforseo.Client
	locationCode int
	dateFrom     string
	logger       *slog.Logger
}

// NewSearchVolumeEnricher creates an enricher with the default location code
// and historical window.
func NewSearchVolumeEnricher(client *dataforseo.Client) *SearchVolumeEnricher {
	return &SearchVolumeEnricher{
		client:       client,
		locationCode: DefaultLocationCode,
		dateFrom:     DefaultDateFrom,
		logger:       slog.Default(),
	}
}

// WithLocation sets the geographic location code for volume lookups.
func (e *SearchVolumeEnricher) WithLocation(code int) *SearchVolumeEnricher {
	if code > 0 {
		e.locationCode = code
	}
	return e
}

// WithDateFrom sets the start date (YYYY-MM-DD) of the historical window.
func (e *SearchVolumeEnricher) WithDateFrom(dateFrom string) *SearchVolumeEnricher {
	if dateFrom != "" {
		e.dateFrom = dateFrom
	}
	return e
}

// WithLogger sets the logger used for unavailability warnings.
func (e *SearchVolumeEnricher) WithLogger(logger *slog.Logger) *SearchVolumeEnricher {
	if logger != nil {
		e.logger = logger
	}
	return e
}

// Enrich issues one batched search-volume request for the full keyword list
// and returns the normalized metrics.
//
// The second return value reports availability. It is false when the provider
// answers with a non-success status code, when the call itself fails, or when
// the provider returns no results; all three cases are logged and none is an
// error. When metrics are returned, there is one per keyword the provider
// recognized, which may be fewer than were asked for.
func (e *SearchVolumeEnricher) Enrich(ctx context.Context, keywords []string) ([]Metric, bool) {
	if len(keywords) == 0 {
		return nil, false
	}

	e.logger.Info("fetching search volume data", "keywords", len(keywords), "location_code", e.locationCode)

	resp, err := e.client.SearchVolumeLive(ctx, dataforseo.SearchVolumeTask{
		LocationCode:   e.locationCode,
		Keywords:       keywords,
		DateFrom:       e.dateFrom,
		SearchPartners: true,
	})
	if err != nil {
		e.logger.Warn("failed to retrieve search volume data", "error", err.Error())
		return nil, false
	}

	if resp.StatusCode != dataforseo.StatusOK {
		e.logger.Warn("DataForSEO API error", "status_code", resp.StatusCode, "status_message", resp.StatusMessage)
		return nil, false
	}

	if len(resp.Tasks) == 0 || len(resp.Tasks[0].Result) == 0 {
		e.logger.Warn("search volume data unavailable: empty result")
		return nil, false
	}

	metrics := make([]Metric, 0, len(resp.Tasks[0].Result))
	for _, r := range resp.Tasks[0].Result {
		metrics = append(metrics, normalize(r))
	}
	return metrics, true
}

// normalize substitutes documented defaults for fields the provider omitted.
func normalize(r dataforseo.KeywordResult) Metric {
	m := Metric{
		Keyword:     "Unknown",
		Competition: "UNKNOWN",
	}
	if r.Keyword != nil && *r.Keyword != "" {
		m.Keyword = *r.Keyword
	}
	if r.SearchVolume != nil {
		m.SearchVolume = *r.SearchVolume
	}
	if r.Competition != nil && *r.Competition != "" {
		m.Competition = *r.Competition
	}
	if r.CompetitionIndex != nil {
		m.CompetitionIndex = *r.CompetitionIndex
	}
	if r.CPC != nil {
		m.CPC = *r.CPC
	}
	return m
}
