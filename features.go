package wungo

import (
	"context"
	"time"
)

// Feature names understood by the remote API.
const (
	FeatureAlerts        = "alerts"
	FeatureAlmanac       = "almanac"
	FeatureAstronomy     = "astronomy"
	FeatureConditions    = "conditions"
	FeatureForecast      = "forecast"
	FeatureForecast10Day = "forecast10day"
	FeatureGeolookup     = "geolookup"
	FeatureHourly        = "hourly"
	FeatureHourly10Day   = "hourly10day"
	FeaturePlanner       = "planner"
	FeatureRawTide       = "rawtide"
	FeatureSatellite     = "satellite"
	FeatureTide          = "tide"
	FeatureWebcams       = "webcams"
	FeatureYesterday     = "yesterday"

	// currenthurricane is only reachable through CurrentHurricane because it
	// uses a view URL instead of a query segment.
	featureCurrentHurricane = "currenthurricane"
)

// KnownFeatures returns the feature names that have a dedicated method. Get
// also accepts any of them in combination.
func KnownFeatures() []string {
	return []string{
		FeatureAlerts,
		FeatureAlmanac,
		FeatureAstronomy,
		FeatureConditions,
		FeatureForecast,
		FeatureForecast10Day,
		FeatureGeolookup,
		FeatureHourly,
		FeatureHourly10Day,
		FeaturePlanner,
		FeatureRawTide,
		FeatureSatellite,
		FeatureTide,
		FeatureWebcams,
		FeatureYesterday,
	}
}

// Alerts returns active weather alerts for a location.
func (c *Client) Alerts(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureAlerts}, query, opts...)
}

// Almanac returns historical averages and records for a location.
func (c *Client) Almanac(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureAlmanac}, query, opts...)
}

// Astronomy returns sun and moon data for a location.
func (c *Client) Astronomy(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureAstronomy}, query, opts...)
}

// Conditions returns current observations for a location.
func (c *Client) Conditions(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureConditions}, query, opts...)
}

// Forecast returns the short-range forecast for a location.
func (c *Client) Forecast(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureForecast}, query, opts...)
}

// Forecast10Day returns the 10-day forecast for a location.
func (c *Client) Forecast10Day(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureForecast10Day}, query, opts...)
}

// Geolookup resolves a location query to the API's location records.
func (c *Client) Geolookup(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureGeolookup}, query, opts...)
}

// Hourly returns the hourly forecast for a location.
func (c *Client) Hourly(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureHourly}, query, opts...)
}

// Hourly10Day returns the 10-day hourly forecast for a location.
func (c *Client) Hourly10Day(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureHourly10Day}, query, opts...)
}

// Planner returns trip planner climate data for a location.
func (c *Client) Planner(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeaturePlanner}, query, opts...)
}

// RawTide returns raw tide data for a location.
func (c *Client) RawTide(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureRawTide}, query, opts...)
}

// Satellite returns satellite imagery metadata for a location.
func (c *Client) Satellite(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureSatellite}, query, opts...)
}

// Tide returns tide forecasts for a location.
func (c *Client) Tide(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureTide}, query, opts...)
}

// Webcams returns webcam listings for a location.
func (c *Client) Webcams(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureWebcams}, query, opts...)
}

// Yesterday returns yesterday's observations for a location.
func (c *Client) Yesterday(ctx context.Context, query string, opts ...RequestOption) (*Result, error) {
	return c.Get(ctx, []string{FeatureYesterday}, query, opts...)
}

// History returns observed weather for a location on a past date. The date is
// mandatory and is encoded into the feature segment as history_YYYYMMDD.
func (c *Client) History(ctx context.Context, query string, date time.Time, opts ...RequestOption) (*Result, error) {
	if date.IsZero() {
		return nil, &ClientError{
			Type:      ErrorTypeInvalidQuery,
			Message:   "history requires a date",
			Timestamp: time.Now(),
		}
	}
	feature := "history_" + date.Format("20060102")
	return c.Get(ctx, []string{feature}, query, opts...)
}

// CurrentHurricane returns current hurricane information. This feature takes
// no location query; its URL ends in view.{ext} instead of a query segment.
func (c *Client) CurrentHurricane(ctx context.Context, opts ...RequestOption) (*Result, error) {
	if c.validationError != nil {
		return nil, c.validationError
	}

	call := newCallOptions(opts)
	features := []string{featureCurrentHurricane}
	req := &Request{
		Features: features,
		Settings: c.settingsFor(features, call),
		Format:   c.format,
	}
	return c.do(ctx, req, call.policy)
}
