package interfaces

import "time"

// NopLogger discards all log output
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields map[string]interface{}) {}
func (NopLogger) Info(msg string, fields map[string]interface{})  {}
func (NopLogger) Warn(msg string, fields map[string]interface{})  {}
func (NopLogger) Error(msg string, fields map[string]interface{}) {}

// NopMetrics discards all measurements
type NopMetrics struct{}

func (NopMetrics) RecordFetch(statusCode int, duration time.Duration) {}
func (NopMetrics) RecordCacheHit()                                    {}
func (NopMetrics) RecordError(kind string)                            {}
func (NopMetrics) RecordArticles(feedType string, count int)          {}

// WithDefaults returns a copy of d where a nil Logger or Metrics is replaced
// by its no-op implementation
func (d Dependencies) WithDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = NopLogger{}
	}
	if d.Metrics == nil {
		d.Metrics = NopMetrics{}
	}
	return d
}
