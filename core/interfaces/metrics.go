package interfaces

import "time"

// Metrics records feed fetch and parse outcomes.
// A nil Metrics in Dependencies disables recording.
type Metrics interface {
	// RecordFetch records one HTTP round trip with its status code and duration
	RecordFetch(statusCode int, duration time.Duration)

	// RecordCacheHit records a 304 answered from the cache
	RecordCacheHit()

	// RecordError records an accumulated error by kind
	RecordError(kind string)

	// RecordArticles records the number of articles parsed for a feed type
	RecordArticles(feedType string, count int)
}
