// ABOUTME: Response DTOs for feed-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// FeedResponse represents one read feed in API responses
type FeedResponse struct {
	URL           string                 `json:"url" doc:"Requested feed URL"`
	Type          string                 `json:"type" doc:"Resolved feed type"`
	Title         string                 `json:"title" doc:"Feed title"`
	Description   string                 `json:"description" doc:"Feed description"`
	Link          string                 `json:"link" doc:"Canonical feed link"`
	Language      string                 `json:"language" doc:"Declared language (RSS only)"`
	BuildDate     string                 `json:"buildDate" doc:"Formatted last build date, empty when unknown"`
	BuildDateUnix int64                  `json:"buildDateUnix" doc:"Last build date in epoch seconds, 0 when unknown"`
	FromCache     bool                   `json:"fromCache" doc:"Whether the content was served from the cache"`
	Errors        []string               `json:"errors" doc:"Errors collected while reading the feed"`
	Articles      []ArticleResponse      `json:"articles" doc:"Articles, newest first unless reversed"`
	Debug         map[string]interface{} `json:"debug,omitempty" doc:"Debug snapshot when requested"`
}

// ArticleResponse represents one article in API responses
type ArticleResponse struct {
	Title       string `json:"title" doc:"Article title"`
	Description string `json:"description" doc:"Article summary, may contain HTML"`
	Link        string `json:"link" doc:"Link to the full article"`
	Pubdate     string `json:"pubdate" doc:"Formatted publish date, empty when unknown"`
	PubdateUnix int64  `json:"pubdateUnix" doc:"Publish date in epoch seconds, 0 when unknown"`
	GUID        string `json:"guid" doc:"Article identifier"`
	Image       string `json:"image,omitempty" doc:"Article image URL"`
}

// FeedsResponse represents the response for reading several feeds
type FeedsResponse struct {
	Feeds      []FeedResponse `json:"feeds" doc:"Read feeds in request order"`
	TotalFeeds int            `json:"totalFeeds" doc:"Number of feeds"`
	WithErrors int            `json:"withErrors" doc:"Number of feeds that collected errors"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string `json:"status" doc:"Service status"`
	Cache     string `json:"cache" doc:"Configured cache backend"`
	Timestamp int64  `json:"timestamp" doc:"Server time in epoch seconds"`
}
