// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Reads single feeds or batches through the reader service and maps them to DTOs

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"feedreader-api/api/dto/mappers"
	"feedreader-api/api/dto/requests"
	"feedreader-api/api/dto/responses"
	"feedreader-api/core/config"
	"feedreader-api/core/reader"
	"feedreader-api/pkg/featureflags"
)

// FeedService defines the methods needed from the reader service
type FeedService interface {
	Open(ctx context.Context, url string, opts ...config.Option) *reader.FeedReader
	OpenAll(ctx context.Context, urls []string, opts ...config.Option) []*reader.FeedReader
}

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService FeedService
	flags       featureflags.Manager
}

// NewFeedHandler creates a new feed handler. A nil flag manager enables no optional features.
func NewFeedHandler(feedService FeedService, flags featureflags.Manager) *FeedHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &FeedHandler{
		feedService: feedService,
		flags:       flags,
	}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "readFeed",
		Method:      http.MethodGet,
		Path:        "/feed",
		Summary:     "Read an RSS, Atom or JSON feed",
		Description: "Fetches, caches and parses a single feed. Problems are reported in the errors list unless strict is set.",
		Tags:        []string{"Feeds"},
	}, h.ReadFeed)

	huma.Register(api, huma.Operation{
		OperationID: "readFeeds",
		Method:      http.MethodPost,
		Path:        "/feeds",
		Summary:     "Read several feeds",
		Description: "Fetches and parses several feeds concurrently, returning them in request order",
		Tags:        []string{"Feeds"},
	}, h.ReadFeeds)
}

// ReadFeedInput defines the input for the ReadFeed operation
type ReadFeedInput struct {
	requests.FeedRequest
}

// ReadFeedOutput defines the output for the ReadFeed operation
type ReadFeedOutput struct {
	CacheStatus string `header:"X-Cache" doc:"HIT when served from the cache"`
	Body        responses.FeedResponse
}

// ReadFeed handles the GET /feed endpoint
func (h *FeedHandler) ReadFeed(ctx context.Context, input *ReadFeedInput) (*ReadFeedOutput, error) {
	if input.Debug && !h.flags.IsEnabled(ctx, featureflags.DebugSnapshot) {
		return nil, huma.Error403Forbidden("debug snapshots are disabled")
	}

	fr := h.feedService.Open(ctx, input.URL, input.Options()...)

	if input.Strict && fr.HasErrors() {
		return nil, toHumaError(fr.Errors()[0])
	}

	body := mappers.ToFeedResponse(fr, h.mapOptions(ctx, input.FeedQuery))
	if input.Debug {
		body.Debug = fr.Debug(reader.DebugAll)
	}

	out := &ReadFeedOutput{Body: *body, CacheStatus: "MISS"}
	if fr.FromCache() {
		out.CacheStatus = "HIT"
	}
	return out, nil
}

// ReadFeedsInput defines the input for the ReadFeeds operation
type ReadFeedsInput struct {
	Body requests.FeedsRequest
}

// ReadFeedsOutput defines the output for the ReadFeeds operation
type ReadFeedsOutput struct {
	Body responses.FeedsResponse
}

// ReadFeeds handles the POST /feeds endpoint
func (h *FeedHandler) ReadFeeds(ctx context.Context, input *ReadFeedsInput) (*ReadFeedsOutput, error) {
	input.Body.ApplyDefaults()

	readers := h.feedService.OpenAll(ctx, input.Body.URLs, input.Body.Options()...)
	opts := h.mapOptions(ctx, input.Body.Query())

	out := &ReadFeedsOutput{}
	out.Body.Feeds = make([]responses.FeedResponse, 0, len(readers))
	for _, fr := range readers {
		out.Body.Feeds = append(out.Body.Feeds, *mappers.ToFeedResponse(fr, opts))
		if fr.HasErrors() {
			out.Body.WithErrors++
		}
	}
	out.Body.TotalFeeds = len(out.Body.Feeds)

	return out, nil
}

func (h *FeedHandler) mapOptions(ctx context.Context, q requests.FeedQuery) mappers.MapOptions {
	return mappers.MapOptions{
		FeedQuery: q,
		Sanitize:  h.flags.IsEnabled(ctx, featureflags.SanitizeHTML),
	}
}
