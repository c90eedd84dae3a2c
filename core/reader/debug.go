package reader

// Debug flags select the sections of a Debug snapshot
const (
	DebugHeader = 1 << iota
	DebugContent
	DebugRequest
	_
	DebugFeed
	DebugFeedReader

	// DebugAll selects every section. DebugRequest replaces header and content.
	DebugAll = DebugHeader | DebugContent | DebugRequest | DebugFeed | DebugFeedReader

	// DebugDefault is the reader state plus the parsed feed
	DebugDefault = DebugFeedReader | DebugFeed
)

// Debug returns a snapshot of the reader for troubleshooting.
// Basic auth credentials are masked.
func (r *FeedReader) Debug(flags int) map[string]interface{} {
	out := make(map[string]interface{})

	if flags&DebugRequest != 0 {
		out["request"] = r.debugRequest()
	} else {
		if flags&DebugHeader != 0 {
			out["header"] = r.resultHeader()
		}
		if flags&DebugContent != 0 {
			out["content"] = r.resultBody()
		}
	}

	if flags&DebugFeedReader != 0 {
		out["feedreader"] = map[string]interface{}{
			"url":         r.url,
			"urlOptions":  r.debugURLOptions(),
			"feedOptions": r.debugFeedOptions(),
			"type":        r.feedType,
			"fromCache":   r.fromCache,
			"error":       r.ErrorMessages(),
		}
	}

	if flags&DebugFeed != 0 {
		out["feed"] = r.debugFeed()
	}

	return out
}

func (r *FeedReader) resultHeader() map[string]string {
	if r.result == nil || !r.result.HasContent() {
		return nil
	}
	return r.result.Header
}

func (r *FeedReader) resultBody() string {
	if r.result == nil || !r.result.HasContent() {
		return ""
	}
	return r.result.Body
}

func (r *FeedReader) debugRequest() map[string]interface{} {
	req := map[string]interface{}{"url": r.url}
	if r.result != nil {
		req["headers"] = r.result.RequestHeader
		req["statusCode"] = r.result.StatusCode
	}
	return req
}

func (r *FeedReader) debugURLOptions() map[string]interface{} {
	auth := ""
	if r.options.URL.HasCredentials() {
		auth = "********"
	}
	return map[string]interface{}{
		"basicAuth":   auth,
		"headers":     r.options.URL.Headers,
		"timeout":     r.options.URL.Timeout.String(),
		"userAgent":   r.options.URL.UserAgent,
		"maxBodySize": r.options.URL.MaxBodySize,
	}
}

func (r *FeedReader) debugFeedOptions() map[string]interface{} {
	return map[string]interface{}{
		"type":          r.options.Feed.Type,
		"useCache":      r.options.Feed.UseCache,
		"cacheValidity": r.options.Feed.CacheValidity,
	}
}

func (r *FeedReader) debugFeed() map[string]interface{} {
	if r.feed == nil {
		return nil
	}

	articles := make([]map[string]interface{}, 0, len(r.feed.Articles))
	for _, a := range r.feed.Articles {
		articles = append(articles, map[string]interface{}{
			"title":   a.Title(),
			"link":    a.Link(),
			"pubdate": a.PubdateUnix(),
			"guid":    a.GUID(),
			"image":   a.Image(),
		})
	}

	return map[string]interface{}{
		"title":       r.feed.Title,
		"description": r.feed.Description,
		"link":        r.feed.Link,
		"language":    r.feed.Language,
		"builddate":   r.feed.BuildDate,
		"articles":    articles,
	}
}
