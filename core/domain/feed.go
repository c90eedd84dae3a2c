// ABOUTME: Feed domain model is the uniform result of parsing RSS, Atom or JSON-Feed content
// ABOUTME: Carries feed metadata, newest-first articles and the parser error list

package domain

// Feed represents a parsed feed document.
// A Feed is either populated from a validated document or carries at least
// one error in Errors with the affected fields left at their zero values.
type Feed struct {
	// Title is the human-readable title of the feed
	Title string

	// Description is the feed description (RSS description, Atom subtitle)
	Description string

	// Link is the canonical URL of the feed as declared by the document
	Link string

	// Articles holds the feed items, newest first
	Articles []Article

	// Language is the declared language code (RSS only)
	Language string

	// BuildDate is the last build/update time in epoch seconds, 0 when unknown
	BuildDate int64

	// Errors lists the problems found while decoding and validating
	Errors []error
}

// AddError appends a parser-level error to the feed
func (f *Feed) AddError(err error) {
	if err == nil {
		return
	}
	f.Errors = append(f.Errors, err)
}

// HasErrors reports whether any parser-level error was recorded
func (f *Feed) HasErrors() bool {
	return len(f.Errors) > 0
}
