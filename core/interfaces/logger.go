package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction allows for different logging implementations (logrus, stdlib, etc.)
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Debug("Sending conditional request", map[string]interface{}{
//		"url":           "https://example.com/feed.xml",
//		"If-None-Match": `"5f1c"`,
//	})
//
//	logger.Warn("Unrecovered text value", map[string]interface{}{
//		"element": "title",
//		"type":    "xhtml",
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Data-quality problems in feed documents are reported at this level.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
