// Package logging provides the log levels used throughout Reshape, and the
// Logger hook through which the executor reports skipped rows in lenient mode.
package logging

const (
	// TraceLevel marks messages useful only when following a single run in detail
	TraceLevel = iota
	// DebugLevel marks diagnostic messages
	DebugLevel
	// InfoLevel marks routine operational messages
	InfoLevel
	// WarnLevel marks recoverable problems, such as a row skipped in lenient mode
	WarnLevel
	// ErrorLevel marks failures
	ErrorLevel
	// FatalLevel marks failures the caller cannot recover from
	FatalLevel
)

// LogLevelToString translates a log level to its display name
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger receives leveled, printf-style log messages. A nil Logger
// silences logging.
type Logger func(level int, format string, v ...interface{})
