package logger

// Level and format names accepted in Config
const (
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogFormatJSON   = "json"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// RedactedValue replaces secrets in logged values
const RedactedValue = "[REDACTED]"
