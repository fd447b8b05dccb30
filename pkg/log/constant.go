package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// RequestIDKey is the context key under which the HTTP layer stores the request id.
type RequestIDKey struct{}
