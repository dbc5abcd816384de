package logger

// Context keys for storing values
type contextKey string

// ContextKeyRequestID is the context key for request ID
const ContextKeyRequestID contextKey = "request_id"
