package contextkeys

// Key is the private type for context values shared between middleware
// and the logger.
type Key string

const (
	RequestIDKey Key = "request_id"
	UserIDKey    Key = "user_id"
)
