package email

import "time"

// Provider sends account emails. The only mail the backend produces today
// is the password reset code, but the interface leaves room for more.
type Provider interface {
	// SendResetCode delivers a password reset code to the given address.
	// ttl is how long the code stays valid; the caller owns that policy.
	SendResetCode(to, username, code string, ttl time.Duration) error
}
