package email

import (
	"time"

	"workwise_backend/internal/logger"
)

// NoopProvider logs instead of sending. Used in development and tests,
// and as the fallback when SMTP is not configured.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) SendResetCode(to, username, code string, ttl time.Duration) error {
	logger.Info("reset code email suppressed (no smtp configured)",
		"to", to,
		"username", username,
		"ttl", ttl.String(),
	)
	return nil
}
