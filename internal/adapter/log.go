package adapter

import (
	"context"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
)

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that writes codes to the log instead
// of sending them. Development only.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) SendOTP(_ context.Context, email, code string) error {
	n.logger.Warn().
		Str("func", "logNotifier.SendOTP").
		Str("email", email).
		Str("otp", code).
		Msg("no mail relay configured, otp written to log")
	return nil
}

// NewNotifier returns the relay notifier when cfg.RelayURL is set and the
// log notifier otherwise.
func NewNotifier(cfg config.Mailer, otpTTL time.Duration, log *logger.Logger) (Notifier, error) {
	if cfg.RelayURL == "" {
		log.Warn().Str("func", "NewNotifier").Msg("mail relay url is empty, one-time codes will only be logged")
		return NewLogNotifier(log), nil
	}

	return NewRelayNotifier(cfg, otpTTL, log)
}
