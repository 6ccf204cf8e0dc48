package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/utils"
)

const otpSubject = "Your OTP Code"

// relayMessage is the JSON body accepted by the mail relay.
type relayMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type relayNotifier struct {
	client *utils.HTTPClient
	path   string

	from   string
	token  string
	otpTTL time.Duration

	logger *logger.Logger
}

// NewRelayNotifier constructs a [Notifier] that POSTs every code as a JSON
// message to cfg.RelayURL. When cfg.RelayToken is set it is sent as a bearer
// token. otpTTL is only used for the message text.
//
// Returns an error wrapping [ErrInvalidRelayURL] if cfg.RelayURL cannot be
// parsed as an absolute http(s) URL.
func NewRelayNotifier(cfg config.Mailer, otpTTL time.Duration, log *logger.Logger) (Notifier, error) {
	baseURL, path, err := splitRelayURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRelayURL, err)
	}

	return &relayNotifier{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		path:   path,
		from:   cfg.From,
		token:  strings.TrimSpace(cfg.RelayToken),
		otpTTL: otpTTL,
		logger: log,
	}, nil
}

func splitRelayURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and http(s) scheme")
	}

	return u.Scheme + "://" + u.Host, u.RequestURI(), nil
}

// SendOTP implements [Notifier].
func (n *relayNotifier) SendOTP(ctx context.Context, email, code string) error {
	log := logger.FromContext(ctx)

	req := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(relayMessage{
			From:    n.from,
			To:      email,
			Subject: otpSubject,
			Text:    otpText(code, n.otpTTL),
		})
	if n.token != "" {
		req.SetAuthToken(n.token)
	}

	resp, err := req.Post(n.path)
	if err != nil {
		log.Err(err).Str("func", "relayNotifier.SendOTP").Msg("relay request failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "relayNotifier.SendOTP").Int("status", resp.StatusCode()).Msg("relay refused message")
		return err
	}

	log.Debug().Str("func", "relayNotifier.SendOTP").Msg("otp handed to relay")
	return nil
}

func otpText(code string, ttl time.Duration) string {
	if ttl <= 0 {
		return fmt.Sprintf("Your OTP code is: %s", code)
	}
	return fmt.Sprintf("Your OTP code is: %s. It expires in %s.", code, ttl)
}
