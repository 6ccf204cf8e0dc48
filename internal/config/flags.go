package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

var errInvalidAddress = errors.New("need address in a form `host:port`")

// NetAddress is a flag.Value for a listen address. An empty Host listens on
// all interfaces.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", ":port" and "[ipv6]:port". The host must be
// "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: port %q: %w", errInvalidAddress, rawPort, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %d out of range", errInvalidAddress, port)
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", errInvalidAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}

// parseFlags parses args (without the program name) into a config layer.
// Flags left unset keep their zero value so that they do not override other
// sources.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var address NetAddress

	fs := flag.NewFlagSet("wittywhiz", flag.ContinueOnError)

	fs.Var(&address, "a", "HTTP listen address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.Func("allowed-origins", "Comma separated CORS origins, * allows any", func(s string) error {
		for _, origin := range strings.Split(s, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, origin)
			}
		}
		return nil
	})

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN, empty keeps data in memory")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Session token lifetime (e.g. 24h)")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.IntVar(&cfg.App.OTPLength, "otp-length", 0, "One-time code length")
	fs.DurationVar(&cfg.App.OTPTTL, "otp-ttl", 0, "One-time code lifetime (e.g. 5m)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	fs.StringVar(&cfg.Mailer.RelayURL, "mail-relay-url", "", "OTP mail relay URL")
	fs.StringVar(&cfg.Mailer.RelayToken, "mail-relay-token", "", "OTP mail relay bearer token")
	fs.StringVar(&cfg.Mailer.From, "mail-from", "", "OTP sender address")
	fs.DurationVar(&cfg.Mailer.Timeout, "mail-timeout", 0, "OTP mail relay request timeout")

	fs.DurationVar(&cfg.Workers.OTPPurgeInterval, "otp-purge-interval", 0, "Expired OTP sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	return cfg, nil
}
