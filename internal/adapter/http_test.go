// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/config"
	"github.com/harsh-choudhary-nature/WittyWhizBackend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRelay points a relay notifier at the test server
func newTestRelay(t *testing.T, serverURL string, token string) Notifier {
	t.Helper()
	cfg := config.Mailer{
		RelayURL:   serverURL + "/v1/send",
		RelayToken: token,
		From:       "noreply@wittywhiz.dev",
		Timeout:    time.Second,
	}

	n, err := NewRelayNotifier(cfg, 5*time.Minute, logger.Nop())
	require.NoError(t, err)
	return n
}

// ── SendOTP ─────────────────────────────────────────────────────────────────

func TestRelaySendOTP_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/send", r.URL.Path)
		assert.Equal(t, "Bearer relay-secret", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var msg relayMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "noreply@wittywhiz.dev", msg.From)
		assert.Equal(t, "alice@example.com", msg.To)
		assert.Equal(t, "Your OTP Code", msg.Subject)
		assert.Contains(t, msg.Text, "042137")
		assert.Contains(t, msg.Text, "5m0s")

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := newTestRelay(t, srv.URL, "relay-secret")
	err := n.SendOTP(context.Background(), "alice@example.com", "042137")

	require.NoError(t, err)
}

func TestRelaySendOTP_NoTokenNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestRelay(t, srv.URL, "")
	require.NoError(t, n.SendOTP(context.Background(), "alice@example.com", "123456"))
}

func TestRelaySendOTP_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad token"))
	}))
	defer srv.Close()

	n := newTestRelay(t, srv.URL, "wrong")
	err := n.SendOTP(context.Background(), "alice@example.com", "123456")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "bad token")
}

func TestRelaySendOTP_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := newTestRelay(t, srv.URL, "")
	err := n.SendOTP(context.Background(), "alice@example.com", "123456")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "http 500")
}

func TestRelaySendOTP_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	n := newTestRelay(t, url, "")
	err := n.SendOTP(context.Background(), "alice@example.com", "123456")

	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewRelayNotifier_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "relay.local/send", "ftp://relay.local", "http://"} {
		t.Run(raw, func(t *testing.T) {
			_, err := NewRelayNotifier(config.Mailer{RelayURL: raw}, time.Minute, logger.Nop())
			assert.ErrorIs(t, err, ErrInvalidRelayURL)
		})
	}
}

func TestSplitRelayURL(t *testing.T) {
	base, path, err := splitRelayURL(" https://relay.local:8443/api/send?tenant=ww ")

	require.NoError(t, err)
	assert.Equal(t, "https://relay.local:8443", base)
	assert.Equal(t, "/api/send?tenant=ww", path)
}

func TestNewNotifier_PicksImplementation(t *testing.T) {
	n, err := NewNotifier(config.Mailer{}, time.Minute, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &logNotifier{}, n)
	assert.NoError(t, n.SendOTP(context.Background(), "a@b.dev", "123456"))

	n, err = NewNotifier(config.Mailer{RelayURL: "http://relay.local/send", From: "x@y.z"}, time.Minute, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &relayNotifier{}, n)
}

func TestOTPText(t *testing.T) {
	assert.Equal(t, "Your OTP code is: 123456", otpText("123456", 0))
	assert.Equal(t, "Your OTP code is: 123456. It expires in 5m0s.", otpText("123456", 5*time.Minute))
}
