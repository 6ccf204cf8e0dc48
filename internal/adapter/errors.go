package adapter

import "errors"

var (
	ErrDeliveryFailed  = errors.New("otp delivery failed")
	ErrUnauthorized    = errors.New("relay rejected credentials")
	ErrInvalidRelayURL = errors.New("invalid relay url")
)
