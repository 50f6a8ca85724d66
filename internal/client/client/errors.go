package client

import "errors"

var (
	// ErrUnavailable covers transport failures and non-success responses
	// from the explanation service.
	ErrUnavailable = errors.New("explanation service unavailable")

	// ErrNoAPIKey is returned when the client is constructed without a key.
	ErrNoAPIKey = errors.New("explanation service API key is not configured")
)
