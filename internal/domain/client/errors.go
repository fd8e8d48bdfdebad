package client

import "errors"

var (
	// ErrClientNotFound indicates no client is registered under the document.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidInput indicates invalid client input.
	ErrInvalidInput = errors.New("invalid client input")
	// ErrTypeImmutable indicates an attempt to change the type of a registered client.
	ErrTypeImmutable = errors.New("client type cannot change once created")
)
