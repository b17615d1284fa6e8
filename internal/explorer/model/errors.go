package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an absent record, either in storage or on the node.
	ErrNotFound = errors.New("not found")
	// ErrNodeUnavailable reports a broken or not yet established full node connection.
	ErrNodeUnavailable = errors.New("full node unavailable")
	// ErrInvalidAddress reports an address that does not decode to a puzzle hash.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrMalformedResponse reports a node payload that does not match its schema.
	ErrMalformedResponse = errors.New("malformed node response")
	// ErrInvalidHash reports a value that is not a well-formed hex hash.
	ErrInvalidHash = errors.New("invalid hash")
	// ErrInvalidArgument reports a caller supplied parameter outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidSearchToken reports a search token that is neither address, hash nor height.
	ErrInvalidSearchToken = errors.New("invalid search token")
)

// UpstreamError carries a failure reported by the full node itself.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return "full node error"
	}
	return fmt.Sprintf("full node error: %s", e.Message)
}

// NotFoundError wraps ErrNotFound with the node supplied reason.
func NotFoundError(message string) error {
	if message == "" {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}
