package ai

import "errors"

var (
	// ErrNotConfigured means no API key was provided. The features built
	// on the collaborator degrade instead of failing the whole service.
	ErrNotConfigured = errors.New("ai collaborator is not configured")

	// ErrUpstream covers transport failures and non-200 upstream answers.
	ErrUpstream = errors.New("ai collaborator request failed")

	// ErrBadPayload means the upstream answered 200 but the content did
	// not decode into the agreed shape. The message carries a truncated
	// copy of the raw content for diagnosis.
	ErrBadPayload = errors.New("ai collaborator returned an unusable payload")
)
