package update

import "fmt"

// Kind discriminates check failures. The CLI flattens every kind to a
// single exit code; library callers branch on them via errors.As.
type Kind string

const (
	// KindInvalidRepoURL: the repository reference matches neither the
	// canonical API form nor a GitHub web URL
	KindInvalidRepoURL Kind = "invalid_repo_url"

	// KindTransport: connection fault, timeout, or non-success status
	KindTransport Kind = "transport"

	// KindMalformedResponse: the response body is not a JSON object
	KindMalformedResponse Kind = "malformed_response"

	// KindPlatform: GitHub reported an error message instead of a release
	KindPlatform Kind = "platform"

	// KindMissingTag: a JSON object with neither tag_name nor message
	KindMissingTag Kind = "missing_tag"
)

// Error is a check failure with a discriminable kind. Failures are
// terminal for the check call; nothing is retried.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func newErrorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
