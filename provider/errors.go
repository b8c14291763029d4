package provider

import (
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// friendlyError converts provider failures into human-readable
// messages safe to log and surface. API keys and raw credentials
// never appear in the output.
func friendlyError(err error) string {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return statusMessage(apierr.StatusCode)
	}
	return friendlyNetworkError(err)
}

// statusMessage maps provider HTTP status codes to readable messages.
func statusMessage(statusCode int) string {
	switch statusCode {
	case 400:
		return "bad request — the completion request was rejected"
	case 401:
		return "authentication failed — check your API key"
	case 403:
		return "access denied — your API key may not have the required permissions"
	case 404:
		return "model or endpoint not found"
	case 429:
		return "rate limited — too many requests, please wait"
	case 500:
		return "internal server error on the provider side"
	case 502, 503:
		return "provider service temporarily unavailable"
	case 529:
		return "provider is overloaded, please try again later"
	default:
		return "provider request failed"
	}
}

// friendlyNetworkError converts common transport errors to
// user-friendly messages.
func friendlyNetworkError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "connection refused (is the network up?)"
	case strings.Contains(msg, "no such host"):
		return "host not found (check your network)"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "connection timed out"
	case strings.Contains(msg, "EOF"):
		return "connection closed unexpectedly"
	case strings.Contains(msg, "reset by peer"):
		return "connection reset by server"
	}
	return msg
}
