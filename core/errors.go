package core

import (
	"errors"
	"fmt"
)

// Kind classifies an error so callers can map it to behavior (HTTP
// status, degrade vs. abort) without string matching.
type Kind int

const (
	// KindUnknown is returned by KindOf for untagged errors.
	KindUnknown Kind = iota

	// KindInvalidInput marks a missing or malformed request field.
	// User-correctable.
	KindInvalidInput

	// KindDependencyFailure marks a failed store or completion-API
	// call.
	KindDependencyFailure

	// KindNotConfigured marks absent external credentials. Requests
	// fail fast with a fixed message instead of attempting a doomed
	// call.
	KindNotConfigured
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindDependencyFailure:
		return "dependency_failure"
	case KindNotConfigured:
		return "not_configured"
	default:
		return "unknown"
	}
}

// Error is a tagged error carrying a user-presentable message and an
// optional wrapped cause for diagnostics.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput returns a KindInvalidInput error.
func InvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

// DependencyFailure returns a KindDependencyFailure error wrapping
// the underlying cause.
func DependencyFailure(msg string, err error) error {
	return &Error{Kind: KindDependencyFailure, Msg: msg, Err: err}
}

// NotConfigured returns a KindNotConfigured error.
func NotConfigured(msg string) error {
	return &Error{Kind: KindNotConfigured, Msg: msg}
}

// KindOf reports the Kind of err, or KindUnknown for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the user-presentable message of a tagged error, or
// the plain Error() text for untagged ones.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
