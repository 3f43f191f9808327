package keyerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrResourceLimit matches every *ResourceLimitError.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse error")

	// ErrConfig matches every *ConfigError.
	ErrConfig = errors.New("configuration error")
)

// message assembles "<head><qualifiers>[: detail][: cause]".
type message struct {
	b strings.Builder
}

func newMessage(head error) *message {
	m := &message{}
	m.b.WriteString(head.Error())
	return m
}

func (m *message) add(format string, args ...any) *message {
	_, _ = fmt.Fprintf(&m.b, format, args...)
	return m
}

func (m *message) detail(s string) *message {
	if s != "" {
		m.b.WriteString(": ")
		m.b.WriteString(s)
	}
	return m
}

func (m *message) cause(err error) *message {
	if err != nil {
		m.detail(err.Error())
	}
	return m
}

func (m *message) String() string {
	return m.b.String()
}

// ResourceLimitError reports that an input exceeded a configured bound,
// such as the nesting depth of a value or the node count of a document.
type ResourceLimitError struct {
	// ResourceType names the bound, e.g. "nesting_depth" or "node_count".
	ResourceType string
	// Limit is the configured maximum.
	Limit int64
	// Actual is the observed value, 0 when unknown.
	Actual int64
	// Message is an optional hint for the caller.
	Message string
}

func (e *ResourceLimitError) Error() string {
	m := newMessage(ErrResourceLimit)
	if e.ResourceType != "" {
		m.detail(e.ResourceType)
	}
	switch {
	case e.Limit > 0 && e.Actual > 0:
		m.add(" (limit: %d, actual: %d)", e.Limit, e.Actual)
	case e.Limit > 0:
		m.add(" (limit: %d)", e.Limit)
	}
	return m.detail(e.Message).String()
}

// Unwrap returns nil; resource limits have no underlying cause.
func (e *ResourceLimitError) Unwrap() error { return nil }

// Is reports whether target is ErrResourceLimit.
func (e *ResourceLimitError) Is(target error) bool { return target == ErrResourceLimit }

// ParseError reports a JSON or YAML input that could not be decoded, either
// a document to convert or an acronym table.
type ParseError struct {
	// Path names the source: a file path, "<stdin>" or "content".
	Path string
	// Line and Column locate the failure; 0 when unknown.
	Line   int
	Column int
	// Message describes the failure.
	Message string
	// Cause is the decoder error, if any.
	Cause error
}

func (e *ParseError) Error() string {
	m := newMessage(ErrParse)
	if e.Path != "" {
		m.add(" in %s", e.Path)
	}
	if e.Line > 0 {
		m.add(" at line %d", e.Line)
		if e.Column > 0 {
			m.add(", column %d", e.Column)
		}
	}
	return m.detail(e.Message).cause(e.Cause).String()
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ConfigError reports an invalid option or input: a malformed acronym pair,
// an unknown mode or format, or a missing value.
type ConfigError struct {
	// Option names the offending option.
	Option string
	// Value is the rejected value, nil when the option was missing.
	Value any
	// Message explains what is accepted.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *ConfigError) Error() string {
	m := newMessage(ErrConfig)
	if e.Option != "" {
		m.add(" for %s", e.Option)
	}
	if e.Value != nil {
		m.add(" (value: %v)", e.Value)
	}
	return m.detail(e.Message).cause(e.Cause).String()
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
