package keyerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestResourceLimitError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        10,
			Actual:       11,
			Message:      "input nested too deeply",
		}
		want := "resource limit exceeded: nesting_depth (limit: 10, actual: 11): input nested too deeply"
		if got := err.Error(); got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ResourceLimitError{}
		if err.Error() != "resource limit exceeded" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Limit without actual", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "nesting_depth", Limit: 5}
		if err.Error() != "resource limit exceeded: nesting_depth (limit: 5)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &ResourceLimitError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrResourceLimit", func(t *testing.T) {
		err := fmt.Errorf("converting: %w", &ResourceLimitError{Limit: 1})
		if !errors.Is(err, ErrResourceLimit) {
			t.Error("ResourceLimitError should match ErrResourceLimit")
		}
		if errors.Is(err, ErrParse) || errors.Is(err, ErrConfig) {
			t.Error("ResourceLimitError should not match other sentinels")
		}
	})

	t.Run("As extracts ResourceLimitError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ResourceLimitError{Limit: 3, Actual: 4})
		var limitErr *ResourceLimitError
		if !errors.As(err, &limitErr) {
			t.Fatal("errors.As should extract ResourceLimitError")
		}
		if limitErr.Limit != 3 || limitErr.Actual != 4 {
			t.Errorf("unexpected fields: %+v", limitErr)
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "data.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in data.yaml at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "acronym",
			Value:   "id",
			Message: "expected word=Replacement",
			Cause:   errors.New("missing '='"),
		}
		want := "configuration error for acronym (value: id): expected word=Replacement: missing '='"
		if got := err.Error(); got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "mode"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
		if errors.Is(err, ErrResourceLimit) {
			t.Error("ConfigError should not match ErrResourceLimit")
		}
	})

	t.Run("Unwrap chains to cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := &ConfigError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("ConfigError should unwrap to cause")
		}
	})
}
