package urlerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestTemplateError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &TemplateError{
			Template: "http://bad host/path",
			Reason:   "whitespace not allowed",
			Cause:    cause,
		}

		msg := err.Error()
		if msg != `invalid template "http://bad host/path": whitespace not allowed: underlying error` {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &TemplateError{}
		if err.Error() != "invalid template" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with template only", func(t *testing.T) {
		err := &TemplateError{Template: "::"}
		if err.Error() != `invalid template "::"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &TemplateError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &TemplateError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrInvalidTemplate", func(t *testing.T) {
		err := &TemplateError{Template: "bad"}
		if !errors.Is(err, ErrInvalidTemplate) {
			t.Error("TemplateError should match ErrInvalidTemplate")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &TemplateError{}
		if errors.Is(err, ErrBufferOverflow) {
			t.Error("TemplateError should not match ErrBufferOverflow")
		}
	})

	t.Run("As extracts TemplateError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &TemplateError{Template: "a b", Reason: "whitespace"})
		var tmplErr *TemplateError
		if !errors.As(err, &tmplErr) {
			t.Fatal("errors.As should succeed")
		}
		if tmplErr.Template != "a b" {
			t.Errorf("unexpected template: %s", tmplErr.Template)
		}
		if tmplErr.Reason != "whitespace" {
			t.Errorf("unexpected reason: %s", tmplErr.Reason)
		}
	})
}

func TestOverflowError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &OverflowError{
			Capacity: 64,
			Needed:   128,
			Message:  "query append",
		}
		expected := "buffer overflow (capacity: 64, needed: 128): query append"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &OverflowError{}
		if err.Error() != "buffer overflow" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with capacity only", func(t *testing.T) {
		err := &OverflowError{Capacity: 16}
		if err.Error() != "buffer overflow (capacity: 16)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &OverflowError{Capacity: 16}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrBufferOverflow", func(t *testing.T) {
		err := &OverflowError{Capacity: 16, Needed: 32}
		if !errors.Is(err, ErrBufferOverflow) {
			t.Error("OverflowError should match ErrBufferOverflow")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &OverflowError{}
		if errors.Is(err, ErrInvalidTemplate) {
			t.Error("OverflowError should not match ErrInvalidTemplate")
		}
	})

	t.Run("As extracts OverflowError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &OverflowError{Capacity: 8, Needed: 20})
		var ovErr *OverflowError
		if !errors.As(err, &ovErr) {
			t.Fatal("errors.As should succeed")
		}
		if ovErr.Capacity != 8 {
			t.Errorf("unexpected capacity: %d", ovErr.Capacity)
		}
		if ovErr.Needed != 20 {
			t.Errorf("unexpected needed: %d", ovErr.Needed)
		}
	})
}

func TestSentinelValues(t *testing.T) {
	t.Run("sentinels carry stable messages", func(t *testing.T) {
		if ErrInvalidTemplate.Error() != "invalid template" {
			t.Errorf("unexpected ErrInvalidTemplate message: %s", ErrInvalidTemplate.Error())
		}
		if ErrBufferOverflow.Error() != "buffer overflow" {
			t.Errorf("unexpected ErrBufferOverflow message: %s", ErrBufferOverflow.Error())
		}
	})

	t.Run("sentinels are distinct", func(t *testing.T) {
		if errors.Is(ErrInvalidTemplate, ErrBufferOverflow) {
			t.Error("sentinels should not match each other")
		}
	})
}
