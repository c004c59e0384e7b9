package errors

import (
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad field %q", "wave")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != `bad field "wave"` {
		t.Errorf("Message = %q", err.Message)
	}
	want := `INVALID_INPUT: bad field "wave"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeInternal, cause, "write failed")

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	want := "INTERNAL_ERROR: write failed: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnresolvedEvent, "no event 'q'")

	if !Is(err, ErrCodeUnresolvedEvent) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() = true, want false for different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeNotFound) {
		t.Error("Is() = true, want false for non-structured error")
	}
}

func TestIs_Wrapped(t *testing.T) {
	inner := New(ErrCodeInvalidGrammar, "unterminated '<'")
	outer := fmt.Errorf("render: %w", inner)

	if !Is(outer, ErrCodeInvalidGrammar) {
		t.Error("Is() should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeInvalidGrammar {
		t.Errorf("GetCode() = %s, want %s", GetCode(outer), ErrCodeInvalidGrammar)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeNotFound, "diagram missing")); got != "diagram missing" {
		t.Errorf("UserMessage() = %q, want %q", got, "diagram missing")
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}
