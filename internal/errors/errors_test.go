package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := New(CodeNotFound, "terminator not found")
		if err.Error() != "[NOT_FOUND] terminator not found" {
			t.Errorf("expected [NOT_FOUND] terminator not found, got %s", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		original := errors.New("deadline exceeded")
		err := Wrap(original, CodeSyncTimeout, "member count did not change")
		expected := "[SYNC_TIMEOUT] member count did not change: deadline exceeded"
		if err.Error() != expected {
			t.Errorf("expected %s, got %s", expected, err.Error())
		}
		if !errors.Is(err, original) {
			t.Error("expected wrapped error to unwrap to the original")
		}
	})

	t.Run("IsCode", func(t *testing.T) {
		err := New(CodeInvariantViolation, "unsorted descriptors")
		if !IsCode(err, CodeInvariantViolation) {
			t.Error("expected IsCode to return true for CodeInvariantViolation")
		}
		if IsCode(err, CodeNotFound) {
			t.Error("expected IsCode to return false for CodeNotFound")
		}
	})

	t.Run("IsCodeThroughFmtWrap", func(t *testing.T) {
		err := fmt.Errorf("rename: %w", New(CodeAmbiguousMatch, "two overloads"))
		if !IsCode(err, CodeAmbiguousMatch) {
			t.Error("expected IsCode to see through fmt.Errorf wrapping")
		}
		if CodeOf(err) != CodeAmbiguousMatch {
			t.Errorf("CodeOf = %q", CodeOf(err))
		}
	})

	t.Run("AddContext", func(t *testing.T) {
		err := AddContext(New(CodeNotFound, "missing"), CtxMember, "count")
		if err.Error() != "[NOT_FOUND] missing map[member:count]" {
			t.Errorf("unexpected message %s", err.Error())
		}

		plain := AddContext(errors.New("boom"), CtxOperation, "save")
		if !IsCode(plain, CodeInternal) {
			t.Error("expected plain errors to be wrapped as internal")
		}
	})

	t.Run("Newf", func(t *testing.T) {
		err := Newf(CodeInvariantViolation, "row %d out of range", 7)
		if CodeOf(err) != CodeInvariantViolation || err.Error() != "[INVARIANT_VIOLATION] row 7 out of range" {
			t.Errorf("unexpected %v", err)
		}
		if CodeOf(errors.New("x")) != "" {
			t.Error("expected empty code for plain errors")
		}
	})
}
