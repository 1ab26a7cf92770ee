package errors

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrConflictingConstraint", ErrConflictingConstraint},
		{"ErrInvalidLength", ErrInvalidLength},
		{"ErrInvalidBoundary", ErrInvalidBoundary},
		{"ErrInvalidCount", ErrInvalidCount},
		{"ErrInvalidLogSetting", ErrInvalidLogSetting},
		{"ErrRandFailure", ErrRandFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Error("sentinel error should not be nil")
			}
			if tt.err.Error() == "" {
				t.Error("sentinel error should have a message")
			}
		})
	}
}

func TestRandError(t *testing.T) {
	baseErr := errors.New("entropy exhausted")
	randErr := NewRandError("slot", baseErr)

	if randErr.Error() != "rand slot: entropy exhausted" {
		t.Errorf("unexpected error message: %s", randErr.Error())
	}

	if randErr.Unwrap() != baseErr {
		t.Error("Unwrap should return underlying error")
	}

	if !errors.Is(randErr, ErrRandFailure) {
		t.Error("RandError should match ErrRandFailure")
	}
	if !errors.Is(randErr, baseErr) {
		t.Error("RandError should match its underlying error")
	}

	// Test with nil error
	randErrNil := NewRandError("coin", nil)
	if randErrNil.Error() != "rand coin failed" {
		t.Errorf("unexpected error message for nil: %s", randErrNil.Error())
	}
	if !IsRandFailure(randErrNil) {
		t.Error("IsRandFailure should be true for RandError with nil cause")
	}
}

func TestValidationError(t *testing.T) {
	validErr := &ValidationError{Field: "length", Message: "must be at least 4"}

	expected := "validation: length: must be at least 4"
	if validErr.Error() != expected {
		t.Errorf("unexpected error message: %s", validErr.Error())
	}
	if validErr.Unwrap() != nil {
		t.Error("plain ValidationError should not unwrap")
	}

	fieldErr := NewFieldError("low_bucket_boundary", "must be within [0,100]", ErrInvalidBoundary)
	if !errors.Is(fieldErr, ErrInvalidBoundary) {
		t.Error("field error should match its sentinel")
	}
	if errors.Is(fieldErr, ErrInvalidLength) {
		t.Error("field error should not match unrelated sentinel")
	}
}

func TestIs(t *testing.T) {
	if !Is(ErrConflictingConstraint, ErrConflictingConstraint) {
		t.Error("Is should return true for same error")
	}

	if Is(ErrConflictingConstraint, ErrInvalidLength) {
		t.Error("Is should return false for different errors")
	}
}

func TestAs(t *testing.T) {
	wrapped := Wrap(NewFieldError("count", "must be at least 1", ErrInvalidCount), "settings")

	var target *ValidationError
	if !As(wrapped, &target) {
		t.Fatal("As should find ValidationError")
	}

	if target.Field != "count" {
		t.Errorf("unexpected Field: %s", target.Field)
	}
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base")
	wrapped := Wrap(baseErr, "context")

	if wrapped.Error() != "context: base" {
		t.Errorf("unexpected wrapped message: %s", wrapped.Error())
	}

	// Test with nil
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestConvenienceFunctions(t *testing.T) {
	if !IsConflict(ErrConflictingConstraint) {
		t.Error("IsConflict should return true for ErrConflictingConstraint")
	}

	if !IsConflict(Wrap(ErrConflictingConstraint, "resolve")) {
		t.Error("IsConflict should see through wrapping")
	}

	if IsConflict(ErrInvalidLength) {
		t.Error("IsConflict should return false for other errors")
	}

	if IsRandFailure(ErrInvalidBoundary) {
		t.Error("IsRandFailure should return false for validation errors")
	}
}
