package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{
			name: "invalid buffer",
			err:  ErrInvalidBuffer,
			msg:  "invalid audio buffer",
		},
		{
			name: "range",
			err:  ErrRange,
			msg:  "frame range out of bounds",
		},
		{
			name: "invalid spec",
			err:  ErrInvalidSpec,
			msg:  "invalid spec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatal("sentinel is nil")
			}

			if tt.err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.msg)
			}
		})
	}
}

func TestSentinelErrors_Comparison(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrInvalidSpec, ErrInvalidSpec) {
		t.Error("errors.Is() failed for ErrInvalidSpec")
	}

	otherErr := errors.New("some other error")
	if errors.Is(otherErr, ErrInvalidSpec) {
		t.Error("errors.Is() should return false for different error")
	}

	if errors.Is(ErrInvalidBuffer, ErrRange) {
		t.Error("errors.Is() should not match across sentinels")
	}
}

func TestSentinelErrors_Wrapping(t *testing.T) {
	t.Parallel()

	// Operations wrap sentinels with parameter context; callers must
	// still be able to match on the sentinel.
	wrapped := fmt.Errorf("%w: tempo 0 BPM", ErrInvalidSpec)
	if !errors.Is(wrapped, ErrInvalidSpec) {
		t.Error("errors.Is() failed for wrapped ErrInvalidSpec")
	}

	joined := errors.Join(ErrRange, errors.New("additional context"))
	if !errors.Is(joined, ErrRange) {
		t.Error("errors.Is() failed for joined ErrRange")
	}
}
