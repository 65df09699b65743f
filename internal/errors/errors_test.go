package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitecheckErrorError(t *testing.T) {
	testCases := []struct {
		name     string
		err      *SitecheckError
		expected string
	}{
		{
			name:     "message only",
			err:      &SitecheckError{Message: "boom"},
			expected: "boom",
		},
		{
			name:     "code and path",
			err:      NewValidationError("CFG001", "invalid path").WithPath("../x"),
			expected: "[CFG001] ../x invalid path",
		},
		{
			name:     "with cause",
			err:      WrapIO(fs.ErrNotExist, "IO001", "read failed", ""),
			expected: "[IO001] read failed: file does not exist",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestSitecheckErrorUnwrapAndIs(t *testing.T) {
	err := WrapIO(fs.ErrNotExist, "FALLBACK_READ", "cannot read index", "")

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, errors.Is(err, &SitecheckError{Type: ErrorTypeIO, Code: "FALLBACK_READ"}))
	assert.False(t, errors.Is(err, &SitecheckError{Type: ErrorTypeIO, Code: "OTHER"}))
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrorTypeIO, "X", "y"))
	})

	t.Run("plain error", func(t *testing.T) {
		wrapped := WrapIO(fmt.Errorf("disk"), "IO002", "write failed", "dist/404.html")
		require.NotNil(t, wrapped)
		assert.Equal(t, ErrorTypeIO, wrapped.Type)
		assert.Equal(t, "dist/404.html", wrapped.Path)
		assert.Contains(t, wrapped.Error(), "disk")
	})

	t.Run("keeps path and context of inner error", func(t *testing.T) {
		inner := NewValidationError("V1", "bad").WithPath("src/a.jsx").WithContext("line", 3)
		wrapped := WrapConfig(inner, "C1", "config rejected")
		assert.Equal(t, "src/a.jsx", wrapped.Path)
		assert.Equal(t, 3, GetErrorContext(wrapped)["line"])
		assert.True(t, IsType(wrapped, ErrorTypeConfig))
		assert.True(t, IsType(wrapped.Cause, ErrorTypeValidation))
	})
}

func TestVerificationFailedError(t *testing.T) {
	err := fmt.Errorf("verify: %w", &VerificationFailedError{Errors: 2, Warnings: 1})

	assert.True(t, IsVerificationFailed(err))
	assert.False(t, IsVerificationFailed(WrapInternal(fs.ErrClosed, "I1", "x")))
	assert.Contains(t, err.Error(), "2 error(s) and 1 warning(s)")
}
