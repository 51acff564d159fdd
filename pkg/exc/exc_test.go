package exc_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/catcher/pkg/exc"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		typeName     string
		ancestry     []string
		wantAncestry []string
	}{
		{
			name:         "root appended when missing",
			typeName:     "IOError",
			ancestry:     nil,
			wantAncestry: []string{exc.Root},
		},
		{
			name:         "root kept when present",
			typeName:     "FileMissing",
			ancestry:     []string{"IOError", exc.Root},
			wantAncestry: []string{"IOError", exc.Root},
		},
		{
			name:         "chain without root gets root appended",
			typeName:     "FileMissing",
			ancestry:     []string{"IOError"},
			wantAncestry: []string{"IOError", exc.Root},
		},
		{
			name:         "root type has no ancestry",
			typeName:     exc.Root,
			ancestry:     nil,
			wantAncestry: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := exc.New(tt.typeName, "msg", tt.ancestry...)
			assert.Equal(t, tt.typeName, e.Type)
			assert.Equal(t, tt.wantAncestry, e.Ancestry)
		})
	}
}

func TestExceptionMatches(t *testing.T) {
	e := exc.New("FileMissing", "no such file", "IOError")

	assert.True(t, e.Matches("FileMissing"), "exact type")
	assert.True(t, e.Matches("IOError"), "declared ancestor")
	assert.True(t, e.Matches(exc.Root), "root matches everything")
	assert.False(t, e.Matches("NetError"), "unrelated type")
}

func TestMatchesIsNotErrorsIs(t *testing.T) {
	// *Exception implements error, so errors.Is falls back to pointer
	// equality for it; type-identifier matching lives in Matches only.
	a := exc.New("IOError", "read failed")
	b := exc.New("IOError", "read failed")

	assert.False(t, stderrors.Is(a, b))
	assert.True(t, stderrors.Is(a, a))
	assert.True(t, a.Matches("IOError"))
}

func TestExceptionError(t *testing.T) {
	e := exc.New("IOError", "read failed")
	assert.Equal(t, "IOError: read failed", e.Error())
}

func TestExceptionBuilders(t *testing.T) {
	e := exc.New("IOError", "read failed").WithLocation("io.x", 42).WithCode(7)

	assert.Equal(t, "io.x", e.File)
	assert.Equal(t, 42, e.Line)
	assert.Equal(t, 7, e.Code)
}

func TestWithCaller(t *testing.T) {
	e := exc.NewRoot("boom").WithCaller()

	assert.True(t, strings.HasSuffix(e.File, "exc_test.go"), "file = %s", e.File)
	assert.NotZero(t, e.Line)
}

func TestFromError(t *testing.T) {
	t.Run("plain error wraps as root type", func(t *testing.T) {
		cause := stderrors.New("disk full")
		e := exc.FromError(cause)

		require.NotNil(t, e)
		assert.Equal(t, exc.Root, e.Type)
		assert.Equal(t, "disk full", e.Message)
		assert.Equal(t, cause, e.Unwrap())
	})

	t.Run("exception passes through", func(t *testing.T) {
		orig := exc.New("IOError", "read failed")
		assert.Same(t, orig, exc.FromError(orig))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, exc.FromError(nil))
	})
}

func TestNewf(t *testing.T) {
	e := exc.Newf("IOError", "read failed on %s", "io.x")
	assert.Equal(t, "read failed on io.x", e.Message)
}
