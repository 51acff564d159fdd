package bridge_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/catcher/pkg/bridge"
	"github.com/arthur-debert/catcher/pkg/exc"
	"github.com/arthur-debert/catcher/pkg/registry"
)

func TestGuard(t *testing.T) {
	t.Run("thrown exception is routed", func(t *testing.T) {
		reg := registry.New()
		require.NoError(t, reg.Register("IOError", func(e *exc.Exception) (interface{}, error) {
			return "caught:" + e.Message, nil
		}))

		result, err := bridge.Guard(reg, func() {
			bridge.Throw(exc.New("IOError", "read failed"))
		})

		require.NoError(t, err)
		assert.Equal(t, "caught:read failed", result)
	})

	t.Run("exception panic is routed", func(t *testing.T) {
		reg := registry.New()
		require.NoError(t, reg.Register(exc.Root, func(e *exc.Exception) (interface{}, error) {
			return e.Type, nil
		}))

		result, err := bridge.Guard(reg, func() {
			panic(exc.New("NetError", "timeout"))
		})

		require.NoError(t, err)
		assert.Equal(t, "NetError", result)
	})

	t.Run("error panic is converted", func(t *testing.T) {
		reg := registry.New()
		var caught *exc.Exception
		require.NoError(t, reg.Register(exc.Root, func(e *exc.Exception) (interface{}, error) {
			caught = e
			return nil, nil
		}))

		cause := stderrors.New("disk full")
		_, err := bridge.Guard(reg, func() {
			panic(cause)
		})

		require.NoError(t, err)
		require.NotNil(t, caught)
		assert.Equal(t, exc.Root, caught.Type)
		assert.Equal(t, cause, caught.Unwrap())
	})

	t.Run("foreign panic is not stopped", func(t *testing.T) {
		reg := registry.New()

		assert.Panics(t, func() {
			_, _ = bridge.Guard(reg, func() {
				panic("not an exception")
			})
		})
	})

	t.Run("no panic returns nothing", func(t *testing.T) {
		reg := registry.New()

		result, err := bridge.Guard(reg, func() {})

		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}
