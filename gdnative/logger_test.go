package gdnative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	SetDebug(true)
	defer func() {
		SetLogger(nil)
		SetDebug(false)
	}()

	arr, err := BuildVariantArray(1)
	require.NoError(t, err)
	v, err := NewVariantInt(1)
	require.NoError(t, err)
	require.NoError(t, arr.AddElement(v, 0))
	require.NoError(t, arr.AddElement(v, 0))
	v.Free()
	arr.FreeAll()

	assert.Equal(t, 1, logs.FilterMessage("replace slot").Len())
	// replaced slot, source, remaining slot and container
	assert.Equal(t, 4, logs.FilterMessage("free").Len())

	SetLogger(nil)
	assert.Same(t, nopLogger, Logger())
}

func TestSetLoggerConcurrently(t *testing.T) {
	defer SetLogger(nil)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			SetLogger(zap.NewNop())
			v, err := NewVariantNil()
			if err != nil {
				return err
			}
			Logger().Debug("variant", zap.Stringer("type", v.Type()))
			v.Free()
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
