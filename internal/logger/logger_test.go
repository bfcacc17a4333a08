package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	t.Run("valid levels", func(t *testing.T) {
		for _, lvl := range []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"} {
			t.Run(lvl, func(t *testing.T) {
				err := Initialize(lvl)
				assert.NoError(t, err)
				assert.NotNil(t, Log)
				assert.IsType(t, &zap.SugaredLogger{}, Log)

				assert.NotPanics(t, func() {
					Log.Infow("initialized", "level", lvl)
				})
			})
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		err := Initialize("not-a-level")
		assert.Error(t, err)
	})
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	// Packages may log before main wires the real logger.
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Infow("nop logger")
	})
}

func TestSync(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.NoError(t, Initialize("info"))
	assert.NotPanics(t, func() { Sync() })
}
