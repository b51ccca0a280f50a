package converge

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConverge_Run(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	config := DefaultConfig()
	cv, err := config.NewConverge(zap.New(core))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, cv.Run(context.Background(), &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 118)
	assert.Equal(t, "2 2 3 9", lines[0])
	assert.Equal(t, "9 5 1 1", lines[len(lines)-1])
	assert.Contains(t, lines, "4 4 4 4")
	assert.True(t, strings.HasSuffix(out.String(), "9 5 1 1\n"))

	var found, finished int
	for _, e := range logs.All() {
		switch e.Message {
		case "Found match":
			found++
		case "Finished search":
			finished++
		}
	}
	assert.Equal(t, 118, found)
	assert.Equal(t, 1, finished)
	assert.EqualValues(t, 118, cv.Stats().Report().Matches)

	var dump bytes.Buffer
	cv.Stats().WriteTo(&dump)
	assert.Contains(t, dump.String(), "counter/matches")
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestConverge_RunWriteError(t *testing.T) {
	config := DefaultConfig()
	cv, err := config.NewConverge(nil)
	require.NoError(t, err)

	closed := errors.New("closed")
	assert.Equal(t, closed, cv.Run(context.Background(), errWriter{closed}))
}

func TestConverge_RunCancelled(t *testing.T) {
	config := DefaultConfig()
	cv, err := config.NewConverge(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	assert.Equal(t, context.Canceled, cv.Run(ctx, &out))
	assert.Empty(t, out.String())
}

func TestConfig_NewConvergeInvalid(t *testing.T) {
	config := DefaultConfig()
	config.Max = -1
	_, err := config.NewConverge(nil)
	assert.Error(t, err)
}
