package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})
}

func TestSetup_Level(t *testing.T) {
	restore(t)
	var buf bytes.Buffer

	require.NoError(t, Setup(&buf, false, "").Close())
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, Setup(&buf, true, "").Close())
	log.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetup_LogFile(t *testing.T) {
	restore(t)
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "probe.log")

	closer := Setup(&buf, false, path)
	log.WithField("port", 22).Info("probe finished")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe finished")
	assert.Contains(t, string(data), "port=22")
	assert.Contains(t, buf.String(), "probe finished")
}
