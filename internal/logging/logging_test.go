package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{})

	logger.Info().Str("endpoint", "/destinations").Msg("request failed")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "endpoint=/destinations")
	assert.NotContains(t, out, "hidden", "debug lines should be filtered at info level")
}

func TestNew_JSONDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{JSON: true, Debug: true})

	logger.Debug().Msg("visible")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON line, got %q", out)
	assert.Contains(t, out, `"message":"visible"`)
}

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tripplanner.log")
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	closer, err := Setup(Options{Path: path, JSON: true})
	require.NoError(t, err)
	log.Info().Msg("hello file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
