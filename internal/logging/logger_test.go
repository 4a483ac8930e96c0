package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nearkit/nearctl/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nearctl.log")

	log, cleanup, err := logging.Setup(path)
	require.NoError(t, err)

	log.Debug("near.invoke", "args", "view ft.alice.testnet ft_total_supply {}")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2) // init line + invoke line

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "near.invoke", entry["msg"])
}

func TestSetupBadPathFallsBackToDiscard(t *testing.T) {
	log, cleanup, err := logging.Setup(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
	require.NotNil(t, log)
	log.Debug("should not panic")
	assert.NoError(t, cleanup())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.Discard().Debug("dropped")
	})
}
