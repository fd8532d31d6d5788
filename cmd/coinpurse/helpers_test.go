package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shell announces "Loaded N expenses." whenever a data file exists, even
// an empty one, and stays silent on first run. initLedger reports the
// distinction.
func TestInitLedgerReportsDataFilePresence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	viper.Set("data.path", path)
	t.Cleanup(viper.Reset)

	t.Run("missing file", func(t *testing.T) {
		eng, loaded, found, err := initLedger()

		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, loaded)
		assert.Zero(t, eng.Len())
	})

	t.Run("existing empty file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

		eng, loaded, found, err := initLedger()

		require.NoError(t, err)
		assert.True(t, found)
		assert.Zero(t, loaded)
		assert.Zero(t, eng.Len())
	})

	t.Run("existing populated file", func(t *testing.T) {
		data := `[{"amount": 5, "date": "2024-01-05", "note": "", "category": "Food"}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		eng, loaded, found, err := initLedger()

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 1, loaded)
		assert.Equal(t, 1, eng.Len())
	})
}
