package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	settings, err := Load()
	require.NoError(t, err)

	assert.False(t, settings.Debug)
	assert.Equal(t, "point", settings.Annotation.Decimal)
	assert.InDelta(t, 0.01, settings.Annotation.TimeResolution, 1e-9)
	assert.Equal(t, "annotations.db", settings.Database.Path)
	assert.Equal(t, "info", settings.Log.Level)
	assert.Equal(t, 10, settings.Log.MaxSizeMB)
}
