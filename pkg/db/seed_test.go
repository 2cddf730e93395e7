package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urmzd/homeview/pkg/entity"
)

const fixture = `
devices:
  - id: lamp-1
    name: Hallway lamp
    attributes:
      - name: power
        string-state: "On"
      - name: level
        numeric-state: 0
  - id: 7
    name: Thermostat
groups:
  - id: downstairs
    kind: adapter
    name: Downstairs
    attributes:
      - name: all-on
        string-state: ""
        boolean-state: false
adapters:
  - id: "42"
    name: Hue bridge
    attributes: broken
`

func TestParseSeed(t *testing.T) {
	entities, err := ParseSeed([]byte(fixture))
	require.NoError(t, err)
	require.Len(t, entities, 4)

	assert.Equal(t, entity.KindDevice, entities[0].Kind)
	assert.Equal(t, "On", entity.Extract(&entities[0], "power").Any())
	assert.Equal(t, 0.0, entity.Extract(&entities[0], "level").Any())

	assert.Equal(t, "7", entities[1].ID)
	assert.Nil(t, entities[1].Attributes)

	assert.Equal(t, entity.KindGroup, entities[2].Kind)
	assert.Equal(t, false, entity.Extract(&entities[2], "all-on").Any())

	assert.Equal(t, entity.KindAdapter, entities[3].Kind)
	assert.Nil(t, entities[3].Attributes)
}

func TestParseSeed_MissingID(t *testing.T) {
	_, err := ParseSeed([]byte("devices:\n  - name: nameless\n"))
	assert.ErrorContains(t, err, "id is required")
}

func TestParseSeed_InvalidYAML(t *testing.T) {
	_, err := ParseSeed([]byte("devices: [unterminated"))
	assert.Error(t, err)
}

func TestLoadAndImportSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0600))

	entities, err := LoadSeed(path)
	require.NoError(t, err)

	database := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, database.ImportSeed(ctx, entities))

	adapter, err := database.Entities().Get(ctx, entity.KindAdapter, "42")
	require.NoError(t, err)
	assert.Equal(t, "Hue bridge", adapter.Name)

	n, err := database.Entities().Count(ctx, entity.KindDevice)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImportSeed_RejectsNestedID(t *testing.T) {
	entities, err := ParseSeed([]byte("devices:\n  - id: ok\n  - id: a/b\n"))
	require.NoError(t, err)

	database := openTestDB(t)
	ctx := context.Background()
	assert.ErrorIs(t, database.ImportSeed(ctx, entities), entity.ErrValidation)

	// The whole import rolls back
	n, err := database.Entities().Count(ctx, entity.KindDevice)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
