package customrules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() RuleSet {
	return RuleSet{
		Name:        "strict",
		Description: "Team conventions",
		Rules: []Rule{
			{Name: "eqeqeq", Level: "error", Options: []any{"always"}},
			{Name: "no-alert", Level: "warn"},
		},
	}
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), DefaultFile))

	sets, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, sets)

	require.NoError(t, store.Save(sampleSet()))
	require.NoError(t, store.Save(RuleSet{Name: "loose", Description: "Fewer errors", Rules: []Rule{{Name: "no-console", Level: "off"}}}))

	updated := sampleSet()
	updated.Description = "Team conventions v2"
	require.NoError(t, store.Save(updated))

	sets, err = store.Load()
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "strict", sets[0].Name)
	assert.Equal(t, "Team conventions v2", sets[0].Description)

	got, err := store.Get("loose")
	require.NoError(t, err)
	assert.Equal(t, "no-console", got.Rules[0].Name)

	removed, err := store.Delete("strict")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Delete("strict")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = store.Get("strict")
	assert.ErrorContains(t, err, `rule set "strict" not found`)
}

func TestSaveRejectsInvalidSets(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), DefaultFile))

	bad := sampleSet()
	bad.Description = ""
	bad.Rules[1].Level = "fatal"

	err := store.Save(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
	assert.Contains(t, err.Error(), `unknown level "fatal"`)

	_, statErr := os.Stat(store.Path)
	assert.True(t, os.IsNotExist(statErr), "nothing written for an invalid set")
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := NewStore(path).Load()
	assert.ErrorContains(t, err, "parsing")
}

func TestTable(t *testing.T) {
	table := sampleSet().Table()
	require.Len(t, table, 2)

	assert.Equal(t, "eqeqeq", table[0].Name)
	assert.Equal(t, []any{"error", "always"}, table[0].Rule.Value())
	assert.Equal(t, "warn", table[1].Rule.Value())
}
