package ore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `{
		"skill": "woodcutting",
		"entries": [
			{"prefix": "Wood_Oak_", "xp": 20},
			{"prefix": "Wood_Birch_", "xp": 35}
		]
	}`)

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "woodcutting", c.Skill())
	assert.Equal(t, int64(35), c.XPForBlock("Wood_Birch_3"))
	assert.Equal(t, "Wood_Oak_", c.Entries()[0].Prefix)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"skill": `},
		{"missing skill", `{"entries": [{"prefix": "A_", "xp": 1}]}`},
		{"no entries", `{"skill": "mining", "entries": []}`},
		{"empty prefix", `{"skill": "mining", "entries": [{"prefix": "", "xp": 1}]}`},
		{"zero xp", `{"skill": "mining", "entries": [{"prefix": "A_", "xp": 0}]}`},
		{"negative xp", `{"skill": "mining", "entries": [{"prefix": "A_", "xp": -4}]}`},
		{"duplicate prefix", `{"skill": "mining", "entries": [{"prefix": "A_", "xp": 1}, {"prefix": "A_", "xp": 2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(writeCatalog(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCatalogInvalid)
		})
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestSaveCatalog_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mining.json")
	require.NoError(t, SaveCatalog(path, NewCatalog("mining", DefaultMiningEntries())))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMiningEntries(), c.Entries())
}

func TestValidate_Nil(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), domain.ErrCatalogInvalid)
}

func TestLoadCatalog_RejectsUnknownFields(t *testing.T) {
	path := writeCatalog(t, `{"skill": "mining", "entries": [{"prefix": "A_", "xp": 1, "chance": 0.5}]}`)

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogInvalid)
	assert.Contains(t, err.Error(), "schema validation failed")
}
