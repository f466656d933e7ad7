package traits_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toplist/internal/traits"
)

func TestLookupFallsBackToAbbreviation(t *testing.T) {
	m := traits.BuildDefault([]string{"GZW"})
	assert.Equal(t, "GZW", m.Lookup("GZW"))
	assert.Equal(t, "ND", m.Lookup("ND"))
}

func TestOverrideIsIdempotentUpsert(t *testing.T) {
	m := traits.BuildDefault([]string{"GZW", "ND"})
	m.Override("GZW", "Gesamtzuchtwert")
	m.Override("GZW", "Gesamtzuchtwert")

	assert.Equal(t, "Gesamtzuchtwert", m.Lookup("GZW"))
	assert.Equal(t, []string{"GZW", "ND"}, m.Abbrevs())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merkmale.csv")
	m := traits.BuildDefault([]string{"GZW", "ND", "LBE"})
	m.Override("GZW", "Gesamtzuchtwert")

	require.NoError(t, m.Save(path, ';'))

	loaded, err := traits.Load(path, ';')
	require.NoError(t, err)
	assert.Equal(t, "Gesamtzuchtwert", loaded.Lookup("GZW"))
	assert.Equal(t, "ND", loaded.Lookup("ND"))
	assert.Equal(t, []string{"GZW", "ND", "LBE"}, loaded.Abbrevs())
}

func TestSaveNeverOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merkmale.csv")
	original := "Abk;Name\nGZW;Hand-edited name\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	m := traits.BuildDefault([]string{"GZW", "ND"})
	err := m.Save(path, ';')
	require.ErrorIs(t, err, traits.ErrMappingExists)

	// repeated saves leave the file byte-identical
	err = m.Save(path, ';')
	require.ErrorIs(t, err, traits.ErrMappingExists)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(content))
}

func TestLoadRejectsForeignHeader(t *testing.T) {
	cases := map[string]string{
		"breed file":      "Name;GZW\nAlpha;120\n",
		"swapped columns": "Name;Abk\nGesamtzuchtwert;GZW\n",
		"single column":   "Abk\nGZW\n",
	}
	for label, content := range cases {
		path := filepath.Join(t.TempDir(), "other.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := traits.Load(path, ';')
		require.Error(t, err, label)
	}
}
