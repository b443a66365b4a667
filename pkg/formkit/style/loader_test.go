package style_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/formkit/pkg/formkit/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetYAML = `
element:
  root: sv-question
  title: sv-question__title
error: sv-error
types:
  rating: sv-rating
  text:
    root: sv-text
    input: sv-text__input
`

const sheetJSON = `{
  "element": {"root": "sv-question"},
  "error": "sv-error",
  "types": {"rating": "sv-rating"}
}`

// TestFromYAML verifies the string-or-mapping union parses from YAML.
func TestFromYAML(t *testing.T) {
	s, err := style.FromYAML([]byte(sheetYAML))
	require.NoError(t, err)

	m, ok := s.Element.Map()
	require.True(t, ok)
	assert.Equal(t, "sv-question", m["root"])
	assert.Equal(t, "sv-question__title", m["title"])

	class, ok := s.Error.Single()
	require.True(t, ok)
	assert.Equal(t, "sv-error", class)

	rating, ok := s.TypeEntry("rating")
	require.True(t, ok)
	class, _ = rating.Single()
	assert.Equal(t, "sv-rating", class)

	text, ok := s.TypeEntry("text")
	require.True(t, ok)
	tm, _ := text.Map()
	assert.Equal(t, "sv-text__input", tm["input"])
}

// TestFromYAML_MissingGroups verifies absent groups become zero entries.
func TestFromYAML_MissingGroups(t *testing.T) {
	s, err := style.FromYAML([]byte("types:\n  rating: sv-rating\n"))
	require.NoError(t, err)
	assert.True(t, s.Element.IsZero())
	assert.True(t, s.Error.IsZero())
}

// TestFromYAML_InvalidEntry verifies sequence entries are rejected.
func TestFromYAML_InvalidEntry(t *testing.T) {
	_, err := style.FromYAML([]byte("element:\n  - one\n  - two\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "string or a mapping")
}

// TestFromJSON verifies the union parses from JSON.
func TestFromJSON(t *testing.T) {
	s, err := style.FromJSON([]byte(sheetJSON))
	require.NoError(t, err)

	m, ok := s.Element.Map()
	require.True(t, ok)
	assert.Equal(t, "sv-question", m["root"])

	class, ok := s.Error.Single()
	require.True(t, ok)
	assert.Equal(t, "sv-error", class)
}

// TestFromJSON_InvalidEntry verifies array entries are rejected.
func TestFromJSON_InvalidEntry(t *testing.T) {
	_, err := style.FromJSON([]byte(`{"element": ["a"]}`))
	require.Error(t, err)
}

// TestFromFile verifies extension auto-detection.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "sheet.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sheetYAML), 0o644))
	jsonPath := filepath.Join(dir, "sheet.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sheetJSON), 0o644))

	fromYAML, err := style.FromFile(yamlPath)
	require.NoError(t, err)
	assert.False(t, fromYAML.Element.IsZero())

	fromJSON, err := style.FromFile(jsonPath)
	require.NoError(t, err)
	assert.False(t, fromJSON.Element.IsZero())
}

// TestFromFile_UnsupportedExtension verifies unknown formats error.
func TestFromFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.toml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := style.FromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported style sheet extension")
}

// TestFromFile_Missing verifies read errors are wrapped.
func TestFromFile_Missing(t *testing.T) {
	_, err := style.FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read style sheet")
}
