package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDeclaration = `root: widget

classes:
  textinput:
    media:
      css: [forms/css/text.css]
  datepicker:
    parent: textinput
    media:
      css: [forms/css/picker.css]
      js: [forms/js/calendar.js, forms/js/picker.js]
  hidden: {}
`

func TestLoadYAML(t *testing.T) {
	reg, err := LoadYAML([]byte(testDeclaration))
	require.NoError(t, err)

	assert.Equal(t, "widget", reg.Root())
	assert.Equal(t, 3, reg.Count())

	got, err := reg.Resolve("datepicker")
	require.NoError(t, err)
	assert.Equal(t, Manifest{
		"css": Paths("forms/css/text.css", "forms/css/picker.css"),
		"js":  Paths("forms/js/calendar.js", "forms/js/picker.js"),
	}, got)

	empty, err := reg.Resolve("hidden")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLoadYAML_HookReturnsFreshCopies(t *testing.T) {
	reg, err := LoadYAML([]byte(testDeclaration))
	require.NoError(t, err)

	def, err := reg.Lookup("textinput")
	require.NoError(t, err)

	first := def.Own()
	first["css"].([]any)[0] = "mutated.css"

	second := def.Own()
	assert.Equal(t, "forms/css/text.css", second["css"].([]any)[0])
}

func TestLoadYAML_MissingRoot(t *testing.T) {
	_, err := LoadYAML([]byte("classes:\n  textinput: {}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root")
}

func TestLoadYAML_DuplicateOfRoot(t *testing.T) {
	doc := `root: widget
classes:
  widget:
    media:
      css: [x.css]
`
	_, err := LoadYAML([]byte(doc))
	require.ErrorIs(t, err, ErrDuplicateClass)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadYAML_BrokenHierarchySurfacesInValidate(t *testing.T) {
	doc := `root: widget
classes:
  orphan:
    parent: ghost
  a:
    parent: b
  b:
    parent: a
`
	reg, err := LoadYAML([]byte(doc))
	require.NoError(t, err)

	problems := reg.Validate()
	require.Len(t, problems, 3)
	assert.Equal(t, "orphan", problems[0].Class)
	assert.Contains(t, problems[0].Message, "ghost")

	_, err = reg.Resolve("a")
	assert.ErrorIs(t, err, ErrHierarchyCycle)
}

func TestLoadYAML_Malformed(t *testing.T) {
	_, err := LoadYAML([]byte("classes: [not, a, mapping"))
	assert.Error(t, err)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDeclaration), 0o644))

	reg, err := LoadYAMLFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Count())

	_, err = LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
