package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	// init() already ran; the registry must hold the semantic names
	// the CLI renders with
	for _, name := range []string{"Header", "Success", "Error", "Muted", "FilePath", "Hint"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "missing style %s", name)
	}
}

func TestLoadStylesFromData(t *testing.T) {
	data := []byte(`
colors:
  pink:
    light: "200"
    dark: "205"
styles:
  Fancy:
    bold: true
    foreground: pink
`)
	require.NoError(t, LoadStylesFromData(data))
	t.Cleanup(func() {
		// Restore the embedded registry for other tests
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	style, ok := StyleRegistry["Fancy"]
	require.True(t, ok)
	assert.True(t, style.GetBold())
}

func TestLoadStylesFromDataInvalid(t *testing.T) {
	err := LoadStylesFromData([]byte("{not yaml"))
	assert.Error(t, err)

	t.Cleanup(func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})
}

func TestGetStyleUnknownIsDefault(t *testing.T) {
	style := GetStyle("DoesNotExist")
	assert.False(t, style.GetBold())
}
