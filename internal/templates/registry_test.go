package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slimblog/newpost/internal/entry"
)

func TestRegistryCoversEveryKind(t *testing.T) {
	for _, k := range entry.Kinds() {
		tmpl, err := Get(k)
		require.NoError(t, err, k)
		assert.Equal(t, k, tmpl.Kind)
		assert.NotEmpty(t, tmpl.Description)
		assert.NotEmpty(t, tmpl.Body(sampleEntry(k)), "every kind produces at least one body segment")
	}
}

func TestList(t *testing.T) {
	list := List()

	require.Len(t, list, len(entry.Kinds()))
	assert.Equal(t, entry.KindPost, list[0].Kind)
	assert.Equal(t, entry.KindFragment, list[len(list)-1].Kind)
}

func TestDefaultTemplate(t *testing.T) {
	var defaults []entry.Kind
	for _, tmpl := range List() {
		if tmpl.Default {
			defaults = append(defaults, tmpl.Kind)
		}
	}
	assert.Equal(t, []entry.Kind{entry.DefaultKind}, defaults, "exactly one default template")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"post", "gem", "link", "bookmark", "slides", "fragment"}, Names())
}
