package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWords(t *testing.T) {
	got, err := ReadWords(strings.NewReader("# header\n\n  Those hotel\n# trailing\nWEIGH\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"those", "hotel", "weigh"}, got)
}

func TestUniverseList(t *testing.T) {
	list, err := UniverseList()
	require.NoError(t, err)
	assert.Contains(t, list, "those")
	for _, w := range list {
		assert.NotContains(t, w, "#")
	}
}
