package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFonts(t *testing.T) {
	require.NoError(t, loadFonts())
	assert.NotNil(t, Regular)
	assert.NotNil(t, Monospace)
	assert.Positive(t, Regular.NumGlyphs())
}
