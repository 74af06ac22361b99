package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_CachesPerKey(t *testing.T) {
	first, err := Icon(OpenFolder)
	require.NoError(t, err)
	second, err := Icon(OpenFolder)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestIcon_UnknownKey(t *testing.T) {
	_, err := Icon("missing")

	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("missing") })
}

func TestIcon_EveryCatalogKeyResolves(t *testing.T) {
	for _, key := range []string{OpenFolder, SaveDisk, GarbageBin, Metrics, AppIconName} {
		assert.NotNil(t, MustIcon(key), key)
	}
}
