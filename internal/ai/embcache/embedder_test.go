package embcache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorCodecRoundTrip(t *testing.T) {
	vec := []float32{0, 1, -1, 0.5, 3.1415927, -2.5e-7}

	decoded, err := decodeVector(encodeVector(vec))

	require.NoError(t, err)
	assert.Equal(t, vec, decoded)
}

func TestDecodeVectorRejectsBadPayloads(t *testing.T) {
	_, err := decodeVector(nil)
	assert.Error(t, err)

	_, err = decodeVector([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestCacheKeyIsStableAndProviderScoped(t *testing.T) {
	a := cacheKey("openai", "same text")
	b := cacheKey("openai", "same text")
	c := cacheKey("google", "same text")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "smartdocs:emb:"))
}
