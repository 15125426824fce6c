// Package embcache caches embedding vectors in Redis keyed by a content
// hash, so re-ingesting unchanged text and repeated questions skip the
// provider round trip.
package embcache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/redis/rueidis"

	"github.com/niharsaraf26/smartdocs/internal/port"
)

const keyPrefix = "smartdocs:emb:"

// Embedder wraps another embedder with a Redis read-through cache.
// Cache failures degrade to the inner embedder, never to an error.
type Embedder struct {
	inner  port.Embedder
	client rueidis.Client
	ttl    time.Duration
}

// New wraps inner with a cache backed by the given Redis client.
func New(inner port.Embedder, client rueidis.Client, ttl time.Duration) *Embedder {
	return &Embedder{inner: inner, client: client, ttl: ttl}
}

func (e *Embedder) Provider() string { return e.inner.Provider() }

func (e *Embedder) Dimensions() int { return e.inner.Dimensions() }

// Embed returns the cached vector when present, otherwise embeds through the
// inner provider and stores the result.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(e.inner.Provider(), text)

	resp := e.client.Do(ctx, e.client.B().Get().Key(key).Build())
	if raw, err := resp.AsBytes(); err == nil {
		if vec, err := decodeVector(raw); err == nil {
			return vec, nil
		}
		log.Printf("embcache.Embed: corrupt cache entry for %s, re-embedding", key)
	}

	vec, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	set := e.client.B().Set().Key(key).Value(rueidis.BinaryString(encodeVector(vec)))
	var cmd rueidis.Completed
	if e.ttl > 0 {
		cmd = set.Ex(e.ttl).Build()
	} else {
		cmd = set.Build()
	}
	if err := e.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("embcache.Embed: cache write failed: %v", err)
	}

	return vec, nil
}

func cacheKey(provider, text string) string {
	sum := sha256.Sum256([]byte(provider + "\x00" + text))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Vectors are stored as little-endian float32 bytes.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(raw []byte) ([]float32, error) {
	if len(raw) == 0 || len(raw)%4 != 0 {
		return nil, fmt.Errorf("embcache: invalid vector payload of %d bytes", len(raw))
	}
	vec := make([]float32, len(raw)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return vec, nil
}
