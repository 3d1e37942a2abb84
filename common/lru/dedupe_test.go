package lru

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenRecordsAndHits(t *testing.T) {
	d, err := NewDedupe(DefaultCapacity)
	require.NoError(t, err)

	assert.False(t, d.Seen("https://example.com/a", "A"))
	assert.True(t, d.Seen("https://example.com/a", "A"))
	// Same url, different title is a different article revision.
	assert.False(t, d.Seen("https://example.com/a", "A (updated)"))
}

func TestOldestEntryEvictsAtCapacity(t *testing.T) {
	d, err := NewDedupe(20)
	require.NoError(t, err)

	for i := 0; i < 21; i++ {
		d.Seen(fmt.Sprintf("https://example.com/%d", i), "t")
	}

	assert.Equal(t, 20, d.Len())
	// The first url fell out of the window, the latest 20 are hits.
	assert.False(t, d.Seen("https://example.com/0", "t"))
	// Re-recording url 0 evicted url 1; everything newer is resident.
	for i := 2; i < 21; i++ {
		assert.True(t, d.Seen(fmt.Sprintf("https://example.com/%d", i), "t"), "url %d", i)
	}
}
