// Package lru wraps a capacity-bounded LRU set used by the scraper to
// skip articles it has already published.
package lru

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity matches the scraper's dedupe window.
const DefaultCapacity = 20

// Dedupe remembers the most recent keys. Both lookup and insert count
// as use, so a key stays resident while it keeps reappearing.
type Dedupe struct {
	cache *lru.Cache[string, struct{}]
}

// NewDedupe builds a dedupe set with the given capacity.
func NewDedupe(capacity int) (*Dedupe, error) {
	cache, err := lru.New[string, struct{}](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &Dedupe{cache: cache}, nil
}

// Seen reports whether the (url, title) pair was already recorded and
// records it if not. A hit refreshes the entry's recency.
func (d *Dedupe) Seen(url, title string) bool {
	key := url + "\x00" + title
	if _, ok := d.cache.Get(key); ok {
		return true
	}
	d.cache.Add(key, struct{}{})
	return false
}

// Len returns the number of resident keys.
func (d *Dedupe) Len() int {
	return d.cache.Len()
}
