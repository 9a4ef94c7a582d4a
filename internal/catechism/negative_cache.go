package catechism

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// NotFoundCache holds the LRU cache of paragraph numbers known to be
// missing from the dataset, so repeated bad references skip the document
// scan entirely.
type NotFoundCache struct {
	*lru.Cache[int, bool]
}

// NewNotFoundCache creates a new NotFoundCache with the given size.
// The size parameter determines the maximum number of items the cache can hold.
func NewNotFoundCache(size int) NotFoundCache {
	lruCache, err := lru.New[int, bool](size)
	if err != nil {
		// This should never happen with a valid size, but we'll panic if it does
		// since this is a programming error
		panic(err)
	}

	return NotFoundCache{
		Cache: lruCache,
	}
}

// Add adds a paragraph number to the cache.
func (nc *NotFoundCache) Add(number int) {
	nc.Cache.Add(number, true)
}

// Contains checks if a paragraph number is in the cache.
func (nc *NotFoundCache) Contains(number int) bool {
	_, ok := nc.Get(number)

	return ok
}

// Purge is used to completely clear the cache.
func (nc *NotFoundCache) Purge() {
	nc.Cache.Purge()
}

// Len returns the number of items in the cache.
func (nc *NotFoundCache) Len() int {
	return nc.Cache.Len()
}
