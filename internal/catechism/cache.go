package catechism

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// QuoteCache holds the LRU cache of cleaned paragraph texts keyed by
// paragraph number, so hot paragraphs are cleaned only once.
type QuoteCache struct {
	*lru.Cache[int, string]
}

// NewQuoteCache creates a new QuoteCache with the given size.
// The size parameter determines the maximum number of items the cache can hold.
func NewQuoteCache(size int) (*QuoteCache, error) {
	lruCache, err := lru.New[int, string](size)
	if err != nil {
		return nil, err
	}

	return &QuoteCache{
		Cache: lruCache,
	}, nil
}

// Add adds a cleaned paragraph to the cache.
func (qc *QuoteCache) Add(number int, text string) {
	qc.Cache.Add(number, text)
}

// Get looks up a paragraph's cleaned text in the cache.
func (qc *QuoteCache) Get(number int) (string, bool) {
	return qc.Cache.Get(number)
}

// Purge is used to completely clear the cache.
func (qc *QuoteCache) Purge() {
	qc.Cache.Purge()
}

// Len returns the number of items in the cache.
func (qc *QuoteCache) Len() int {
	return qc.Cache.Len()
}
