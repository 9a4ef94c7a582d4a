package catechism_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/louiepolk/go-discord-catechism/internal/catechism"
)

const sampleText = `1
God, infinitely perfect and blessed in himself, freely created man. 1
(cf. Rom 5:29 )
2
Christ sent forth the apostles he had chosen. 2 3
`

func newTestService(t *testing.T) *catechism.Service {
	t.Helper()

	doc, err := catechism.Parse(strings.NewReader(sampleText))
	require.NoError(t, err)

	quoteCache, err := catechism.NewQuoteCache(8)
	require.NoError(t, err)

	return catechism.NewService(zap.NewNop(), doc, quoteCache, catechism.NewNotFoundCache(8))
}

func TestServiceLookup(t *testing.T) {
	svc := newTestService(t)

	text, err := svc.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "God, infinitely perfect and blessed in himself, freely created man. (cf. Rom 5:29)", text)

	text, err = svc.Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, "Christ sent forth the apostles he had chosen.", text)
}

func TestServiceLookupCachesCleanedText(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Lookup(1)
	require.NoError(t, err)

	second, err := svc.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestServiceLookupNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Lookup(99999)
	assert.ErrorIs(t, err, catechism.ErrNotFound)

	// Repeated misses take the negative cache path and stay ErrNotFound.
	_, err = svc.Lookup(99999)
	assert.ErrorIs(t, err, catechism.ErrNotFound)
}

func TestServiceLookupRejectsNonPositive(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Lookup(0)
	assert.ErrorIs(t, err, catechism.ErrNotFound)

	_, err = svc.Lookup(-5)
	assert.ErrorIs(t, err, catechism.ErrNotFound)
}
