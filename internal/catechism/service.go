package catechism

import (
	"go.uber.org/zap"
)

// Service resolves paragraph lookups against the loaded document, cleaning
// text on first use and caching both hits and misses.
type Service struct {
	logger        *zap.Logger
	document      *Document
	quoteCache    *QuoteCache
	notFoundCache NotFoundCache
}

// NewService creates a new catechism lookup Service.
func NewService(
	logger *zap.Logger,
	document *Document,
	quoteCache *QuoteCache,
	notFoundCache NotFoundCache,
) *Service {
	return &Service{
		logger:        logger.Named("catechism_service"),
		document:      document,
		quoteCache:    quoteCache,
		notFoundCache: notFoundCache,
	}
}

// Lookup returns the cleaned text of paragraph number. It returns
// ErrNotFound for numbers outside the dataset and never panics on
// out-of-range input.
func (s *Service) Lookup(number int) (string, error) {
	if number <= 0 {
		return "", ErrNotFound
	}

	if text, ok := s.quoteCache.Get(number); ok {
		return text, nil
	}

	if s.notFoundCache.Contains(number) {
		return "", ErrNotFound
	}

	raw, ok := s.document.Paragraph(number)
	if !ok {
		s.logger.Debug("Paragraph not in dataset", zap.Int("paragraph", number))
		s.notFoundCache.Add(number)

		return "", ErrNotFound
	}

	text := CleanText(raw)
	if text == "" {
		// Cleaning can only empty a paragraph made of bare numbers;
		// treat it the same as a missing one.
		s.logger.Warn("Paragraph cleaned to empty text", zap.Int("paragraph", number))
		s.notFoundCache.Add(number)

		return "", ErrNotFound
	}

	s.quoteCache.Add(number, text)

	return text, nil
}
