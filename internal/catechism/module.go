package catechism

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/louiepolk/go-discord-catechism/internal/config"
)

// Module provides catechism lookup dependencies.
var Module = fx.Module("catechism",
	fx.Provide(
		NewDocumentProvider,
		NewQuoteCacheProvider,
		NewNotFoundCacheProvider,
		NewService,
	),
)

// NewDocumentProvider loads the Catechism dataset from the configured path.
// An unreadable or empty dataset fails startup; the bot is useless without it.
func NewDocumentProvider(logger *zap.Logger, cfg *config.Config) (*Document, error) {
	doc, err := Load(cfg.Catechism.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catechism dataset from %q: %w", cfg.Catechism.FilePath, err)
	}

	if doc.Len() == 0 {
		return nil, errors.New("catechism dataset contains no paragraphs")
	}

	logger.Info("Loaded catechism dataset",
		zap.String("path", cfg.Catechism.FilePath),
		zap.Int("paragraphs", doc.Len()))

	return doc, nil
}

// NewQuoteCacheProvider creates the quote cache with a config-derived size.
func NewQuoteCacheProvider(logger *zap.Logger, cfg *config.Config) (*QuoteCache, error) {
	size := cfg.Catechism.QuoteCacheSize
	if size <= 0 {
		logger.Warn("Catechism QuoteCacheSize is not configured or is invalid, defaulting to 256",
			zap.Int("configuredSize", size))
		size = 256
	}

	return NewQuoteCache(size)
}

// NewNotFoundCacheProvider creates the negative cache with a config-derived size.
func NewNotFoundCacheProvider(logger *zap.Logger, cfg *config.Config) NotFoundCache {
	size := cfg.Catechism.NotFoundCacheSize
	if size <= 0 {
		logger.Warn("Catechism NotFoundCacheSize is not configured or is invalid, defaulting to 1024",
			zap.Int("configuredSize", size))
		size = 1024
	}

	return NewNotFoundCache(size)
}
