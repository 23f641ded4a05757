// Package isl provides the public facade for converting text to Indian Sign
// Language visual references: a phrase GIF when the text matches a known
// phrase, a sequence of letter images otherwise.
package isl

import (
	"context"
	"errors"

	"github.com/baditaflorin/l"
	"github.com/koushikbethu/aud-isl-convo/internal/adapters/logger"
	"github.com/koushikbethu/aud-isl-convo/internal/adapters/normalizer"
	"github.com/koushikbethu/aud-isl-convo/internal/core/convert"
	"github.com/koushikbethu/aud-isl-convo/internal/core/domain"
	"github.com/koushikbethu/aud-isl-convo/internal/ports"
	"github.com/koushikbethu/aud-isl-convo/internal/warmup"
)

// Converter normalizes raw text and resolves it to a visual result.
type Converter struct {
	normalizer ports.Normalizer
	resolver   ports.Resolver
	logger     ports.Logger
}

// Option defines a functional option for configuring the Converter.
type Option func(*converterConfig)

type converterConfig struct {
	Logger         ports.Logger
	Normalizer     ports.Normalizer
	GifBasePath    string
	LetterBasePath string
	WarmUp         bool
	WarmUpConfig   warmup.Config
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *converterConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *converterConfig) {
		cfg.Normalizer = n
	}
}

// WithOptimizedNormalizer sets the optimized normalizer.
func WithOptimizedNormalizer() Option {
	return func(cfg *converterConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.OptimizedNormalizerType)
	}
}

// WithGifBasePath sets the URL base for phrase GIF assets.
func WithGifBasePath(path string) Option {
	return func(cfg *converterConfig) {
		cfg.GifBasePath = path
	}
}

// WithLetterBasePath sets the URL base for letter image assets.
func WithLetterBasePath(path string) Option {
	return func(cfg *converterConfig) {
		cfg.LetterBasePath = path
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *converterConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(config warmup.Config) Option {
	return func(cfg *converterConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Converter instance with the provided functional options.
func New(opts ...Option) (*Converter, error) {
	config := &converterConfig{
		GifBasePath:    convert.DefaultGifBasePath,
		LetterBasePath: convert.DefaultLetterBasePath,
		WarmUp:         false,
		WarmUpConfig:   warmup.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.GifBasePath == "" || config.LetterBasePath == "" {
		return nil, errors.New("asset base paths must not be empty")
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	core, err := convert.New(convert.Config{
		GifBasePath:    config.GifBasePath,
		LetterBasePath: config.LetterBasePath,
		Logger:         config.Logger,
	})
	if err != nil {
		return nil, err
	}

	c := &Converter{
		normalizer: config.Normalizer,
		resolver:   core,
		logger:     config.Logger,
	}

	if config.WarmUp {
		mgr := warmup.NewManager(config.Logger, config.WarmUpConfig)
		mgr.RegisterNormalizer(config.Normalizer)
		mgr.RegisterResolver(core)
		mgr.WarmUp(context.Background())
	}

	return c, nil
}

// Convert normalizes raw text and resolves it to a visual result. It returns
// domain.ErrEmptyText when nothing survives normalization and
// domain.ErrNoRenderableChars when no character maps to a letter asset.
func (c *Converter) Convert(ctx context.Context, raw string) (domain.Result, error) {
	normalized := c.normalizer.Normalize(raw)
	c.logger.Debug("Normalized text",
		"raw", raw,
		"normalized", normalized,
	)
	return c.resolver.Resolve(ctx, normalized)
}

// Normalize exposes the configured normalization for callers that need the
// canonical form without resolving it.
func (c *Converter) Normalize(raw string) string {
	return c.normalizer.Normalize(raw)
}
