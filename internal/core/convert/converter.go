// Package convert implements the two-tier lookup at the heart of the
// service: an exact phrase-table match yields a GIF reference, anything
// else is spelled out through the letter table.
package convert

import (
	"context"
	"errors"

	"github.com/koushikbethu/aud-isl-convo/internal/core/domain"
	"github.com/koushikbethu/aud-isl-convo/internal/core/tables"
	"github.com/koushikbethu/aud-isl-convo/internal/ports"
)

// Default URL bases under which the static assets are mounted.
const (
	DefaultGifBasePath    = "/static/gifs"
	DefaultLetterBasePath = "/static/letters"
)

// Config holds configuration for the converter core.
type Config struct {
	// GifBasePath is the URL base for phrase GIF assets.
	GifBasePath string
	// LetterBasePath is the URL base for letter image assets.
	LetterBasePath string
	// Logger for tracing resolution steps.
	Logger ports.Logger
}

// Converter resolves normalized text to a visual result.
type Converter struct {
	config Config
}

// New creates a new Converter. The logger is required; base paths default
// to the standard static mounts when empty.
func New(config Config) (*Converter, error) {
	if config.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if config.GifBasePath == "" {
		config.GifBasePath = DefaultGifBasePath
	}
	if config.LetterBasePath == "" {
		config.LetterBasePath = DefaultLetterBasePath
	}
	return &Converter{config: config}, nil
}

// Resolve maps normalized text to either a phrase GIF or a letter sequence.
// An exact phrase match always wins over spelling out. Characters without a
// letter asset (spaces, digits) are silently skipped; if nothing remains the
// input is rejected as invalid.
func (c *Converter) Resolve(ctx context.Context, text string) (domain.Result, error) {
	select {
	case <-ctx.Done():
		c.config.Logger.Error("Resolution cancelled", "error", ctx.Err())
		return domain.Result{}, ctx.Err()
	default:
	}

	if text == "" {
		return domain.Result{}, domain.ErrEmptyText
	}

	if tables.IsPhrase(text) {
		c.config.Logger.Debug("Resolved text to phrase GIF",
			"text", text,
			"outcome", domain.OutcomePhrase,
		)
		return domain.Result{
			Kind: domain.KindGif,
			Src:  c.config.GifBasePath + "/" + text + ".gif",
			Alt:  text,
		}, nil
	}

	assets := make([]string, 0, len(text))
	for _, r := range text {
		if tables.IsLetter(r) {
			assets = append(assets, c.config.LetterBasePath+"/"+string(r)+".jpg")
		}
	}

	if len(assets) == 0 {
		return domain.Result{}, domain.ErrNoRenderableChars
	}

	c.config.Logger.Debug("Resolved text to letter sequence",
		"text", text,
		"outcome", domain.OutcomeSpelled,
		"letters", len(assets),
	)
	return domain.Result{
		Kind:         domain.KindSequence,
		Assets:       assets,
		OriginalText: text,
	}, nil
}
