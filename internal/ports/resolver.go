package ports

import (
	"context"

	"github.com/koushikbethu/aud-isl-convo/internal/core/domain"
)

// Resolver defines the interface for resolving normalized text to a
// sign-language visual result.
type Resolver interface {
	Resolve(ctx context.Context, text string) (domain.Result, error)
}
