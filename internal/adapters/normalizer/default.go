package normalizer

import (
	"strings"
	"unicode"

	"github.com/koushikbethu/aud-isl-convo/internal/ports"
)

// isPunct reports whether r is stripped during normalization. For ASCII this
// matches the classic punctuation set !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~, which
// is wider than unicode.IsPunct (it includes symbols like $, +, ~). Non-ASCII
// runes fall back to unicode.IsPunct.
func isPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	case r < 128:
		return false
	}
	return unicode.IsPunct(r)
}

// DefaultNormalizer implements the default text normalization strategy:
// lowercase, strip punctuation, trim surrounding whitespace.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize converts the input text to lower case, removes punctuation and
// trims leading/trailing whitespace. Interior whitespace is preserved so
// multi-word phrases stay intact. The transformation is idempotent.
func (n *DefaultNormalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if isPunct(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}
