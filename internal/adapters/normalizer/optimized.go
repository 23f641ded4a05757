package normalizer

import (
	"strings"
	"unicode"

	"github.com/koushikbethu/aud-isl-convo/internal/pool"
	"github.com/koushikbethu/aud-isl-convo/internal/ports"
)

// OptimizedNormalizer implements an optimized normalization strategy with a
// precomputed ASCII decision table and buffer pooling.
type OptimizedNormalizer struct {
	// Pre-computed decision table for ASCII characters (0-127):
	// 0 = keep as is, 1 = drop (punctuation), 2 = convert to lowercase.
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewOptimizedNormalizer creates a new optimized normalizer.
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		bytePool: pool.NewBufferPool(1024),
	}

	for i := 0; i < 128; i++ {
		r := rune(i)
		switch {
		case isPunct(r):
			n.asciiTable[i] = 1
		case r >= 'A' && r <= 'Z':
			n.asciiTable[i] = 2
		default:
			n.asciiTable[i] = 0
		}
	}

	return n
}

// Normalize converts the input text to lower case, removes punctuation and
// trims surrounding whitespace, reusing pooled buffers on the ASCII fast path.
func (n *OptimizedNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	// Check for ASCII-only string first (optimization).
	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0]

	if asciiOnly {
		for i := 0; i < len(text); i++ {
			b := text[i]
			switch n.asciiTable[b] {
			case 0:
				*buffer = append(*buffer, b)
			case 2:
				*buffer = append(*buffer, b+('a'-'A'))
			}
		}
		return string(trimASCIISpace(*buffer))
	}

	// Slower path for mixed ASCII/Unicode strings.
	for _, r := range text {
		if r < 128 {
			switch n.asciiTable[r] {
			case 0:
				*buffer = append(*buffer, byte(r))
			case 2:
				*buffer = append(*buffer, byte(r)+('a'-'A'))
			}
			continue
		}
		if unicode.IsPunct(r) {
			continue
		}
		lower := unicode.ToLower(r)
		*buffer = append(*buffer, []byte(string(lower))...)
	}
	return strings.TrimSpace(string(*buffer))
}

// trimASCIISpace trims leading and trailing ASCII whitespace in place.
func trimASCIISpace(b []byte) []byte {
	start := 0
	for start < len(b) && isASCIISpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isASCIISpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// NormalizerFactory creates the appropriate normalizer based on performance
// requirements.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// Type of normalizer to create.
type NormalizerType int

const (
	// DefaultNormalizerType is the straightforward rune-loop normalizer.
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType uses buffer pooling and a precomputed table.
	OptimizedNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
