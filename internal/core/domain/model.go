package domain

import "errors"

// Kind discriminates the two shapes a conversion result can take.
type Kind string

const (
	// KindGif means the text matched a known phrase with a pre-made GIF.
	KindGif Kind = "gif"
	// KindSequence means the text is spelled out letter by letter.
	KindSequence Kind = "sequence"
)

// Conversion outcome labels used in logs.
const (
	OutcomePhrase  = "phrase"
	OutcomeSpelled = "spelled"
)

// Invalid-input conditions reported to callers.
var (
	// ErrEmptyText is returned when the input is empty after normalization.
	ErrEmptyText = errors.New("text is empty after normalization")
	// ErrNoRenderableChars is returned when no character of the input maps
	// to a letter asset.
	ErrNoRenderableChars = errors.New("no renderable characters in text")
)

// Result holds the outcome of a text-to-visual conversion.
// Exactly one kind is ever populated: Src/Alt for KindGif,
// Assets/OriginalText for KindSequence.
type Result struct {
	Kind Kind
	// Src is the URL path of the phrase GIF.
	Src string
	// Alt is the alternative text for the GIF, the matched phrase itself.
	Alt string
	// Assets is the ordered list of letter image URL paths.
	Assets []string
	// OriginalText is the normalized text the sequence spells out.
	OriginalText string
}
