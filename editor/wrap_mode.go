package editor

// WrapMode controls how long lines are displayed.
//
// WrapNone renders one line per visual row and scrolls horizontally to keep
// the cursor visible. WrapWord and WrapRune soft-wrap.
type WrapMode int

const (
	WrapNone WrapMode = iota
	// WrapWord breaks after whitespace where possible.
	WrapWord
	// WrapRune breaks at any rune.
	WrapRune
)
