// Package buffer is the rune-accurate document model behind the editor
// widget.
//
// Positions are 0-based (Row, Col) in runes. The document can also be
// addressed by rune offset, where a newline counts as one rune; every
// applied edit reports its offset Delta so overlays can be remapped.
package buffer
