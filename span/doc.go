// Package span maps half-open rune ranges through text edits.
//
// Offsets are 0-based rune indices into the whole document (newlines count
// as one rune). A Span is [Start, End); a Delta replaces the runes in
// [From, To) with Inserted runes.
package span
