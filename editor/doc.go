// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The editor owns input handling, the viewport, soft wrapping and cursor
// rendering. Hosts decorate text through a Highlighter, observe edits
// through Config.OnChange and float popups over the text with SetPopup.
package editor
