package editor

import "github.com/atotto/clipboard"

// Clipboard provides editor-level clipboard integration.
//
// Errors never reach the UI; a failed copy or paste does nothing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// SystemClipboardAvailable reports whether the OS clipboard can be used.
func SystemClipboardAvailable() bool { return !clipboard.Unsupported }
