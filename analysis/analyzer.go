// Package analysis turns a stream of buffer edits into a bounded rate of
// analyzer calls and applies only the newest result.
//
// Every scheduled request captures a generation number. A reply is applied
// only if its generation is still the live one; anything older is dropped
// without a word, however late or early it arrives.
package analysis

import (
	"context"
	"errors"

	"github.com/iw2rmb/lintmark/issue"
)

// ErrNoAnalyzer is reported when a coordinator has nothing to call.
var ErrNoAnalyzer = errors.New("analysis: no analyzer configured")

// Analyzer computes diagnostics. Implementations may ignore ctx; the
// coordinator never relies on cancellation for correctness.
type Analyzer interface {
	Analyze(ctx context.Context, text string) ([]issue.Raw, error)
	// ApplySuggestion returns text with s applied at raw's span.
	ApplySuggestion(ctx context.Context, text string, raw issue.Raw, s issue.Suggestion) (string, error)
	AddWord(ctx context.Context, word string) error
}
