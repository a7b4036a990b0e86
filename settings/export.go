package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ExportRules writes the rule toggles as an indented JSON object.
func (s *Settings) ExportRules(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Rules()); err != nil {
		return fmt.Errorf("export rules: %w", err)
	}
	return nil
}

// ImportRules replaces the rule toggles with the JSON object read from r.
func (s *Settings) ImportRules(ctx context.Context, r io.Reader) error {
	var rules map[string]bool
	if err := json.NewDecoder(r).Decode(&rules); err != nil {
		return fmt.Errorf("import rules: %w", err)
	}
	return s.ReplaceRules(ctx, rules)
}
