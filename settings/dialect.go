package settings

import (
	"fmt"
	"strings"
)

type Dialect int

const (
	DialectAmerican Dialect = iota
	DialectBritish
	DialectAustralian
	DialectCanadian
)

var dialectNames = [...]string{"American", "British", "Australian", "Canadian"}

func (d Dialect) String() string {
	if d < 0 || int(d) >= len(dialectNames) {
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
	return dialectNames[d]
}

// ParseDialect is case-insensitive. Unknown names return DialectAmerican
// and an error.
func ParseDialect(s string) (Dialect, error) {
	for i, name := range dialectNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Dialect(i), nil
		}
	}
	return DialectAmerican, fmt.Errorf("unknown dialect %q", s)
}

// Dialects lists every dialect in display order.
func Dialects() []Dialect {
	return []Dialect{DialectAmerican, DialectBritish, DialectAustralian, DialectCanadian}
}
