package analysis

import (
	"fmt"
	"strings"
	"time"
)

// Policy decides when a scheduled analysis fires.
type Policy uint8

const (
	// PolicyDebounce fires Delay after the last change. Every change
	// re-arms the timer.
	PolicyDebounce Policy = iota
	// PolicyThrottle fires at most once per Delay. The first change after a
	// quiet period arms the timer for max(now, lastIssued+Delay); later
	// changes in the window only update the text that will be sent.
	PolicyThrottle
)

const DefaultDelay = 300 * time.Millisecond

func (p Policy) String() string {
	switch p {
	case PolicyDebounce:
		return "debounce"
	case PolicyThrottle:
		return "throttle"
	default:
		return fmt.Sprintf("policy(%d)", p)
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "debounce":
		return PolicyDebounce, nil
	case "throttle":
		return PolicyThrottle, nil
	default:
		return PolicyDebounce, fmt.Errorf("analysis: unknown policy %q", s)
	}
}
