package analysis

import (
	"context"
	"io"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/span"
)

type Options struct {
	Policy Policy
	Delay  time.Duration // default: DefaultDelay

	// Logger receives failures and, with Trace, every generation decision.
	// nil discards.
	Logger *log.Logger
	Trace  bool

	// NewID mints issue ids. nil uses issue.NewID.
	NewID func() string

	// Tick and Now replace tea.Tick and time.Now in tests.
	Tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
	Now  func() time.Time
}

// TickMsg fires when a scheduled analysis is due. Only the most recently
// armed token is honoured.
type TickMsg struct {
	Token uint64
}

// ResultMsg carries an analyzer reply tagged with the generation it was
// requested for.
type ResultMsg struct {
	Generation uint64
	Issues     []issue.Raw
	Err        error
}

type EventKind uint8

const (
	EventNone EventKind = iota
	// EventReplaced means the store now holds a new issue set.
	EventReplaced
	// EventFailed means the live request failed. Err is set.
	EventFailed
)

// Event tells the host what an update did to the store.
type Event struct {
	Kind       EventKind
	Generation uint64
	Err        error
}

// Coordinator owns the issue store and decides which analyzer replies reach
// it. It runs on the Bubble Tea update loop and is not safe for concurrent
// use; the analyzer calls it returns as commands run elsewhere and report
// back as messages.
type Coordinator struct {
	analyzer Analyzer
	opt      Options
	logger   *log.Logger

	store   *issue.Store
	ignored *issue.IgnoreSet

	text       string
	generation uint64

	// pending is set between scheduling and the timer firing.
	pending    bool
	pendingGen uint64
	timerToken uint64
	lastIssued time.Time

	analyzing bool
	cancel    context.CancelFunc
	lastErr   error
}

func New(a Analyzer, opt Options) *Coordinator {
	if opt.Delay <= 0 {
		opt.Delay = DefaultDelay
	}
	if opt.Tick == nil {
		opt.Tick = tea.Tick
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Coordinator{
		analyzer: a,
		opt:      opt,
		logger:   logger,
		store:    issue.NewStore(),
		ignored:  issue.NewIgnoreSet(),
	}
}

// Store is the live issue store. Callers may read it and remove issues
// locally; replacement goes through the coordinator.
func (c *Coordinator) Store() *issue.Store { return c.store }

func (c *Coordinator) Ignored() *issue.IgnoreSet { return c.ignored }

func (c *Coordinator) Generation() uint64 { return c.generation }

// IsAnalyzing reports whether the live generation's analyzer call is
// outstanding.
func (c *Coordinator) IsAnalyzing() bool { return c.analyzing }

// Pending reports whether an analysis is scheduled but not yet sent.
func (c *Coordinator) Pending() bool { return c.pending }

// LastError is the most recent live failure, cleared by the next accepted
// result.
func (c *Coordinator) LastError() error { return c.lastErr }

func (c *Coordinator) Text() string { return c.text }

// Remap moves stored spans through a local edit made before the next
// result arrives.
func (c *Coordinator) Remap(deltas ...span.Delta) {
	for _, d := range deltas {
		c.store.Remap(d)
	}
}

// Ignore adds id to the session ignore set and drops it from the store.
// Ignoring twice is the same as once.
func (c *Coordinator) Ignore(id string) bool {
	c.ignored.Add(id)
	return c.store.RemoveLocal(id)
}

// OnBufferChanged records text and schedules an analysis according to the
// policy. Blank text clears the store at once without calling the analyzer.
func (c *Coordinator) OnBufferChanged(text string) (Event, tea.Cmd) {
	c.text = text
	if strings.TrimSpace(text) == "" {
		return c.clear(), nil
	}

	if !c.pending {
		c.supersede()
		c.pending = true
		c.pendingGen = c.generation
		c.trace("schedule g=%d policy=%s", c.pendingGen, c.opt.Policy)
		return Event{}, c.arm(c.firstDelay())
	}

	if c.opt.Policy == PolicyDebounce {
		return Event{}, c.arm(c.opt.Delay)
	}
	return Event{}, nil
}

// Refresh analyzes the current text now, superseding anything pending or in
// flight.
func (c *Coordinator) Refresh() (Event, tea.Cmd) {
	if strings.TrimSpace(c.text) == "" {
		return c.clear(), nil
	}
	c.supersede()
	c.pending = false
	c.timerToken++
	c.trace("refresh g=%d", c.generation)
	return Event{}, c.request(c.generation)
}

// Update handles TickMsg and ResultMsg. Other messages are ignored.
func (c *Coordinator) Update(msg tea.Msg) (Event, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !c.pending || msg.Token != c.timerToken {
			return Event{}, nil
		}
		c.pending = false
		return Event{}, c.request(c.pendingGen)
	case ResultMsg:
		return c.accept(msg), nil
	}
	return Event{}, nil
}

// Close cancels the in-flight request, if any.
func (c *Coordinator) Close() {
	c.cancelInFlight()
	c.pending = false
	c.timerToken++
}

func (c *Coordinator) accept(msg ResultMsg) Event {
	if msg.Generation != c.generation {
		c.trace("discard g=%d live=%d", msg.Generation, c.generation)
		return Event{}
	}
	c.analyzing = false
	c.cancelInFlight()

	if msg.Err != nil {
		c.lastErr = msg.Err
		c.logf("analyze failed: g=%d: %v", msg.Generation, msg.Err)
		return Event{Kind: EventFailed, Generation: msg.Generation, Err: msg.Err}
	}

	c.lastErr = nil
	c.store.Replace(issue.FromRaw(c.inRange(msg.Issues), c.opt.NewID), c.ignored)
	c.trace("apply g=%d issues=%d", msg.Generation, c.store.Len())
	return Event{Kind: EventReplaced, Generation: msg.Generation}
}

// inRange drops raws whose span does not fit the analyzed text. A live
// generation was requested for exactly c.text.
func (c *Coordinator) inRange(raws []issue.Raw) []issue.Raw {
	n := utf8.RuneCountInString(c.text)
	out := raws[:0:0]
	for _, r := range raws {
		if !r.Span.Valid(n) {
			c.trace("drop span=%v len=%d rule=%s", r.Span, n, r.Rule)
			continue
		}
		out = append(out, r)
	}
	return out
}

// supersede starts a new generation. Whatever was scheduled or in flight
// for the old one can no longer be applied.
func (c *Coordinator) supersede() {
	c.generation++
	c.analyzing = false
	c.cancelInFlight()
}

func (c *Coordinator) clear() Event {
	c.supersede()
	c.pending = false
	c.timerToken++
	c.lastErr = nil
	c.store.Clear()
	c.trace("clear g=%d", c.generation)
	return Event{Kind: EventReplaced, Generation: c.generation}
}

func (c *Coordinator) firstDelay() time.Duration {
	if c.opt.Policy != PolicyThrottle || c.lastIssued.IsZero() {
		return c.opt.Delay
	}
	next := c.lastIssued.Add(c.opt.Delay)
	if d := next.Sub(c.opt.Now()); d > 0 {
		return d
	}
	return 0
}

func (c *Coordinator) arm(d time.Duration) tea.Cmd {
	c.timerToken++
	token := c.timerToken
	return c.opt.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{Token: token}
	})
}

func (c *Coordinator) request(g uint64) tea.Cmd {
	c.cancelInFlight()
	c.analyzing = true
	c.lastIssued = c.opt.Now()

	text := c.text
	a := c.analyzer
	if a == nil {
		return func() tea.Msg { return ResultMsg{Generation: g, Err: ErrNoAnalyzer} }
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.trace("start g=%d len=%d", g, len(text))
	return func() tea.Msg {
		raws, err := a.Analyze(ctx, text)
		return ResultMsg{Generation: g, Issues: raws, Err: err}
	}
}

func (c *Coordinator) cancelInFlight() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Coordinator) logf(format string, args ...any) {
	c.logger.Printf("analysis: "+format, args...)
}

func (c *Coordinator) trace(format string, args ...any) {
	if c.opt.Trace {
		c.logf(format, args...)
	}
}
