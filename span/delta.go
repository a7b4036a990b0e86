package span

import "fmt"

// Delta describes one contiguous edit: the runes in [From, To) were replaced
// by Inserted runes.
type Delta struct {
	From     int
	To       int
	Inserted int
}

// Change is the net length change caused by d.
func (d Delta) Change() int {
	return d.Inserted - (d.To - d.From)
}

// IsInsert reports whether d removes nothing.
func (d Delta) IsInsert() bool { return d.From == d.To }

func (d Delta) String() string {
	return fmt.Sprintf("{%d,%d,+%d}", d.From, d.To, d.Inserted)
}

// Normalize orders From/To and drops negative values.
func Normalize(d Delta) Delta {
	if d.To < d.From {
		d.From, d.To = d.To, d.From
	}
	if d.From < 0 {
		d.From = 0
	}
	if d.To < 0 {
		d.To = 0
	}
	if d.Inserted < 0 {
		d.Inserted = 0
	}
	return d
}

// Map moves s through d.
//
//   - An edit entirely after the span leaves it unchanged. An insertion at
//     exactly s.End counts as after.
//   - An edit entirely before the span shifts both bounds by d.Change(). An
//     insertion at exactly s.Start counts as before.
//   - A bound strictly inside the replaced region collapses to d.From.
//
// A span whose runes were all deleted comes out empty at the edit point.
func Map(s Span, d Delta) Span {
	d = Normalize(d)
	out := Span{
		Start: mapBound(s.Start, d, true),
		End:   mapBound(s.End, d, false),
	}
	if out.End < out.Start {
		out.End = out.Start
	}
	return out
}

// MapAll maps every span through the deltas in order. The input slice is not
// modified.
func MapAll(spans []Span, deltas ...Delta) []Span {
	if len(spans) == 0 {
		return nil
	}
	out := make([]Span, len(spans))
	copy(out, spans)
	for _, d := range deltas {
		for i := range out {
			out[i] = Map(out[i], d)
		}
	}
	return out
}

func mapBound(p int, d Delta, start bool) int {
	switch {
	case p < d.From:
		return p
	case d.IsInsert():
		if p > d.From || start {
			return p + d.Change()
		}
		return p
	case p == d.From:
		return p
	case p >= d.To:
		return p + d.Change()
	default:
		return d.From
	}
}
