package editor

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// segment is one visual row: runes [start,end) of a buffer line.
type segment struct {
	row        int
	start, end int
	cells      int
	last       bool // final segment of its line
}

type layout struct {
	rows     []segment
	firstRow []int // first visual row of each buffer line
	lines    [][]rune
	tabWidth int
}

type layoutKey struct {
	textVersion uint64
	width       int
	wrap        WrapMode
	tabWidth    int
}

func runeCells(r rune, tabWidth int) int {
	if r == '\t' {
		return tabWidth
	}
	if unicode.IsControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}

func lineCells(line []rune, tabWidth int) int {
	n := 0
	for _, r := range line {
		n += runeCells(r, tabWidth)
	}
	return n
}

func buildLayout(lines [][]rune, mode WrapMode, width, tabWidth int) layout {
	l := layout{lines: lines, tabWidth: tabWidth, firstRow: make([]int, len(lines))}
	for row, line := range lines {
		l.firstRow[row] = len(l.rows)
		segs := wrapLine(line, mode, width, tabWidth)
		for i := range segs {
			segs[i].row = row
		}
		segs[len(segs)-1].last = true
		l.rows = append(l.rows, segs...)
	}
	if len(l.rows) == 0 {
		l.lines = [][]rune{nil}
		l.firstRow = []int{0}
		l.rows = []segment{{last: true}}
	}
	return l
}

// wrapLine always returns at least one segment.
func wrapLine(line []rune, mode WrapMode, width, tabWidth int) []segment {
	if mode == WrapNone || width <= 0 || lineCells(line, tabWidth) <= width {
		return []segment{{start: 0, end: len(line), cells: lineCells(line, tabWidth)}}
	}
	var out []segment
	for start := 0; start < len(line); {
		used := 0
		end := start
		for end < len(line) {
			w := max(runeCells(line[end], tabWidth), 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			end++
		}
		if mode == WrapWord && end < len(line) {
			if br, ok := wordBreak(line, start, end); ok {
				end = br
			}
		}
		out = append(out, segment{start: start, end: end, cells: lineCells(line[start:end], tabWidth)})
		start = end
	}
	return out
}

// wordBreak finds the position after the last whitespace run in
// line[start:overflow].
func wordBreak(line []rune, start, overflow int) (int, bool) {
	last := -1
	for i := start; i < overflow; i++ {
		if unicode.IsSpace(line[i]) && (i+1 == overflow || !unicode.IsSpace(line[i+1])) {
			last = i + 1
		}
	}
	if last <= start {
		return 0, false
	}
	return last, true
}

// segmentFor returns the visual row holding col of row. A column on a wrap
// boundary belongs to the later segment.
func (l layout) segmentFor(row, col int) int {
	row = clampInt(row, 0, len(l.firstRow)-1)
	vr := l.firstRow[row]
	for vr+1 < len(l.rows) && l.rows[vr+1].row == row && col >= l.rows[vr+1].start {
		vr++
	}
	return vr
}

// cellsBefore is the cell offset of col within its segment.
func (l layout) cellsBefore(seg segment, col int) int {
	line := l.lines[seg.row]
	col = clampInt(col, seg.start, seg.end)
	return lineCells(line[seg.start:col], l.tabWidth)
}

// colAtCell maps a cell offset inside seg to a rune column.
func (l layout) colAtCell(seg segment, cell int) int {
	line := l.lines[seg.row]
	used := 0
	for col := seg.start; col < seg.end; col++ {
		w := runeCells(line[col], l.tabWidth)
		if cell < used+w {
			return col
		}
		used += w
	}
	if seg.last || seg.end == seg.start {
		return seg.end
	}
	return seg.end - 1
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
