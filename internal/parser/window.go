package parser

import (
	"github.com/shapestone/shape-bml/internal/tokenizer"
)

// window is a bounded view over the document's lines.
//
// Every interpreter sees its own first line as line 0, so positions it reports
// are local and get reframed by the caller. Consuming a key or item marker
// never rewrites the backing lines: strip returns a new window whose first
// line starts further right. The backing slice is shared and never mutated,
// which keeps interpretation repeatable over the same input.
type window struct {
	lines []string
	start int
	count int
	col   int // bytes of lines[start] consumed before this window
}

func newWindow(lines []string) window {
	return window{lines: lines, count: len(lines)}
}

func (w window) len() int {
	return w.count
}

// line returns the i-th line; line 0 excludes consumed bytes.
func (w window) line(i int) string {
	s := w.lines[w.start+i]
	if i == 0 {
		return s[w.col:]
	}
	return s
}

// indentation returns the column of the first non-whitespace byte of the i-th
// line in the backing line, so a stripped first line aligns with the whole
// lines below it.
func (w window) indentation(i int) int {
	n := tokenizer.Indentation(w.line(i))
	if i == 0 {
		n += w.col
	}
	return n
}

// from drops the first i lines.
func (w window) from(i int) window {
	if i == 0 {
		return w
	}
	return window{lines: w.lines, start: w.start + i, count: w.count - i}
}

// take keeps the first n lines.
func (w window) take(n int) window {
	w.count = n
	return w
}

// strip returns the window starting at line i with the first n bytes of that
// line consumed.
func (w window) strip(i, n int) window {
	col := n
	if i == 0 {
		col += w.col
	}
	return window{lines: w.lines, start: w.start + i, count: w.count - i, col: col}
}

// blockEnd returns the index of the last line of the nested block that follows
// line 0: the run of lines that are blank or indented deeper than indent.
// Trailing blank lines are not part of the block. Returns 0 if the block is empty.
func (w window) blockEnd(indent int) int {
	end := 0
	for i := 1; i < w.len(); i++ {
		line := w.line(i)
		if tokenizer.IsBlank(line) {
			continue
		}
		if tokenizer.Indentation(line) <= indent {
			break
		}
		end = i
	}
	return end
}
