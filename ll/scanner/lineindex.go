package scanner

import (
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/predict"
)

// LineIndex maps byte offsets of a text to line/column positions.
// Lines and columns start at 1; columns count runes, not bytes.
type LineIndex struct {
	text  string
	lines []int // byte offset of the start of each line
}

// NewLineIndex creates a line index for text.
func NewLineIndex(text string) *LineIndex {
	li := &LineIndex{text: text, lines: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			li.lines = append(li.lines, i+1)
		}
	}
	return li
}

// LineCount returns the number of lines of the text.
func (li *LineIndex) LineCount() int {
	return len(li.lines)
}

// Position returns the line and column for a byte offset. Offsets beyond
// the end of the text are clamped to the end of the text.
func (li *LineIndex) Position(offset int) predict.Position {
	if offset < 0 {
		offset = 0
	} else if offset > len(li.text) {
		offset = len(li.text)
	}
	// index of the first line starting after offset
	l := sort.Search(len(li.lines), func(i int) bool { return li.lines[i] > offset })
	start := li.lines[l-1]
	return predict.Position{
		Line:   l,
		Column: utf8.RuneCountInString(li.text[start:offset]) + 1,
	}
}
