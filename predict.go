package predict

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Apart from EOF we do not define any
// constants here, as it is up to applications to define them.
type TokType int

// EOF is the token category for the end of input. Scanners report it for the
// end of the input stream as well as for an explicit end-marker, if a language
// has one.
const EOF TokType = -1

// TokTypeStringer is a type to be provided by a scanner/parser combination to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an integer literal:
//
//    TokType  = Number      // identifier for this kind of tokens (application specific)
//    Lexeme   = "10"        // lexeme how it appeared in the input stream
//    Value    = 10          // is an int64 value
//    Span     = 8…10        // occured from byte position 8 in the input stream
//    Position = 1:9         // line 1, column 9
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Position() Position
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Positions --------------------------------------------------------

// Position is a human readable input position. Lines and columns start at 1;
// columns count runes, not bytes.
type Position struct {
	Line   int
	Column int
}

// IsValid is false for the zero position.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
