/*
Package scanner defines an interface for scanners to be used with parsers of package ll.

A scanner implementation on top of lexmachine lives in sub-package `lexmach`.
For tests and for replaying token streams, a simple list-based tokenizer is
provided with this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// EOF is the token type for the end of input.
const EOF = predict.EOF

// Tokenizer is a scanner interface.
//
// NextToken returns the next token of the input. After the end of input has
// been reached, every call returns a token of type EOF. A non-nil error is
// returned for input the tokenizer is unable to recognize; this will usually
// be a *predict.LexicalError.
type Tokenizer interface {
	NextToken() (predict.Token, error)
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   predict.TokType
	lexeme string
	Val    interface{}
	span   predict.Span
	pos    predict.Position
}

var _ predict.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ predict.TokType, lexeme string, span predict.Span, pos predict.Position) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
		pos:    pos,
	}
}

// WithValue returns a copy of t carrying value v.
func (t DefaultToken) WithValue(v interface{}) DefaultToken {
	t.Val = v
	return t
}

func (t DefaultToken) TokType() predict.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() predict.Span {
	return t.span
}

func (t DefaultToken) Position() predict.Position {
	return t.pos
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q@%s>", t.kind, t.lexeme, t.pos)
}

// --- List tokenizer --------------------------------------------------------

// ListTokenizer replays a list of tokens. If the list does not end with an
// EOF token, one is synthesized, positioned right after the last token.
type ListTokenizer struct {
	tokens []predict.Token
	inx    int
	Error  func(error)
}

var _ Tokenizer = (*ListTokenizer)(nil)

// NewListTokenizer creates a tokenizer for a list of tokens.
func NewListTokenizer(tokens []predict.Token) *ListTokenizer {
	return &ListTokenizer{tokens: tokens, Error: LogError}
}

// SetErrorHandler is part of interface Tokenizer. ListTokenizers never
// report errors.
func (lt *ListTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		lt.Error = LogError
		return
	}
	lt.Error = h
}

// NextToken is part of interface Tokenizer.
func (lt *ListTokenizer) NextToken() (predict.Token, error) {
	if lt.inx < len(lt.tokens) {
		tok := lt.tokens[lt.inx]
		if tok.TokType() != EOF {
			lt.inx++
		}
		return tok, nil
	}
	var end uint64
	var pos predict.Position
	if len(lt.tokens) > 0 {
		last := lt.tokens[len(lt.tokens)-1]
		end = last.Span().To()
		if pos = last.Position(); pos.IsValid() {
			pos.Column += utf8.RuneCountInString(last.Lexeme())
		}
	}
	return MakeDefaultToken(EOF, "", predict.Span{end, end}, pos), nil
}
