package lexmach

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
// The compiled DFA is read-only and may be shared by many scanners.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string, opts ...Option) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	lms := &LMScanner{
		scanner: s,
		Error:   scanner.LogError,
		text:    input,
		lines:   scanner.NewLineIndex(input),
	}
	for _, opt := range opts {
		opt(lms)
	}
	return lms, nil
}

// Option configures a lexmachine scanner.
type Option func(*LMScanner)

// ErrorTolerant sets or clears option ErrorTolerant: report illegal input to
// the error handler and skip it, instead of stopping.
func ErrorTolerant(b bool) Option {
	return func(lms *LMScanner) {
		lms.tolerant = b
	}
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface. LMScanners are not restartable and not safe for
// concurrent use.
type LMScanner struct {
	scanner  *lexmachine.Scanner
	Error    func(error)
	text     string
	lines    *scanner.LineIndex
	tolerant bool
	err      error // sticky error for non-tolerant mode
	atEOF    bool
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// After the end of input, NextToken returns an EOF token on every call.
func (lms *LMScanner) NextToken() (predict.Token, error) {
	if lms.err != nil {
		return nil, lms.err
	}
	if lms.scanner == nil || lms.atEOF {
		return lms.eofToken(), nil
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lexerr := lms.lexicalError(err)
		lms.Error(lexerr)
		if !lms.tolerant || !lms.skip(err) {
			lms.err = lexerr
			return nil, lexerr
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		tracer().Debugf("LMScanner reached end of input")
		lms.atEOF = true
		return lms.eofToken(), nil
	}
	token := tok.(*lexmachine.Token)
	from := token.TC
	to := from + len(token.Lexeme)
	t := scanner.MakeDefaultToken(
		predict.TokType(token.Type),
		string(token.Lexeme),
		predict.Span{uint64(from), uint64(to)},
		lms.lines.Position(from),
	).WithValue(token.Value)
	tracer().Debugf("token %v", t)
	return t, nil
}

func (lms *LMScanner) eofToken() predict.Token {
	end := len(lms.text)
	var pos predict.Position
	if lms.lines != nil {
		pos = lms.lines.Position(end)
	}
	return scanner.MakeDefaultToken(scanner.EOF, "", predict.Span{uint64(end), uint64(end)}, pos)
}

// lexicalError converts an error of lexmachine into a *predict.LexicalError,
// naming the first character which could not be scanned.
func (lms *LMScanner) lexicalError(err error) error {
	var ui *machines.UnconsumedInput
	var me *MatchError
	switch {
	case errors.As(err, &ui):
		return lms.illegalCharAt(ui.StartTC)
	case errors.As(err, &me):
		return lms.illegalCharAt(me.TC)
	}
	return fmt.Errorf("scanner: %w", err)
}

func (lms *LMScanner) illegalCharAt(tc int) *predict.LexicalError {
	r := utf8.RuneError
	if tc >= 0 && tc < len(lms.text) {
		r, _ = utf8.DecodeRuneInString(lms.text[tc:])
	}
	return &predict.LexicalError{Char: r, Pos: lms.lines.Position(tc)}
}

// skip moves the scanner behind illegal input. It returns false if the
// scanner cannot recover from err.
func (lms *LMScanner) skip(err error) bool {
	var ui *machines.UnconsumedInput
	var me *MatchError
	switch {
	case errors.As(err, &ui):
		_, w := utf8.DecodeRuneInString(lms.text[ui.StartTC:])
		if w == 0 {
			w = 1
		}
		lms.scanner.TC = ui.StartTC + w
		return true
	case errors.As(err, &me):
		if end := me.TC + len(me.Lexeme); lms.scanner.TC < end {
			lms.scanner.TC = end
		}
		return true
	}
	return false
}

// ---------------------------------------------------------------------------

// MatchError is returned by actions which matched input they cannot convert
// into a token.
type MatchError struct {
	TC     int    // text offset of the match
	Lexeme string // matched input
	Err    error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("cannot convert %q at offset %d: %v", e.Lexeme, e.TC, e.Err)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// MakeIntToken is a pre-defined action which wraps a scanned match into a
// token with an int64 value. Numbers out of range result in a *MatchError.
func MakeIntToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		n, err := strconv.ParseInt(string(m.Bytes), 10, 64)
		if err != nil {
			return nil, &MatchError{TC: m.TC, Lexeme: string(m.Bytes), Err: err}
		}
		return s.Token(id, n, m), nil
	}
}
