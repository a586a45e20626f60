package decl

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/ll1"
	"github.com/npillmayer/predict/ll/scanner/lexmach"
)

// EndMarker terminates input.
const EndMarker = "$"

// Normalize appends an end marker to input, if it does not already end
// with one. Positions within the original input are not changed.
func Normalize(input string) string {
	if strings.HasSuffix(strings.TrimSpace(input), EndMarker) {
		return input
	}
	return input + " " + EndMarker
}

// Scanner creates a scanner for input. Input is not normalized.
func Scanner(input string, opts ...lexmach.Option) (*lexmach.LMScanner, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	return lm.Scanner(input, opts...)
}

var parserOnce sync.Once
var parser *ll1.Parser
var parserErr error

// Parser returns the LL(1) parser for declarations. It is safe for concurrent use.
func Parser() (*ll1.Parser, error) {
	parserOnce.Do(func() {
		t, err := Table()
		if err != nil {
			parserErr = fmt.Errorf("decl: %w", err)
			return
		}
		parser = ll1.NewParser(t, ll1.WithTokenNames(TokenName))
	})
	return parser, parserErr
}

// Parse checks if input is a valid sequence of declarations. It returns nil
// if the input has been accepted. Rejected input results in either a
// *predict.LexicalError or a *predict.SyntaxError.
func Parse(input string) error {
	return ParseWith(input, nil)
}

// ParseWith parses input as Parse does, reporting the derivation to l.
func ParseWith(input string, l ll1.Listener) error {
	p, err := Parser()
	if err != nil {
		return err
	}
	input = Normalize(input)
	tracer().Debugf("parse %q", input)
	scan, err := Scanner(input)
	if err != nil {
		return fmt.Errorf("decl: %w", err)
	}
	scan.SetErrorHandler(func(e error) {
		tracer().Debugf("lexical error: %v", e)
	})
	return p.Parse(scan, l)
}

// Tokenize splits input into tokens, up to and including the first token
// of type EOF. If tolerant is set, illegal characters are collected and
// skipped; otherwise tokenizing stops with the first error.
func Tokenize(input string, tolerant bool) ([]predict.Token, []error) {
	scan, err := Scanner(input, lexmach.ErrorTolerant(tolerant))
	if err != nil {
		return nil, []error{err}
	}
	var errs []error
	scan.SetErrorHandler(func(e error) {
		if tolerant {
			errs = append(errs, e)
		}
	})
	var tokens []predict.Token
	for {
		tok, err := scan.NextToken()
		if err != nil {
			return tokens, append(errs, err)
		}
		tokens = append(tokens, tok)
		if tok.TokType() == EOF {
			return tokens, errs
		}
	}
}
