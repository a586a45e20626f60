package ll1

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}

// Parser is an LL(1)-parser type. Create and initialize one with ll1.NewParser(...)
//
// A parser holds no state between calls to Parse, apart from its read-only
// table. It may therefore be used for many parses, concurrently.
type Parser struct {
	table    *ll.Table
	tokNames predict.TokTypeStringer
}

// Listener receives the steps of a left derivation.
//
// Expand is called whenever a non-terminal A is replaced by the right-hand
// side of production p. Match is called for every token matched by a
// terminal. depth is the nesting depth of the derivation tree, with the start
// symbol at depth 0.
type Listener interface {
	Expand(A ll.Symbol, p *ll.Production, depth int)
	Match(t predict.Token, depth int)
}

// Option configures a parser.
type Option func(*Parser)

// WithTokenNames sets a function for naming token types in diagnostics, for
// tokens which are not terminals of the parser's table.
func WithTokenNames(names predict.TokTypeStringer) Option {
	return func(p *Parser) {
		p.tokNames = names
	}
}

// NewParser creates an LL(1) parser.
func NewParser(table *ll.Table, opts ...Option) *Parser {
	parser := &Parser{table: table}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// We store grammar symbols on the parse stack, together with the depth
// within the derivation tree.
type stackitem struct {
	sym   ll.Symbol
	depth int
}

// Parse starts a new parse, reading tokens from a scanner.
// The parser must have been initialized with a table.
//
// Parse returns nil if the input has been accepted. Otherwise it returns a
// *predict.SyntaxError, or the error the scanner reported. Tokens after the
// one ending the input are never pulled from the scanner.
func (p *Parser) Parse(scan scanner.Tokenizer, l Listener) error {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.table == nil || scan == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return fmt.Errorf("LL(1)-parser not initialized")
	}
	if l == nil {
		l = nopListener{}
	}
	stack := arraystack.New() // parse stack, never empty while parsing
	stack.Push(stackitem{sym: ll.EOFMarker})
	stack.Push(stackitem{sym: p.table.Start()})
	token, err := nextToken(scan)
	if err != nil {
		return err
	}
	for {
		x, _ := stack.Peek()
		tos := x.(stackitem)
		tokval := token.TokType()
		tracer().Debugf("TOS = %s, lookahead = %q/%d", tos.sym, token.Lexeme(), tokval)
		if tos.sym == ll.EOFMarker && tokval == predict.EOF {
			l.Match(token, tos.depth)
			tracer().Infof("input accepted")
			return nil
		}
		if tos.sym.IsTerminal() {
			if tos.sym.TokType() != tokval {
				return p.syntaxError(tos.sym, token, false)
			}
			stack.Pop()
			l.Match(token, tos.depth)
			if token, err = nextToken(scan); err != nil {
				return err
			}
			continue
		}
		prod, ok := p.table.Resolve(tos.sym, tokval)
		if !ok {
			return p.syntaxError(tos.sym, token, true)
		}
		tracer().Debugf("expand %s", prod)
		stack.Pop()
		l.Expand(tos.sym, prod, tos.depth)
		rhs := prod.RHS()
		for i := len(rhs) - 1; i >= 0; i-- { // push RHS in reverse order
			stack.Push(stackitem{sym: rhs[i], depth: tos.depth + 1})
		}
	}
}

func nextToken(scan scanner.Tokenizer) (predict.Token, error) {
	token, err := scan.NextToken()
	if err != nil {
		tracer().Infof("scanner reported error: %v", err)
		return nil, err
	}
	if token == nil {
		return nil, fmt.Errorf("scanner returned no token")
	}
	return token, nil
}

// syntaxError creates a diagnostic for a lookahead which does not fit the
// symbol on top of the stack.
func (p *Parser) syntaxError(top ll.Symbol, token predict.Token, expecting bool) error {
	serr := &predict.SyntaxError{
		Expected:           top.Name,
		ExpectedIsTerminal: top.IsTerminal(),
		Found:              token.TokType(),
		FoundName:          p.tokenName(token.TokType()),
		Lexeme:             token.Lexeme(),
		Pos:                token.Position(),
	}
	if expecting {
		for _, la := range p.table.Expecting(top) {
			serr.Expecting = append(serr.Expecting, la.Name)
		}
	}
	tracer().Infof("syntax error: %v", serr)
	return serr
}

func (p *Parser) tokenName(tt predict.TokType) string {
	if A, ok := p.table.Terminal(tt); ok {
		return A.Name
	}
	if p.tokNames != nil {
		return p.tokNames(tt)
	}
	return fmt.Sprintf("%d", tt)
}

type nopListener struct{}

func (nopListener) Expand(ll.Symbol, *ll.Production, int) {}
func (nopListener) Match(predict.Token, int)              {}
