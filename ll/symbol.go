package ll

import (
	"fmt"
	"strings"

	"github.com/npillmayer/predict"
)

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are values and may be compared with ==.
//
// For terminals, Value is the token type the symbol matches. For
// non-terminals, Value is the row of the symbol within its table.
type Symbol struct {
	Name     string
	Value    int
	terminal bool
}

// EOFMarker is the terminal symbol for the end of input. It sits at the
// bottom of every parse stack.
var EOFMarker = Symbol{Name: "eof", Value: int(predict.EOF), terminal: true}

// NoSymbol is the zero value of a symbol.
var NoSymbol = Symbol{}

// IsTerminal returns true if this symbol is a terminal.
func (A Symbol) IsTerminal() bool {
	return A.terminal
}

// TokType returns the token type of a terminal symbol. For non-terminals
// it returns predict.EOF - 1, which is never a valid token type.
func (A Symbol) TokType() predict.TokType {
	if !A.terminal {
		return predict.EOF - 1
	}
	return predict.TokType(A.Value)
}

func (A Symbol) String() string {
	return A.Name
}

// --- Productions -----------------------------------------------------------

// Production is a rule of a grammar, LHS ⟶ RHS. Productions are owned by a
// table and must not be modified by clients.
type Production struct {
	Serial int    // position in the table's list of productions
	LHS    Symbol // non-terminal on the left
	rhs    []Symbol
}

// RHS returns the right-hand side of a production. The slice is shared with
// the table and is to be treated as read-only.
func (p *Production) RHS() []Symbol {
	return p.rhs
}

// Len returns the number of symbols on the right-hand side.
func (p *Production) Len() int {
	return len(p.rhs)
}

// IsEpsilon returns true for a production with an empty right-hand side.
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 0
}

func (p *Production) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d: [%s] ::= [", p.Serial, p.LHS.Name))
	for i, A := range p.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}

// RHSString returns the right-hand side as a string, using 'ε' for
// epsilon productions.
func (p *Production) RHSString() string {
	if p.IsEpsilon() {
		return "ε"
	}
	names := make([]string, len(p.rhs))
	for i, A := range p.rhs {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}
