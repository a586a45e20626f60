package ll

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/sparse"
)

// Table is an LL(1) parsing table. Rows are the non-terminals of a grammar,
// columns are lookahead terminals and the entries are productions.
//
// Tables are created by a TableBuilder and are never modified afterwards.
// They may be shared between parsers and goroutines.
type Table struct {
	name      string
	start     Symbol
	nonterms  []Symbol // indexed by row
	terms     []Symbol // sorted by token type
	termindex map[predict.TokType]Symbol
	prods     []*Production
	matrix    *sparse.IntMatrix
	mincol    int // token type of column 0
}

// Name returns the name given to the table builder.
func (t *Table) Name() string {
	return t.name
}

// Start returns the start symbol.
func (t *Table) Start() Symbol {
	return t.start
}

// NonTerminals returns all non-terminal symbols, ordered by row.
func (t *Table) NonTerminals() []Symbol {
	return append([]Symbol(nil), t.nonterms...)
}

// Terminals returns all terminal symbols, ordered by token type.
func (t *Table) Terminals() []Symbol {
	return append([]Symbol(nil), t.terms...)
}

// Terminal returns the terminal symbol matching tokens of type tt.
func (t *Table) Terminal(tt predict.TokType) (Symbol, bool) {
	A, ok := t.termindex[tt]
	return A, ok
}

// Production returns production number n.
func (t *Table) Production(n int) *Production {
	if n < 0 || n >= len(t.prods) {
		return nil
	}
	return t.prods[n]
}

// Size returns the number of entries in the table.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Resolve finds the production to expand for non-terminal A if the lookahead
// is of token type la. The boolean result is false if there is no such entry.
func (t *Table) Resolve(A Symbol, la predict.TokType) (*Production, bool) {
	row, ok := t.row(A)
	if !ok {
		return nil, false
	}
	col := int(la) - t.mincol
	if col < 0 || col >= t.matrix.N() {
		return nil, false
	}
	v := t.matrix.Value(row, col)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.prods[v], true
}

// Expecting returns the lookahead terminals for which non-terminal A has an
// entry, sorted by name.
func (t *Table) Expecting(A Symbol) []Symbol {
	row, ok := t.row(A)
	if !ok {
		return nil
	}
	las := treeset.NewWith(func(a, b interface{}) int {
		x, y := a.(Symbol).Name, b.(Symbol).Name
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
	t.matrix.Each(func(i, j int, _, _ int32) {
		if i == row {
			las.Add(t.termindex[predict.TokType(j+t.mincol)])
		}
	})
	expecting := make([]Symbol, 0, las.Size())
	for _, x := range las.Values() {
		expecting = append(expecting, x.(Symbol))
	}
	return expecting
}

// EachEntry calls f for every entry of the table, ordered by row and
// lookahead token type.
func (t *Table) EachEntry(f func(A Symbol, la Symbol, p *Production)) {
	t.matrix.Each(func(i, j int, v, _ int32) {
		f(t.nonterms[i], t.termindex[predict.TokType(j+t.mincol)], t.prods[v])
	})
}

// Dump traces the table's entries with level Debug.
func (t *Table) Dump() {
	tracer().Debugf("--- %s: LL(1) table with %d entries, start %s ---", t.name, t.Size(), t.start)
	t.EachEntry(func(A Symbol, la Symbol, p *Production) {
		tracer().Debugf("M[%s, %s] = %s ::= %s", A, la, p.LHS, p.RHSString())
	})
	tracer().Debugf("-------------------------------------------------")
}

// Fingerprint returns a hash digest over the contents of the table. Tables
// with identical symbols and entries have identical fingerprints.
func (t *Table) Fingerprint() string {
	h, err := structhash.Hash(t.snapshot(), 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint table %s: %v", t.name, err)
		return ""
	}
	return h
}

// tableSnapshot is a hashable view of a table.
type tableSnapshot struct {
	Start     string
	Terminals []string
	Entries   []string
}

func (t *Table) snapshot() tableSnapshot {
	snap := tableSnapshot{Start: t.start.Name}
	for _, A := range t.terms {
		snap.Terminals = append(snap.Terminals, fmt.Sprintf("%s=%d", A.Name, A.Value))
	}
	t.EachEntry(func(A Symbol, la Symbol, p *Production) {
		snap.Entries = append(snap.Entries, fmt.Sprintf("%s,%s:%s", A, la, p.RHSString()))
	})
	sort.Strings(snap.Entries)
	return snap
}

func (t *Table) row(A Symbol) (int, bool) {
	if A.terminal || A.Value < 0 || A.Value >= len(t.nonterms) || t.nonterms[A.Value] != A {
		return 0, false
	}
	return A.Value, true
}
