package ll

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/sparse"
)

// TableBuilder is a type for constructing LL(1) parsing tables. Create one
// with NewTableBuilder.
type TableBuilder struct {
	name      string
	start     string
	terminals map[string]predict.TokType
	rules     []*RuleBuilder
	errs      []error
}

// NewTableBuilder gets a new table builder, given the name of the grammar
// the table is for.
func NewTableBuilder(name string) *TableBuilder {
	b := &TableBuilder{
		name:      name,
		terminals: make(map[string]predict.TokType),
	}
	b.terminals[EOFMarker.Name] = predict.EOF
	return b
}

// Terminal declares a terminal symbol, matching tokens of type tt.
func (b *TableBuilder) Terminal(name string, tt predict.TokType) *TableBuilder {
	if t, ok := b.terminals[name]; ok && t != tt {
		b.errs = append(b.errs, fmt.Errorf("terminal %s declared with token types %d and %d", name, t, tt))
		return b
	}
	for n, t := range b.terminals {
		if t == tt && n != name {
			b.errs = append(b.errs, fmt.Errorf("terminals %s and %s share token type %d", n, name, tt))
			return b
		}
	}
	b.terminals[name] = tt
	return b
}

// Start sets the start symbol. If not called, the LHS of the first
// rule is the start symbol.
func (b *TableBuilder) Start(name string) *TableBuilder {
	b.start = name
	return b
}

// LHS starts a new table row for non-terminal name.
func (b *TableBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: name}
}

// RuleBuilder collects the lookaheads and the right-hand side of a table row.
// Rows are terminated with End() or Epsilon().
type RuleBuilder struct {
	b          *TableBuilder
	lhs        string
	lookaheads []string
	rhs        []rhsItem
}

type rhsItem struct {
	name     string
	terminal bool
}

// On adds lookahead terminals for which the row applies.
func (r *RuleBuilder) On(lookaheads ...string) *RuleBuilder {
	r.lookaheads = append(r.lookaheads, lookaheads...)
	return r
}

// N appends a non-terminal to the right-hand side.
func (r *RuleBuilder) N(name string) *RuleBuilder {
	r.rhs = append(r.rhs, rhsItem{name: name})
	return r
}

// T appends a (previously declared) terminal to the right-hand side.
func (r *RuleBuilder) T(name string) *RuleBuilder {
	r.rhs = append(r.rhs, rhsItem{name: name, terminal: true})
	return r
}

// End terminates a row.
func (r *RuleBuilder) End() *TableBuilder {
	if len(r.lookaheads) == 0 {
		r.b.errs = append(r.b.errs, fmt.Errorf("row for %s has no lookaheads", r.lhs))
	}
	r.b.rules = append(r.b.rules, r)
	return r.b
}

// Epsilon terminates a row with an empty right-hand side.
func (r *RuleBuilder) Epsilon() *TableBuilder {
	r.rhs = nil
	return r.End()
}

// Table creates the parsing table. If the rows added are not
// deterministic, or if symbols are used inconsistently, Table returns an
// error describing all the problems found.
func (b *TableBuilder) Table() (*Table, error) {
	errs := append([]error(nil), b.errs...)
	if len(b.rules) == 0 {
		return nil, fmt.Errorf("table %s has no rows", b.name)
	}
	t := &Table{
		name:      b.name,
		termindex: make(map[predict.TokType]Symbol),
	}
	// terminals, ordered by token type
	for name, tt := range b.terminals {
		t.terms = append(t.terms, Symbol{Name: name, Value: int(tt), terminal: true})
	}
	sort.Slice(t.terms, func(i, j int) bool { return t.terms[i].Value < t.terms[j].Value })
	for _, A := range t.terms {
		t.termindex[A.TokType()] = A
	}
	// non-terminals, in order of appearance
	rows := make(map[string]Symbol)
	nonterm := func(name string) Symbol {
		if A, ok := rows[name]; ok {
			return A
		}
		if _, ok := b.terminals[name]; ok {
			errs = append(errs, fmt.Errorf("symbol %s used as terminal and as non-terminal", name))
		}
		A := Symbol{Name: name, Value: len(t.nonterms)}
		rows[name] = A
		t.nonterms = append(t.nonterms, A)
		return A
	}
	haslhs := make(map[string]bool)
	for _, r := range b.rules {
		nonterm(r.lhs)
		haslhs[r.lhs] = true
	}
	for _, r := range b.rules {
		for _, item := range r.rhs {
			if !item.terminal {
				nonterm(item.name)
			}
		}
	}
	for _, A := range t.nonterms {
		if !haslhs[A.Name] {
			errs = append(errs, fmt.Errorf("non-terminal %s has no rows", A.Name))
		}
	}
	if b.start == "" {
		t.start = rows[b.rules[0].lhs]
	} else if A, ok := rows[b.start]; ok && haslhs[b.start] {
		t.start = A
	} else {
		errs = append(errs, fmt.Errorf("start symbol %s has no rows", b.start))
	}
	// productions and entries
	t.mincol = int(t.terms[0].Value)
	cols := t.terms[len(t.terms)-1].Value - t.mincol + 1
	t.matrix = sparse.NewIntMatrix(len(t.nonterms), cols, sparse.DefaultNullValue)
	for _, r := range b.rules {
		p := &Production{Serial: len(t.prods), LHS: rows[r.lhs]}
		for _, item := range r.rhs {
			if !item.terminal {
				p.rhs = append(p.rhs, rows[item.name])
			} else if tt, ok := b.terminals[item.name]; ok {
				p.rhs = append(p.rhs, t.termindex[tt])
			} else {
				errs = append(errs, fmt.Errorf("undeclared terminal %s in row for %s", item.name, r.lhs))
			}
		}
		t.prods = append(t.prods, p)
		for _, la := range r.lookaheads {
			tt, ok := b.terminals[la]
			if !ok {
				errs = append(errs, fmt.Errorf("lookahead %s for %s is not a declared terminal", la, r.lhs))
				continue
			}
			t.matrix.Add(p.LHS.Value, int(tt)-t.mincol, int32(p.Serial))
		}
	}
	t.matrix.Each(func(i, j int, v1, v2 int32) {
		if v2 != t.matrix.NullValue() {
			la := t.termindex[predict.TokType(j+t.mincol)]
			errs = append(errs, fmt.Errorf("conflict for M[%s, %s]: %s vs. %s",
				t.nonterms[i], la, t.prods[v1].RHSString(), t.prods[v2].RHSString()))
		}
	})
	if len(errs) > 0 {
		for _, err := range errs {
			tracer().Errorf("table %s: %v", b.name, err)
		}
		return nil, fmt.Errorf("cannot create LL(1) table %s: %w", b.name, errors.Join(errs...))
	}
	tracer().Infof("created LL(1) table %s with %d entries", t.name, t.Size())
	return t, nil
}
