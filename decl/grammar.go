package decl

import (
	"sync"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
)

var tableOnce sync.Once
var table *ll.Table
var tableErr error

// Table returns the LL(1) parsing table for declarations:
//
//    S  ->  TT identificador D  |  ε
//    TT ->  int  |  float  |  ε
//    D  ->  coma identificador D  |  finInstruccion  |  ε
//
// The table is created once and shared.
func Table() (*ll.Table, error) {
	tableOnce.Do(func() {
		b := ll.NewTableBuilder("declarations")
		for _, tt := range []predict.TokType{Identifier, IntKeyword, FloatKeyword, Comma, StatementEnd} {
			b.Terminal(TokenName(tt), tt)
		}
		b.LHS("S").On("identificador", "coma", "finInstruccion", "eof").Epsilon()
		b.LHS("S").On("int").N("TT").T("identificador").N("D").End()
		b.LHS("S").On("float").N("TT").T("identificador").N("D").End()
		b.LHS("TT").On("int").T("int").End()
		b.LHS("TT").On("float").T("float").End()
		b.LHS("TT").On("identificador", "coma", "finInstruccion", "eof").Epsilon()
		b.LHS("D").On("coma").T("coma").T("identificador").N("D").End()
		b.LHS("D").On("finInstruccion").T("finInstruccion").End()
		b.LHS("D").On("identificador", "int", "float").Epsilon()
		table, tableErr = b.Table()
		if tableErr == nil {
			table.Dump()
		}
	})
	return table, tableErr
}
