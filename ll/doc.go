/*
Package ll implements prerequisites for LL(1) predictive parsing.
Parsers in sub-package ll1 are driven by a parsing table, which maps pairs of
(non-terminal, lookahead terminal) to the production to expand.

Package ll does not generate parsing tables from a grammar. Tables are supplied
pre-built by clients, entry by entry.

Building a Table

Tables are specified using a table builder object. Clients declare the
terminals with their token values, then add rows, each consisting of a
non-terminal, the lookaheads selecting the row, and the right-hand side of
the production to expand.

Example:

    b := ll.NewTableBuilder("G")
    b.Terminal("a", 1)
    b.Terminal("b", 2)
    b.LHS("S").On("a").T("a").N("B").End()   // S  ->  a B    on lookahead a
    b.LHS("B").On("b").T("b").N("B").End()   // B  ->  b B    on lookahead b
    b.LHS("B").On("eof").Epsilon()           // B  ->         on end of input
    table, err := b.Table()

The first LHS is the start symbol, unless set otherwise with Start(…).
The terminal "eof" is pre-declared and stands for the end of input.

Table construction will fail if a (non-terminal, lookahead) key is
defined more than once, i.e. if the table is not LL(1), or if symbols are
used inconsistently. All problems found are reported.

Lookup

Table lookups are pure and may be done concurrently:

    p, ok := table.Resolve(B, 2)  // production to expand for B on lookahead b

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
