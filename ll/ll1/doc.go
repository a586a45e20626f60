/*
Package ll1 provides a table-driven predictive LL(1)-parser. Clients have to
use package ll to prepare the parsing table. The parser utilizes the table to
create a left derivation for a given input, provided through a scanner
interface.

The parser keeps a stack of grammar symbols, initialized with the end-of-input
marker and the start symbol. In each step it looks at the top of the stack:
a terminal must match the lookahead token, a non-terminal is replaced by the
right-hand side of the production the table selects for the lookahead.
The input is accepted when the end-of-input marker is matched by the end of
input. The parser never backtracks; the number of steps is linear in the
length of the derivation.

Usage

	b := ll.NewTableBuilder("Signed Variables")
	b.Terminal("a", 1).Terminal("+", 2).Terminal("-", 3)
	b.LHS("Var").On("+", "-", "a").N("Sign").T("a").End()
	b.LHS("Sign").On("+").T("+").End()
	b.LHS("Sign").On("-").T("-").End()
	b.LHS("Sign").On("a").Epsilon()
	table, err := b.Table()

Finally parse some input:

	p := ll1.NewParser(table)
	err = p.Parse(scanner, nil)  // nil error: input accepted

Rejected input results in a *predict.SyntaxError, or whatever error the
scanner reported (usually a *predict.LexicalError). Clients may observe the
derivation by handing a Listener to Parse.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1
