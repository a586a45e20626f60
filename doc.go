/*
Package predict is a toolbox for table-driven LL(1) predictive parsing.

A predictive parser reads its input from left to right and decides with a
single token of lookahead which production of a grammar to apply next. The
decisions are encoded in a parsing table, which is supplied pre-built by
clients. Package structure is as follows:

■ ll: Package ll implements grammar symbols, productions and the LL(1) parsing
table, backed by a sparse matrix (ll/sparse).

■ ll/scanner: Package scanner defines the tokenizer interface for parsers, together
with an adapter for the lexmachine scanner generator (ll/scanner/lexmach).

■ ll/ll1: Package ll1 implements the stack-based LL(1) driver.

■ decl: Package decl is a small demonstration language for variable declarations,
including a command line tool (decl/declrepl).

The base package contains data types which are used throughout all the other packages,
i.e. tokens, spans, positions and diagnostics for rejected input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict
