/*
Package decl implements a small language of variable declarations, recognized
by an LL(1) parser. It serves as a demonstration of packages ll and ll1.

Statements declare one or more variables of type int or float:

    int x ;
    float a , b , c ;
    $

Input is terminated by an end marker '$'. If it is missing, Parse appends one.
Everything else, e.g. assignments, is rejected:

    err := decl.Parse("int x = 10 ;")
    // línea 1, columna 7: Se esperaba 'D' pero se encontró 'asignacion' ('=')
    fmt.Println(predict.Report(err.(predict.Diagnostic), "int x = 10 ;"))

The lexer knows about more tokens than the grammar uses (numbers, strings,
operators, braces, comments). They are recognized as tokens and then rejected
by the parser, with a syntax error naming the token.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package decl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.decl'.
func tracer() tracing.Trace {
	return tracing.Select("predict.decl")
}
