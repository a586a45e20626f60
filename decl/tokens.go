package decl

import (
	"fmt"

	"github.com/npillmayer/predict"
)

// Token types of the declaration language.
const (
	Identifier predict.TokType = iota + 1
	IntKeyword
	FloatKeyword
	Keyword // reserved words without use in declarations
	Number
	String
	Comma
	StatementEnd
	Assign
	LParen
	RParen
	LBrace
	RBrace
	Plus
	Minus
	Times
	Divide
	EOF = predict.EOF // end marker '$' or end of input
)

var tokenNames = map[predict.TokType]string{
	Identifier:   "identificador",
	IntKeyword:   "int",
	FloatKeyword: "float",
	Keyword:      "keyword",
	Number:       "NUMBER",
	String:       "cadena",
	Comma:        "coma",
	StatementEnd: "finInstruccion",
	Assign:       "asignacion",
	LParen:       "LPAREN",
	RParen:       "RPAREN",
	LBrace:       "inicioBloque",
	RBrace:       "finBloque",
	Plus:         "PLUS",
	Minus:        "MINUS",
	Times:        "TIMES",
	Divide:       "DIVIDE",
	EOF:          "eof",
}

// TokenName returns the display name of a token type.
func TokenName(tt predict.TokType) string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", tt)
}

var _ predict.TokTypeStringer = TokenName
