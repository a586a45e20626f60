package decl

import (
	"sync"

	"github.com/npillmayer/predict/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{";", ",", "=", "(", ")", "{", "}", "+", "-", "*", "/", "$"}

// The keyword tokens
var keywords = []string{"int", "float", "char", "return", "if", "else", "do", "while", "for", "void"}

// tokenIds maps token strings to token types
var tokenIds = map[string]int{
	"ID":     int(Identifier),
	"NUM":    int(Number),
	"STRING": int(String),
	"int":    int(IntKeyword),
	"float":  int(FloatKeyword),
	";":      int(StatementEnd),
	",":      int(Comma),
	"=":      int(Assign),
	"(":      int(LParen),
	")":      int(RParen),
	"{":      int(LBrace),
	"}":      int(RBrace),
	"+":      int(Plus),
	"-":      int(Minus),
	"*":      int(Times),
	"/":      int(Divide),
	"$":      int(EOF),
}

func init() {
	for _, kw := range keywords[2:] {
		tokenIds[kw] = int(Keyword)
	}
}

var lexerOnce sync.Once // monitors one-time initialization
var adapter *lexmach.LMAdapter
var lexerErr error

// Lexer returns the lexmachine adapter for the declaration language.
// The DFA is compiled once and shared by all scanners.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("ID", tokenIds["ID"]))
			lexer.Add([]byte(`[0-9]+`), lexmach.MakeIntToken("NUM", tokenIds["NUM"]))
			lexer.Add([]byte(`//[^\n]*`), lexmach.Skip)                                  // line comments
			lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), lexmach.Skip) // block comments
			lexer.Add([]byte(`\"[^"\n]*\"`), lexmach.MakeToken("STRING", tokenIds["STRING"]))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		adapter, lexerErr = lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
		if lexerErr != nil {
			tracer().Errorf("cannot create lexer: %v", lexerErr)
		}
	})
	return adapter, lexerErr
}
