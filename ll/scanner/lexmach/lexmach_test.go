package lexmach

import (
	"errors"
	"testing"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello World",
	`x="mystring" // commented `,
	"1,22,333",
	"if iffy nil",
}

var tokenCounts = []int{1, 3, 2, 3, 5, 3}

func makeAdapter(t *testing.T) *LMAdapter {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[0-9]+`), MakeIntToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		token, err := sc.NextToken()
		count := 0
		for err == nil && token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token, err = sc.NextToken()
			count++
		}
		if err != nil {
			t.Errorf("unexpected error for input #%d: %v", i, err)
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMKeywordsWinTies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, _ := LM.Scanner("if iffy")
	tok, _ := sc.NextToken()
	if tok.TokType() != predict.TokType(tokenIds["if"]) {
		t.Errorf("expected 'if' to be a keyword, is of type %d", tok.TokType())
	}
	tok, _ = sc.NextToken()
	if tok.TokType() != predict.TokType(tokenIds["ID"]) || tok.Lexeme() != "iffy" {
		t.Errorf("expected 'iffy' to be an identifier, is %v", tok)
	}
}

func TestLMTokenValuesAndPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, _ := LM.Scanner("x\n  = 42")
	sc.NextToken()
	sc.NextToken()
	tok, err := sc.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := tok.Value().(int64); !ok || v != 42 {
		t.Errorf("expected value int64(42), is %#v", tok.Value())
	}
	if tok.Position() != (predict.Position{Line: 2, Column: 5}) {
		t.Errorf("expected token at 2:5, is at %s", tok.Position())
	}
	if tok.Span() != (predict.Span{6, 8}) {
		t.Errorf("expected span [6…8], is %s", tok.Span())
	}
}

func TestLMEOFIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, _ := LM.Scanner("a ")
	sc.NextToken()
	for i := 0; i < 3; i++ {
		tok, err := sc.NextToken()
		if err != nil || tok.TokType() != scanner.EOF {
			t.Errorf("expected EOF on pull #%d after end of input, is %v/%v", i, tok, err)
		}
		if tok != nil && tok.Position() != (predict.Position{Line: 1, Column: 3}) {
			t.Errorf("expected EOF to be positioned at end of input, is %s", tok.Position())
		}
	}
}

func TestLMIllegalCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, _ := LM.Scanner("a\nb @ c")
	reported := 0
	sc.SetErrorHandler(func(error) { reported++ })
	sc.NextToken()
	sc.NextToken()
	_, err := sc.NextToken()
	var lexerr *predict.LexicalError
	if !errors.As(err, &lexerr) {
		t.Fatalf("expected lexical error, got %v", err)
	}
	if lexerr.Char != '@' || lexerr.Pos.Line != 2 || lexerr.Pos.Column != 3 {
		t.Errorf("expected illegal '@' at 2:3, have %q at %s", lexerr.Char, lexerr.Pos)
	}
	if _, err2 := sc.NextToken(); err2 != err {
		t.Errorf("expected lexical error to be returned again, have %v", err2)
	}
	if reported != 1 {
		t.Errorf("expected error handler to be called once, was called %d times", reported)
	}
}

func TestLMErrorTolerant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, _ := LM.Scanner("a @ b ~ c", ErrorTolerant(true))
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	var lexemes []string
	for {
		tok, err := sc.NextToken()
		if err != nil {
			t.Fatalf("tolerant scanner must not return errors, got %v", err)
		}
		if tok.TokType() == scanner.EOF {
			break
		}
		lexemes = append(lexemes, tok.Lexeme())
	}
	if len(lexemes) != 3 || lexemes[0] != "a" || lexemes[1] != "b" || lexemes[2] != "c" {
		t.Errorf("expected tokens [a b c], have %v", lexemes)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 lexical errors, have %d", len(errs))
	}
}

func TestLMNumberOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, _ := LM.Scanner("x 99999999999999999999")
	sc.NextToken()
	_, err := sc.NextToken()
	var lexerr *predict.LexicalError
	if !errors.As(err, &lexerr) {
		t.Fatalf("expected lexical error for number out of range, got %v", err)
	}
	if lexerr.Char != '9' || lexerr.Pos.Column != 3 {
		t.Errorf("expected error at first digit (column 3), is %q at %s", lexerr.Char, lexerr.Pos)
	}
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"(",
		")",
		",",
		"=",
		"+",
		"-",
		"*",
		"/",
	}
	keywords = []string{
		"nil",
		"if",
	}
	tokens = []string{
		"ID",
		"NUM",
		"STRING",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	for i, tok := range tokens {
		tokenIds[tok] = i + 1
	}
}
