package scanner

import (
	"testing"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLineIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	text := "int x\n\nfloat ñ, y ;\n$"
	li := NewLineIndex(text)
	if li.LineCount() != 4 {
		t.Errorf("expected 4 lines, have %d", li.LineCount())
	}
	var tests = []struct {
		offset int
		line   int
		col    int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{5, 1, 6}, // the newline itself
		{6, 2, 1},
		{7, 3, 1},
		{13, 3, 7}, // 'ñ'
		{15, 3, 8}, // ',' after 2-byte 'ñ'
		{len(text) - 1, 4, 1},
		{len(text) + 10, 4, 2},
		{-1, 1, 1},
	}
	for i, test := range tests {
		pos := li.Position(test.offset)
		if pos.Line != test.line || pos.Column != test.col {
			t.Errorf("test #%d: expected offset %d at %d:%d, is %s", i, test.offset, test.line, test.col, pos)
		}
	}
}

func TestListTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	toks := []predict.Token{
		MakeDefaultToken(1, "a", predict.Span{0, 1}, predict.Position{Line: 1, Column: 1}),
		MakeDefaultToken(2, "b", predict.Span{2, 3}, predict.Position{Line: 1, Column: 3}),
	}
	lt := NewListTokenizer(toks)
	for i := 0; i < 2; i++ {
		tok, err := lt.NextToken()
		if err != nil || tok.Lexeme() != toks[i].Lexeme() {
			t.Errorf("expected token #%d to be %v, is %v", i, toks[i], tok)
		}
	}
	for i := 0; i < 3; i++ {
		tok, err := lt.NextToken()
		if err != nil || tok.TokType() != EOF {
			t.Errorf("expected EOF after end of list, is %v", tok)
		}
		if tok.Span().From() != 3 || tok.Position().Column != 4 {
			t.Errorf("expected EOF token to be positioned at end, is %s", tok.Span())
		}
	}
}

func TestDefaultTokenValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.scanner")
	defer teardown()
	//
	tok := MakeDefaultToken(3, "10", predict.Span{0, 2}, predict.Position{Line: 1, Column: 1})
	vtok := tok.WithValue(int64(10))
	if tok.Value() != nil {
		t.Errorf("WithValue must not modify the original token")
	}
	if v, ok := vtok.Value().(int64); !ok || v != 10 {
		t.Errorf("expected token value to be int64(10), is %v", vtok.Value())
	}
}
