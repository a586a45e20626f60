package predict

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLexicalErrorMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	err := &LexicalError{Char: '@', Pos: Position{Line: 3, Column: 7}}
	if msg := err.Error(); msg != "Carácter ilegal '@' en línea 3" {
		t.Errorf("unexpected message for lexical error: %q", msg)
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	err := &SyntaxError{
		Expected:           "identificador",
		ExpectedIsTerminal: true,
		FoundName:          "finInstruccion",
		Lexeme:             ";",
		Pos:                Position{Line: 1, Column: 5},
	}
	expected := "Se esperaba 'identificador' pero se encontró 'finInstruccion' (';')"
	if msg := err.Error(); msg != expected {
		t.Errorf("expected message %q, have %q", expected, msg)
	}
}

func TestDiagnosticsAsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	var err error = fmt.Errorf("parsing failed: %w", &SyntaxError{Expected: "D"})
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected wrapped syntax error to be found by errors.As")
	}
	if serr.Expected != "D" {
		t.Errorf("expected symbol D, have %q", serr.Expected)
	}
	var lerr *LexicalError
	if errors.As(err, &lerr) {
		t.Errorf("syntax error must not match a lexical error")
	}
}

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	source := "int x = 10 ; $"
	err := &SyntaxError{
		Expected:  "D",
		Expecting: []string{"coma", "finInstruccion"},
		FoundName: "asignacion",
		Lexeme:    "=",
		Pos:       Position{Line: 1, Column: 7},
	}
	r := Report(err, source)
	t.Logf("\n%s", r)
	lines := strings.Split(r, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected report to have 4 lines, has %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "línea 1, columna 7: Se esperaba 'D'") {
		t.Errorf("unexpected first line of report: %q", lines[0])
	}
	if lines[2] != "          ^" {
		t.Errorf("caret misplaced: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "admisibles: coma, finInstruccion") {
		t.Errorf("expected admissible lookaheads in report, have %q", lines[3])
	}
}

func TestReportMultiline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	source := "int x\n\t@ ; $"
	err := &LexicalError{Char: '@', Pos: Position{Line: 2, Column: 2}}
	r := Report(err, source)
	lines := strings.Split(r, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected report to have 3 lines, has %d: %q", len(lines), r)
	}
	if lines[1] != "    \t@ ; $" || lines[2] != "    \t^" {
		t.Errorf("unexpected source context in report: %q", r)
	}
	if Report(err, "") != "línea 2, columna 2: Carácter ilegal '@' en línea 2" {
		t.Errorf("report without source should be a single line, is %q", Report(err, ""))
	}
}
