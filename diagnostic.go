package predict

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// --- Diagnostics -----------------------------------------------------------

// Diagnostic is an error type for rejected input. There are two kinds of
// diagnostics: lexical errors (*LexicalError) and syntax errors (*SyntaxError).
// Both are fatal for a parse run. Clients distinguish them with errors.As or
// with a type switch.
type Diagnostic interface {
	error
	Position() Position
}

// LexicalError is reported by scanners for an input character which cannot
// start or continue any token of a language.
type LexicalError struct {
	Char rune     // the offending character
	Pos  Position // where it occured
}

var _ Diagnostic = (*LexicalError)(nil)

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Carácter ilegal '%c' en línea %d", e.Char, e.Pos.Line)
}

// Position is part of interface Diagnostic.
func (e *LexicalError) Position() Position {
	return e.Pos
}

// SyntaxError is reported by parsers if a token does not fit any derivation
// permitted from the symbol on top of the parse stack.
//
// If the symbol on top of the stack has been a terminal, Expected is its name
// and ExpectedIsTerminal is set. Otherwise Expected names the non-terminal
// and Expecting lists the lookaheads which would have been admissible.
type SyntaxError struct {
	Expected           string
	ExpectedIsTerminal bool
	Expecting          []string
	Found              TokType // token category of the lookahead
	FoundName          string  // display name of Found
	Lexeme             string  // lexeme of the lookahead
	Pos                Position
}

var _ Diagnostic = (*SyntaxError)(nil)

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Se esperaba '%s' pero se encontró '%s' ('%s')",
		e.Expected, e.FoundName, e.Lexeme)
}

// Position is part of interface Diagnostic.
func (e *SyntaxError) Position() Position {
	return e.Pos
}

// --- Reporting -------------------------------------------------------------

// Report formats a diagnostic for humans. If source is non-empty, the input
// line containing the error is displayed, with a caret below the offending
// column. Report is pure formatting; it does not touch any parser state.
//
//    línea 1, columna 7: Se esperaba 'D' pero se encontró 'asignacion' ('=')
//        int x = 10 ; $
//              ^
//        admisibles: coma, finInstruccion, float, identificador, int
//
func Report(d Diagnostic, source string) string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	pos := d.Position()
	if pos.IsValid() {
		b.WriteString(fmt.Sprintf("línea %d, columna %d: ", pos.Line, pos.Column))
	}
	b.WriteString(d.Error())
	if line, ok := sourceLine(source, pos.Line); ok {
		b.WriteString("\n    ")
		b.WriteString(line)
		if pos.Column > 0 && pos.Column <= utf8.RuneCountInString(line)+1 {
			b.WriteString("\n    ")
			b.WriteString(caretAt(line, pos.Column))
		}
	}
	if serr, ok := d.(*SyntaxError); ok && len(serr.Expecting) > 0 {
		b.WriteString("\n    admisibles: ")
		b.WriteString(strings.Join(serr.Expecting, ", "))
	}
	return b.String()
}

func sourceLine(source string, lineno int) (string, bool) {
	if source == "" || lineno < 1 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if lineno > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[lineno-1], "\r"), true
}

// caretAt keeps tabs, so the caret lines up with the source line.
func caretAt(line string, column int) string {
	var b strings.Builder
	col := 1
	for _, r := range line {
		if col >= column {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		col++
	}
	for ; col < column; col++ {
		b.WriteRune(' ')
	}
	b.WriteRune('^')
	return b.String()
}
