package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/decl"
	"github.com/npillmayer/predict/ll"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// showTable displays the parsing table, with non-terminals as rows and
// lookaheads as columns.
func (intp *Intp) showTable() error {
	terms := intp.table.Terminals()
	header := []string{""}
	for _, la := range terms {
		header = append(header, la.Name)
	}
	data := pterm.TableData{header}
	for _, A := range intp.table.NonTerminals() {
		row := []string{A.Name}
		for _, la := range terms {
			if p, ok := intp.table.Resolve(A, la.TokType()); ok {
				row = append(row, p.RHSString())
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	pterm.Info.Printf("%s: %d entries, start symbol %s, fingerprint %s\n", intp.table.Name(),
		intp.table.Size(), intp.table.Start(), intp.table.Fingerprint())
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// showTokens lists the tokens of text, with their positions.
func (intp *Intp) showTokens(text string) {
	tokens, errs := decl.Tokenize(text, intp.tolerant)
	data := pterm.TableData{{"Position", "Token", "Lexeme", "Value"}}
	for _, tok := range tokens {
		value := ""
		if n, ok := tok.Value().(int64); ok {
			value = fmt.Sprintf("%d", n)
		}
		data = append(data, []string{tok.Position().String(), decl.TokenName(tok.TokType()),
			tok.Lexeme(), value})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	for _, err := range errs {
		var d predict.Diagnostic
		if errors.As(err, &d) {
			pterm.Error.Println(predict.Report(d, text))
		} else {
			pterm.Error.Println(err.Error())
		}
	}
}

// treeBuilder collects the steps of a left derivation as a leveled list.
type treeBuilder struct {
	items pterm.LeveledList
}

func (tb *treeBuilder) Expand(A ll.Symbol, p *ll.Production, depth int) {
	tb.items = append(tb.items, pterm.LeveledListItem{Level: depth, Text: A.Name})
	if p.IsEpsilon() {
		tb.items = append(tb.items, pterm.LeveledListItem{Level: depth + 1, Text: "ε"})
	}
}

func (tb *treeBuilder) Match(t predict.Token, depth int) {
	text := fmt.Sprintf("%s '%s'", decl.TokenName(t.TokType()), t.Lexeme())
	tb.items = append(tb.items, pterm.LeveledListItem{Level: depth, Text: text})
}

func (tb *treeBuilder) render() {
	if len(tb.items) == 0 {
		return
	}
	root := putils.TreeFromLeveledList(tb.items)
	pterm.DefaultTree.WithRoot(root).Render()
}
