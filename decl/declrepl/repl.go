package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/decl"
	"github.com/npillmayer/predict/ll"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	table    *ll.Table
	tolerant bool // list tokens past illegal characters
	tree     bool // display derivation tree for every statement
}

// init prepares table and lexer, so errors show up before the first input.
func (intp *Intp) init() error {
	var err error
	if intp.table, err = decl.Table(); err != nil {
		return err
	}
	if _, err = decl.Lexer(); err != nil {
		return err
	}
	_, err = decl.Parser()
	return err
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line != "" {
			if quit, err := intp.Eval(line); err != nil {
				tracer().Errorf("Error line %d: "+err.Error(), lineno)
			} else if quit {
				return
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input, which is either a command (starting with
// ':') or a statement to check.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		intp.Check(line)
		return false, nil
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help", ":h":
		intp.help()
	case ":table":
		return false, intp.showTable()
	case ":tokens":
		intp.showTokens(arg)
	case ":tree":
		intp.checkWithTree(arg)
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}

// Check parses a statement and reports if it conforms to the grammar.
func (intp *Intp) Check(input string) bool {
	if intp.tree {
		return intp.checkWithTree(input)
	}
	return intp.report(input, decl.Parse(input))
}

func (intp *Intp) checkWithTree(input string) bool {
	tb := &treeBuilder{}
	err := decl.ParseWith(input, tb)
	tb.render()
	return intp.report(input, err)
}

func (intp *Intp) report(input string, err error) bool {
	if err == nil {
		pterm.Success.Println("La cadena cumple con la gramática formal.")
		return true
	}
	pterm.Error.Println("La cadena no cumple la gramática formal.")
	var d predict.Diagnostic
	if errors.As(err, &d) {
		pterm.Println(predict.Report(d, decl.Normalize(input)))
	} else {
		pterm.Println(err.Error())
	}
	return false
}

func (intp *Intp) help() {
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Input", "Action"},
		{"<statement>", "check statement, e.g. 'int x , y ;'"},
		{":tokens <text>", "list the tokens of text"},
		{":tree <statement>", "check statement and display its derivation"},
		{":table", "display the LL(1) parsing table"},
		{":quit", "leave D.REPL"},
	}).Render()
}
