package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'predict.decl'.
func tracer() tracing.Trace {
	return tracing.Select("predict.decl")
}

// main() starts an interactive CLI ("D.REPL"), where users may enter
// declarations. D.REPL checks each line against the LL(1) grammar for
// declarations and tells if it conforms. With arguments, D.REPL checks the
// arguments as a single statement and exits with status 0 (accepted) or 1
// (rejected).
//
// Please refer to packages "decl" and "ll/ll1".
//
func main() {
	os.Exit(run())
}

func run() int {
	initDisplay()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	adapter := flag.String("log", "", "Trace adapter [go|logrus]")
	initf := flag.String("init", "", "Initial load")
	tolerant := flag.Bool("tolerant", false, "Skip illegal characters when listing tokens")
	tree := flag.Bool("tree", false, "Display derivation trees")
	flag.Parse()
	conf := setupTracing(*adapter, *tlevel)
	defer trace2go.Teardown()
	tracer().Infof("Trace level is %s", tracer().GetTraceLevel())
	intp := &Intp{
		tolerant: conf.GetBool("declrepl.tolerant") || *tolerant,
		tree:     conf.GetBool("declrepl.tree") || *tree,
	}
	if err := intp.init(); err != nil {
		pterm.Error.Println(err.Error())
		return 3
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if intp.Check(input) {
			return 0
		}
		return 1
	}
	//
	// set up REPL
	repl, err := readline.New("decl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return 3
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to D.REPL") // colored welcome message
	pterm.Info.Println("Quit with <ctrl>D or :quit, help with :help")
	intp.loadInitFile(*initf) // init file name provided by flag
	intp.REPL()               // go into interactive mode
	return 0
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  "  OK",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
}
