/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of package ll.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Package lexmach is very opinionated on how to do the setup of lexmachine.
Keywords are added first, then the client's rules, then single-character
literals. Lexmachine prefers longer matches, and among matches of equal
length the one added first, so keywords win against identifiers.

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip         is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken    is a pre-defined action which wraps a scanned match into a
		//                      predict.Token
		// lexmach.MakeIntToken additionally converts the match to an int64 value
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")

Input which no rule matches is reported as a *predict.LexicalError. By default
such an error ends scanning, and every further call to NextToken returns it
again. With option ErrorTolerant(true) the scanner hands the error to its error
handler, skips the offending character and goes on.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
