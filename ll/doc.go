/*
Package ll implements table-driven LL(1) parsing: a grammar model, FIRST and
FOLLOW analysis, predictive transition tables and a stack-based recognizer.

Building a Grammar

Grammars are either normalized from textual rule definitions or specified
using a grammar builder object. Non-terminals are written as markers in
angle brackets, everything else is terminal.

Textual rules are split into symbols once, at construction time. Non-terminal
markers and registered multi-character terminals are recognized; all other
characters become single-character terminals:

    g, err := ll.NewGrammar("Sums", []ll.RuleDef{
        {LHS: "<S>", Alternatives: []string{"<F>", "(<S>+<F>)"}},
        {LHS: "<F>", Alternatives: []string{"1"}},
    }, []string{"1", "+"})

The same grammar, created by a builder:

    b := ll.NewGrammarBuilder("Sums")
    b.LHS("<S>").N("<F>").End()                                // <S> ::= <F>
    b.LHS("<S>").T("(").N("<S>").T("+").N("<F>").T(")").End()  // <S> ::= ( <S> + <F> )
    b.LHS("<F>").T("1").End()                                  // <F> ::= 1
    g, err := b.Grammar()

Dumping it results in the following trivial grammar:

   g.Dump()

   0: <S> ::= [<F>]
   1: <S> ::= [( <S> + <F> )]
   2: <F> ::= [1]

The order of alternatives matters: when two alternatives of a non-terminal
claim the same lookahead terminal, the later one wins in the transition table.

Static Grammar Analysis

FIRST and FOLLOW sets are computed on demand by a grammar analysis:

    ga := ll.Analysis(g)
    first, err := ga.First(ll.N("<S>"))   // {(, 1}
    follow, err := ga.Follow(ll.N("<F>")) // {)}

FOLLOW does not propagate end-of-input or FOLLOW sets of the enclosing
non-terminal: an occurrence as the last symbol of a production contributes
nothing. FIRST detects cyclic dependencies (left recursion) and reports them
as a GrammarCycleError.

Recognizing Input

A transition table maps (non-terminal, lookahead) to a production. It is built
once per grammar and used by a recognizer:

    r, err := ll.NewRecognizer(g)
    trace, err := r.AnalyzeString("(1+1)", "<S>")  // [<S> <S> <F> <F>]

The trace lists the non-terminals expanded, in order. Recognition is fail-fast;
errors are typed (UnexpectedSymbolError, SymbolMismatchError, …).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpas.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llpas.ll")
}
