package pascal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/llpas"
	"github.com/npillmayer/llpas/ll"
)

// StartSymbol is the start symbol of the toy-Pascal grammar.
const StartSymbol = "<Program>"

// The toy-Pascal syntax as an LL(1) grammar over token names. It accepts
// the same programs as the recursive descent parser, except for the checks
// for declared variables.
//
// Expressions come in three flavours, differing in their terminator:
// <Es> ends with ';', <Ep> with ')' and <Eo> with OF.
var pascalRules = []ll.RuleDef{
	{LHS: "<Program>", Alternatives: []string{"VAR<Dl>BEGIN<B>"}},
	{LHS: "<Dl>", Alternatives: []string{"IDENTIFIER<Dm>"}},
	{LHS: "<Dm>", Alternatives: []string{",IDENTIFIER<Dm>", ":INTEGER;"}},
	{LHS: "<B>", Alternatives: []string{"END", "<St><B>"}},
	{LHS: "<St>", Alternatives: []string{
		"IDENTIFIER=<Es>",
		"WRITE(<Id>;",
		"READ(<Id>;",
		"CASE<Eo><Ch><Cs>",
	}},
	{LHS: "<Id>", Alternatives: []string{"IDENTIFIER<Ids>"}},
	{LHS: "<Ids>", Alternatives: []string{",IDENTIFIER<Ids>", ")"}},
	{LHS: "<Ch>", Alternatives: []string{"CONST:IDENTIFIER=<Es>"}},
	{LHS: "<Cs>", Alternatives: []string{"<Ch><Cs>", "END_CASE;"}},
	{LHS: "<Es>", Alternatives: []string{"<O><Xs>"}},
	{LHS: "<Xs>", Alternatives: []string{"+<Es>", "-<Es>", "/<Es>", ";"}},
	{LHS: "<Ep>", Alternatives: []string{"<O><Xp>"}},
	{LHS: "<Xp>", Alternatives: []string{"+<Ep>", "-<Ep>", "/<Ep>", ")"}},
	{LHS: "<Eo>", Alternatives: []string{"<O><Xo>"}},
	{LHS: "<Xo>", Alternatives: []string{"+<Eo>", "-<Eo>", "/<Eo>", "OF"}},
	{LHS: "<O>", Alternatives: []string{"IDENTIFIER", "CONST", "(<Ep>", "-<O>"}},
}

var pascalGrammar struct {
	once sync.Once
	g    *ll.Grammar
	r    *ll.Recognizer
	err  error
}

// Terms returns the terminal vocabulary of the toy-Pascal grammar, i.e. all
// token names.
func Terms() []string {
	terms := make([]string, 0, len(tokenNames))
	for _, name := range tokenNames {
		terms = append(terms, name)
	}
	return terms
}

// Grammar returns the LL(1) grammar of toy-Pascal.
func Grammar() (*ll.Grammar, error) {
	pascalGrammar.once.Do(func() {
		pascalGrammar.g, pascalGrammar.err = ll.NewGrammar("toy-Pascal", pascalRules, Terms())
		if pascalGrammar.err != nil {
			return
		}
		pascalGrammar.r, pascalGrammar.err = ll.NewRecognizer(pascalGrammar.g, ll.Lenient(false))
	})
	return pascalGrammar.g, pascalGrammar.err
}

// Symbols converts tokens to grammar symbols, i.e. token names.
func Symbols(tokens []llpas.Token) []string {
	symbols := make([]string, len(tokens))
	for i, t := range tokens {
		symbols[i] = TokenName(t.TokType())
	}
	return symbols
}

// Recognize checks a toy-Pascal program against the LL(1) grammar and returns
// the trace of non-terminals visited. Errors of the recognizer are wrapped
// with the source position of the offending token; the trace is nil then.
func Recognize(src string) (ll.Trace, error) {
	if _, err := Grammar(); err != nil {
		return nil, err
	}
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	trace, err := pascalGrammar.r.Analyze(Symbols(tokens), StartSymbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", positionOf(err, tokens), err)
	}
	return trace, nil
}

func positionOf(err error, tokens []llpas.Token) llpas.Span {
	pos := len(tokens)
	var (
		unexpected *ll.UnexpectedSymbolError
		mismatch   *ll.SymbolMismatchError
		trailing   *ll.UnexpectedTrailingInputError
	)
	switch {
	case errors.As(err, &unexpected):
		pos = unexpected.Position
	case errors.As(err, &mismatch):
		pos = mismatch.Position
	case errors.As(err, &trailing):
		pos = trailing.Position
	}
	if pos < len(tokens) {
		return tokens[pos].Span()
	}
	if len(tokens) > 0 {
		end := tokens[len(tokens)-1].Span().To()
		return llpas.Span{end, end}
	}
	return llpas.Span{}
}
