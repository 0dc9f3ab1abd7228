package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// We use a tiny grammar of parenthesized sums for most of the tests:
//
//     <S> ::= <F>
//           | ( <S> + <F> )
//     <F> ::= 1
//
func makeSums(t *testing.T) *Grammar {
	g, err := NewGrammar("Sums", []RuleDef{
		{LHS: "<S>", Alternatives: []string{"<F>", "(<S>+<F>)"}},
		{LHS: "<F>", Alternatives: []string{"1"}},
	}, []string{"1", "+"})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func names(syms []Symbol) []string {
	n := make([]string, len(syms))
	for i, A := range syms {
		n[i] = A.Name()
	}
	return n
}

func TestNormalizeSplitsCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.ll")
	defer teardown()
	//
	g, err := Normalize(map[string][]string{
		"<S>": {"<A>bcd"},
		"<A>": {"a"},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	p := g.Productions(N("<S>"))[0]
	assert.Equal(t, []string{"<A>", "b", "c", "d"}, names(p.RHS()))
	assert.True(t, p.Symbol(0).IsNonTerminal())
	assert.True(t, p.Symbol(1).IsTerminal())
}

func TestNormalizeLongestTermFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.ll")
	defer teardown()
	//
	g, err := NewGrammar("Kw", []RuleDef{
		{LHS: "<S>", Alternatives: []string{"END_CASE;", "END <S>", "x"}},
	}, []string{"END", "END_CASE"})
	if err != nil {
		t.Fatal(err)
	}
	prods := g.Productions(N("<S>"))
	assert.Equal(t, []string{"END_CASE", ";"}, names(prods[0].RHS()))
	assert.Equal(t, []string{"END", " ", "<S>"}, names(prods[1].RHS()))
	assert.Equal(t, []string{";", " ", "END", "END_CASE", "x"}, g.Terminals())
}

func TestNormalizeDoesNotTouchInput(t *testing.T) {
	rules := map[string][]string{"<S>": {"ab", "<S>"}}
	terms := []string{"ab", "a"}
	_, err := Normalize(rules, terms)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ab", "<S>"}, rules["<S>"])
	assert.Equal(t, []string{"ab", "a"}, terms)
}

func TestEpsilonAlternative(t *testing.T) {
	g, err := NewGrammar("Opt", []RuleDef{
		{LHS: "<S>", Alternatives: []string{"a<S>", ""}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	prods := g.Productions(N("<S>"))
	if assert.Len(t, prods, 2) {
		assert.True(t, prods[1].IsEpsilon())
		assert.Equal(t, Epsilon, prods[1].Lead())
		assert.Equal(t, "<S> ::= []", prods[1].String())
	}
}

func TestGrammarValidation(t *testing.T) {
	_, err := NewGrammar("Empty", nil, nil)
	assert.True(t, errors.Is(err, ErrEmptyGrammar))
	//
	_, err = NewGrammar("Dangling", []RuleDef{
		{LHS: "<S>", Alternatives: []string{"<X>a"}},
	}, nil)
	var undef *UndefinedNonTerminalError
	if assert.True(t, errors.As(err, &undef)) {
		assert.Equal(t, N("<X>"), undef.Symbol)
		assert.Equal(t, 0, undef.Production.Serial)
	}
	//
	_, err = NewGrammar("Malformed", []RuleDef{
		{LHS: "S", Alternatives: []string{"a"}},
	}, nil)
	var malformed *MalformedProductionError
	if assert.True(t, errors.As(err, &malformed)) {
		assert.Equal(t, "S", malformed.LHS)
	}
	//
	_, err = NewGrammar("NoAlt", []RuleDef{{LHS: "<S>"}}, nil)
	assert.True(t, errors.As(err, &malformed))
}

func TestBuilderEqualsNormalized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Sums")
	b.Terms("1", "+")
	b.LHS("<S>").N("<F>").End()
	b.LHS("<S>").T("(").N("<S>").T("+").N("<F>").T(")").End()
	b.LHS("<F>").T("1").End()
	built, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	normalized := makeSums(t)
	assert.Equal(t, normalized.Fingerprint(), built.Fingerprint())
	assert.NotEmpty(t, built.Fingerprint())
	assert.Equal(t, "<S> ::= [( <S> + <F> )]", built.Production(1).String())
	assert.Equal(t, []Symbol{N("<S>"), N("<F>")}, built.NonTerminals())
	assert.Equal(t, 3, built.Size())
	//
	other, _ := NewGrammar("Other", []RuleDef{
		{LHS: "<S>", Alternatives: []string{"(<S>+<F>)", "<F>"}},
		{LHS: "<F>", Alternatives: []string{"1"}},
	}, []string{"1", "+"})
	assert.NotEqual(t, normalized.Fingerprint(), other.Fingerprint())
}

func TestBuilderRejectsBadMarker(t *testing.T) {
	b := NewGrammarBuilder("Bad")
	b.LHS("<S>").N("A").End()
	_, err := b.Grammar()
	var malformed *MalformedProductionError
	assert.True(t, errors.As(err, &malformed))
}

func TestSymbols(t *testing.T) {
	assert.True(t, IsMarker("<Expr_list>"))
	assert.False(t, IsMarker("<>"))
	assert.False(t, IsMarker("<S1>"))
	assert.Equal(t, "ε", Epsilon.String())
	assert.Equal(t, "#eof", EOF.String())
	assert.NotEqual(t, T("<S>"), N("<S>"))
}
