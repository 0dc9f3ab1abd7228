package ll

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTableOfTwoRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.ll")
	defer teardown()
	//
	g, err := NewGrammar("AB", []RuleDef{
		{LHS: "<A>", Alternatives: []string{"<B>cd"}},
		{LHS: "<B>", Alternatives: []string{"d"}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	table, err := BuildTable(g)
	if err != nil {
		t.Fatal(err)
	}
	entries := table.Entries()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, N("<A>"), entries[0].NonTerminal)
		assert.Equal(t, "d", entries[0].Lookahead)
		assert.Equal(t, []string{"<B>", "c", "d"}, names(entries[0].Production.RHS()))
		assert.Equal(t, N("<B>"), entries[1].NonTerminal)
		assert.Equal(t, "d", entries[1].Lookahead)
		assert.Equal(t, []string{"d"}, names(entries[1].Production.RHS()))
	}
	_, ok := table.Lookup(N("<A>"), "c")
	assert.False(t, ok)
	_, ok = table.Lookup(N("<X>"), "d")
	assert.False(t, ok)
}

func TestTableLastWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.ll")
	defer teardown()
	//
	g, err := NewGrammar("Conflict", []RuleDef{
		{LHS: "<S>", Alternatives: []string{"ab", "ac", "d"}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	table, err := BuildTable(g)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := table.Lookup(N("<S>"), "a")
	if assert.True(t, ok) {
		assert.Equal(t, 1, p.Serial)
	}
	assert.Equal(t, 2, table.Size())
	assert.Equal(t, []string{"a", "d"}, table.Expected(N("<S>")))
}

func TestTableReconstructsProductions(t *testing.T) {
	g := makeABC(t).Grammar()
	table, err := g.Table()
	if err != nil {
		t.Fatal(err)
	}
	ga := Analysis(g)
	for _, A := range g.NonTerminals() {
		for _, p := range g.Productions(A) {
			first, _ := ga.First(p.Lead())
			for _, a := range first.Values() {
				q, ok := table.Lookup(A, a)
				assert.True(t, ok)
				assert.Equal(t, p, q, "table[%s, %q]", A, a)
			}
		}
	}
}

func TestTableIsCached(t *testing.T) {
	g := makeSums(t)
	t1, err1 := g.Table()
	t2, err2 := g.Table()
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Same(t, t1, t2)
	assert.Same(t, g, t1.Grammar())
}

func TestTableEpsilonColumn(t *testing.T) {
	g, err := NewGrammar("Opt", []RuleDef{
		{LHS: "<S>", Alternatives: []string{"a<S>", ""}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	table, _ := g.Table()
	p, ok := table.Lookup(N("<S>"), EndOfInput)
	if assert.True(t, ok) {
		assert.True(t, p.IsEpsilon())
	}
	assert.Equal(t, []string{EndOfInput, "a"}, table.Columns())
}

func TestTableExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.ll")
	defer teardown()
	//
	table, err := makeSums(t).Table()
	if err != nil {
		t.Fatal(err)
	}
	var text bytes.Buffer
	if err = TableAsText(table, &text); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", text.String())
	assert.Contains(t, text.String(), "[( <S> + <F> )]")
	assert.Contains(t, text.String(), "<F>")
	//
	var html bytes.Buffer
	if err = TableAsHTML(table, &html); err != nil {
		t.Fatal(err)
	}
	assert.True(t, strings.HasPrefix(html.String(), "<html>"))
	assert.Contains(t, html.String(), "&lt;S&gt;")
	assert.Contains(t, html.String(), table.Grammar().Fingerprint())
}
