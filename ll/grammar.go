package ll

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/cnf/structhash"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// === Symbols ===============================================================

type symbolKind uint8

const (
	terminal symbolKind = iota
	nonTerminal
	endMarker
)

// Symbol is a grammar symbol, either a terminal or a non-terminal. Symbols
// are values and compare by equality.
//
// Non-terminals are written as markers in angle brackets, e.g. "<Expr>".
// Terminals are arbitrary non-empty strings, with the exception of Epsilon,
// which is the empty terminal.
type Symbol struct {
	name string
	kind symbolKind
}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{name: name, kind: terminal}
}

// N creates a non-terminal symbol from a marker like "<S>".
func N(marker string) Symbol {
	return Symbol{name: marker, kind: nonTerminal}
}

// Epsilon is the empty terminal. It is the lead symbol of empty productions
// and its FIRST set is {EndOfInput}.
var Epsilon = T("")

// EOF is the end-of-input marker at the bottom of a parse stack. It never
// occurs in a production.
var EOF = Symbol{name: "#eof", kind: endMarker}

// EndOfInput is the lookahead presented to the transition table when the input
// is exhausted. It is the name of Epsilon, so table entries registered for empty
// productions apply at the end of input.
const EndOfInput = ""

// Name returns the name of a symbol. For non-terminals, this is the complete
// marker including the angle brackets.
func (A Symbol) Name() string {
	return A.name
}

// IsTerminal is a predicate.
func (A Symbol) IsTerminal() bool {
	return A.kind == terminal
}

// IsNonTerminal is a predicate.
func (A Symbol) IsNonTerminal() bool {
	return A.kind == nonTerminal
}

// IsEOF is a predicate.
func (A Symbol) IsEOF() bool {
	return A.kind == endMarker
}

func (A Symbol) String() string {
	if A == Epsilon {
		return "ε"
	}
	return A.name
}

const markerSource = `<[A-Za-z_]+>`

var markerPattern = regexp.MustCompile(`^` + markerSource + `$`)

// IsMarker checks if s is a non-terminal marker, i.e. a name in angle brackets.
func IsMarker(s string) bool {
	return markerPattern.MatchString(s)
}

// === Productions ===========================================================

// Production is one alternative of a non-terminal: an ordered sequence of
// symbols. An empty sequence is an epsilon-production.
type Production struct {
	LHS    Symbol   // non-terminal this production derives from
	Serial int      // position in the grammar, in order of definition
	rhs    []Symbol // right hand side
}

// RHS returns a copy of the right hand side of a production.
func (p *Production) RHS() []Symbol {
	return append([]Symbol(nil), p.rhs...)
}

// Len returns the number of symbols on the right hand side.
func (p *Production) Len() int {
	return len(p.rhs)
}

// Symbol returns the i-th symbol of the right hand side.
func (p *Production) Symbol(i int) Symbol {
	return p.rhs[i]
}

// IsEpsilon is a predicate: is this an empty production?
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 0
}

// Lead returns the first symbol of the right hand side, or Epsilon for
// empty productions.
func (p *Production) Lead() Symbol {
	if len(p.rhs) == 0 {
		return Epsilon
	}
	return p.rhs[0]
}

func (p *Production) String() string {
	return fmt.Sprintf("%s ::= %s", p.LHS, p.RHSString())
}

// RHSString returns the right hand side as a bracketed list of symbols.
func (p *Production) RHSString() string {
	names := make([]string, len(p.rhs))
	for i, A := range p.rhs {
		names[i] = A.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// === Grammar ===============================================================

// Grammar is a context-free grammar: a mapping from non-terminals to ordered
// alternative productions, plus the terminal vocabulary.
// A grammar is immutable after construction and safe for concurrent use.
type Grammar struct {
	Name      string
	nonterms  []Symbol                 // in order of definition
	rules     map[Symbol][]*Production // alternatives per non-terminal
	prods     []*Production            // all productions, by serial
	terminals []string                 // sorted, without Epsilon
	tableOnce sync.Once
	table     *TransitionTable
	tableErr  error
}

// RuleDef is a textual rule definition: a non-terminal marker and its
// alternatives, each a string of terminals and embedded non-terminal markers.
type RuleDef struct {
	LHS          string   `toml:"lhs" yaml:"lhs"`
	Alternatives []string `toml:"alternatives" yaml:"alternatives"`
}

// NewGrammar normalizes textual rule definitions into a grammar.
// terms is the terminal vocabulary; multi-character terminals are recognized
// inside alternatives only if they are registered here. Rule definitions are
// used in order, which defines the order of non-terminals and of alternatives.
// An empty alternative denotes an epsilon-production.
//
// Neither defs nor terms are modified.
func NewGrammar(name string, defs []RuleDef, terms []string) (*Grammar, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyGrammar
	}
	b := NewGrammarBuilder(name)
	b.Terms(terms...)
	sp := newSplitter(terms)
	for _, def := range defs {
		for _, alt := range def.Alternatives {
			rb := b.LHS(def.LHS)
			for _, A := range sp.split(alt) {
				rb.rhs = append(rb.rhs, A)
			}
			rb.End()
		}
		if len(def.Alternatives) == 0 {
			b.fail(&MalformedProductionError{LHS: def.LHS, Reason: "no alternatives"})
		}
	}
	return b.Grammar()
}

// Normalize creates a grammar from a rule map (non-terminal marker → alternatives).
// Non-terminals are ordered by marker name, alternatives keep their order.
func Normalize(rawRules map[string][]string, terms []string) (*Grammar, error) {
	lhss := maps.Keys(rawRules)
	slices.Sort(lhss)
	defs := make([]RuleDef, 0, len(lhss))
	for _, lhs := range lhss {
		defs = append(defs, RuleDef{LHS: lhs, Alternatives: rawRules[lhs]})
	}
	return NewGrammar("G", defs, terms)
}

// NonTerminals returns all non-terminals in order of definition.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterms...)
}

// Terminals returns the terminal vocabulary, sorted. It consists of the
// terminals declared for the grammar and all the terminals occuring in
// productions.
func (g *Grammar) Terminals() []string {
	return append([]string(nil), g.terminals...)
}

// Productions returns the alternatives of non-terminal A, in order.
func (g *Grammar) Productions(A Symbol) []*Production {
	return append([]*Production(nil), g.rules[A]...)
}

// Production returns the production with serial number n.
func (g *Grammar) Production(n int) *Production {
	if n < 0 || n >= len(g.prods) {
		return nil
	}
	return g.prods[n]
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.prods)
}

// IsDefined checks if A is a non-terminal with productions in g.
func (g *Grammar) IsDefined(A Symbol) bool {
	_, ok := g.rules[A]
	return ok
}

// EachNonTerminal calls mapper for each non-terminal, in order of definition.
func (g *Grammar) EachNonTerminal(mapper func(A Symbol, prods []*Production)) {
	for _, A := range g.nonterms {
		mapper(A, g.Productions(A))
	}
}

// Table returns the transition table for g. It is built on first call and
// cached for the lifetime of g.
func (g *Grammar) Table() (*TransitionTable, error) {
	g.tableOnce.Do(func() {
		g.table, g.tableErr = BuildTable(g)
	})
	return g.table, g.tableErr
}

// Dump is a debugging helper, tracing all productions at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ---------------------------", g.Name)
	for _, p := range g.prods {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("-------------------------------------------")
}

// Fingerprint returns a structural hash of the grammar. Grammars with equal
// productions (in equal order) and equal terminal vocabulary share a
// fingerprint, regardless of their names.
func (g *Grammar) Fingerprint() string {
	type prodDigest struct {
		LHS     string
		Symbols []string
		IsNT    []bool
	}
	digest := struct {
		Productions []prodDigest
		Terminals   []string
	}{Terminals: g.terminals}
	for _, p := range g.prods {
		pd := prodDigest{LHS: p.LHS.Name()}
		for _, A := range p.rhs {
			pd.Symbols = append(pd.Symbols, A.Name())
			pd.IsNT = append(pd.IsNT, A.IsNonTerminal())
		}
		digest.Productions = append(digest.Productions, pd)
	}
	hash, err := structhash.Hash(digest, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %s: %v", g.Name, err)
		return ""
	}
	return hash
}

// === Grammar Builder =======================================================

// GrammarBuilder is a builder type for grammars.
//
//    b := ll.NewGrammarBuilder("G")
//    b.LHS("<S>").N("<A>").T("a").End()  // <S> ::= <A> a
//    b.LHS("<A>").T("b").End()           // <A> ::= b
//    b.LHS("<A>").Epsilon()              // <A> ::=
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	name     string
	nonterms []Symbol
	rules    map[Symbol][]*Production
	prods    []*Production
	terms    map[string]struct{}
	err      error
}

// RuleBuilder collects the right hand side of a production.
// Create one with GrammarBuilder.LHS(…).
type RuleBuilder struct {
	b   *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  name,
		rules: make(map[Symbol][]*Production),
		terms: make(map[string]struct{}),
	}
}

// Terms declares terminals of the grammar's vocabulary. Terminals used in
// productions are added to the vocabulary automatically.
func (b *GrammarBuilder) Terms(terms ...string) *GrammarBuilder {
	for _, t := range terms {
		if t != "" {
			b.terms[t] = struct{}{}
		}
	}
	return b
}

// LHS starts a new production for non-terminal marker lhs.
func (b *GrammarBuilder) LHS(lhs string) *RuleBuilder {
	if !IsMarker(lhs) {
		b.fail(&MalformedProductionError{LHS: lhs, Reason: "left hand side is not a non-terminal marker"})
	}
	return &RuleBuilder{b: b, lhs: N(lhs)}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(marker string) *RuleBuilder {
	if !IsMarker(marker) {
		rb.b.fail(&MalformedProductionError{LHS: rb.lhs.Name(),
			Reason: fmt.Sprintf("%q is not a non-terminal marker", marker)})
	}
	rb.rhs = append(rb.rhs, N(marker))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	if name == "" {
		rb.b.fail(&MalformedProductionError{LHS: rb.lhs.Name(), Reason: "empty terminal"})
	}
	rb.rhs = append(rb.rhs, T(name))
	return rb
}

// End finishes the production.
func (rb *RuleBuilder) End() *Production {
	return rb.b.add(rb.lhs, rb.rhs)
}

// Epsilon finishes an empty production.
func (rb *RuleBuilder) Epsilon() *Production {
	return rb.b.add(rb.lhs, nil)
}

func (b *GrammarBuilder) add(lhs Symbol, rhs []Symbol) *Production {
	if _, ok := b.rules[lhs]; !ok {
		b.nonterms = append(b.nonterms, lhs)
	}
	p := &Production{
		LHS:    lhs,
		Serial: len(b.prods),
		rhs:    append([]Symbol(nil), rhs...),
	}
	b.rules[lhs] = append(b.rules[lhs], p)
	b.prods = append(b.prods, p)
	return p
}

func (b *GrammarBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Grammar returns the grammar built. It checks that every non-terminal
// referenced on a right hand side has productions.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.prods) == 0 {
		return nil, ErrEmptyGrammar
	}
	g := &Grammar{
		Name:     b.name,
		nonterms: append([]Symbol(nil), b.nonterms...),
		rules:    make(map[Symbol][]*Production, len(b.rules)),
		prods:    append([]*Production(nil), b.prods...),
	}
	for A, prods := range b.rules {
		g.rules[A] = append([]*Production(nil), prods...)
	}
	terms := maps.Clone(b.terms)
	for _, p := range g.prods {
		for _, A := range p.rhs {
			if A.IsTerminal() {
				terms[A.Name()] = struct{}{}
			} else if !g.IsDefined(A) {
				return nil, &UndefinedNonTerminalError{Symbol: A, Production: p}
			}
		}
	}
	g.terminals = maps.Keys(terms)
	slices.Sort(g.terminals)
	return g, nil
}

// === Normalization =========================================================

// splitter splits textual alternatives into symbols. Non-terminal markers are
// matched first, then registered terminals, longest first. Text between matches
// is split into single-character terminals.
type splitter struct {
	re *regexp.Regexp
}

func newSplitter(terms []string) *splitter {
	sorted := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		if t != "" && !seen[t] {
			seen[t] = true
			sorted = append(sorted, t)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	parts := make([]string, 0, len(sorted)+1)
	parts = append(parts, markerSource)
	for _, t := range sorted {
		parts = append(parts, regexp.QuoteMeta(t))
	}
	return &splitter{re: regexp.MustCompile(strings.Join(parts, "|"))}
}

func (sp *splitter) split(alt string) []Symbol {
	var syms []Symbol
	last := 0
	for _, loc := range sp.re.FindAllStringIndex(alt, -1) {
		syms = appendChars(syms, alt[last:loc[0]])
		if m := alt[loc[0]:loc[1]]; IsMarker(m) {
			syms = append(syms, N(m))
		} else {
			syms = append(syms, T(m))
		}
		last = loc[1]
	}
	return appendChars(syms, alt[last:])
}

func appendChars(syms []Symbol, text string) []Symbol {
	for _, r := range text {
		syms = append(syms, T(string(r)))
	}
	return syms
}
