package ll

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/gconf"
)

// DefaultMaxExpansions is the default limit of consecutive expansions without
// consuming an input symbol.
const DefaultMaxExpansions = 65536

// Recognizer is a table-driven LL(1) recognizer for a grammar.
//
// A recognizer holds no per-call state: every call to Analyze uses its own
// stack and trace. It is therefore safe to use a recognizer from multiple
// goroutines.
type Recognizer struct {
	table         *TransitionTable
	lenient       bool
	maxExpansions int
}

// Option configures a recognizer.
type Option func(*Recognizer)

// Lenient sets the acceptance mode of a recognizer.
//
// In lenient mode, input is accepted as soon as it has been fully consumed,
// regardless of symbols remaining on the stack. In strict mode (the default)
// the recognizer continues to expand non-terminals with lookahead EndOfInput
// and accepts only if the stack is emptied.
//
// The default may be switched to lenient by setting the global configuration
// key "ll.lenient-accept".
func Lenient(b bool) Option {
	return func(r *Recognizer) {
		r.lenient = b
	}
}

// MaxExpansions limits the number of consecutive expansions without consuming
// an input symbol. Values < 1 are ignored.
func MaxExpansions(n int) Option {
	return func(r *Recognizer) {
		if n > 0 {
			r.maxExpansions = n
		}
	}
}

// NewRecognizer creates a recognizer for grammar g. The transition table of
// g is built if it does not yet exist.
func NewRecognizer(g *Grammar, opts ...Option) (*Recognizer, error) {
	table, err := g.Table()
	if err != nil {
		return nil, err
	}
	r := &Recognizer{
		table:         table,
		lenient:       gconf.GetBool("ll.lenient-accept"),
		maxExpansions: DefaultMaxExpansions,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Table returns the transition table of the recognizer.
func (r *Recognizer) Table() *TransitionTable {
	return r.table
}

// Trace is the sequence of non-terminals expanded during a recognition.
type Trace []Symbol

// Names returns the names of the trace's non-terminals.
func (tr Trace) Names() []string {
	names := make([]string, len(tr))
	for i, A := range tr {
		names[i] = A.Name()
	}
	return names
}

func (tr Trace) String() string {
	return "[" + strings.Join(tr.Names(), " ") + "]"
}

// Analyze checks a sequence of terminal symbols against the grammar, starting
// from non-terminal marker start. It returns the trace of visited
// non-terminals, in order. Recognition is all-or-nothing: on error, the
// trace is nil.
func (r *Recognizer) Analyze(input []string, start string) (Trace, error) {
	trace, _, err := r.run(input, start)
	return trace, err
}

// AnalyzeString is a convenience function which splits code into
// one-character symbols and calls Analyze.
func (r *Recognizer) AnalyzeString(code, start string) (Trace, error) {
	return r.Analyze(SplitChars(code), start)
}

// Derive checks input like Analyze, but returns the productions applied,
// i.e. a leftmost derivation of the input. On error, the derivation is nil.
func (r *Recognizer) Derive(input []string, start string) ([]*Production, error) {
	_, derivation, err := r.run(input, start)
	return derivation, err
}

// SplitChars splits a string into one-character symbols.
func SplitChars(code string) []string {
	input := make([]string, 0, len(code))
	for _, ch := range code {
		input = append(input, string(ch))
	}
	return input
}

func (r *Recognizer) run(input []string, start string) (Trace, []*Production, error) {
	trace, derivation, err := r.recognize(input, start)
	if err != nil {
		return nil, nil, err
	}
	return trace, derivation, nil
}

func (r *Recognizer) recognize(input []string, start string) (Trace, []*Production, error) {
	S := N(start)
	if !r.table.g.IsDefined(S) {
		return nil, nil, &UndefinedNonTerminalError{Symbol: S}
	}
	for i, sym := range input {
		if sym == EndOfInput {
			return nil, nil, &UnexpectedSymbolError{
				Position:    i,
				Symbol:      sym,
				NonTerminal: S,
			}
		}
	}
	stack := arraystack.New()
	stack.Push(EOF)
	stack.Push(S)
	var trace Trace
	var derivation []*Production
	pos, expansions := 0, 0
	for {
		if r.lenient && pos == len(input) {
			tracer().Debugf("input consumed, accept (lenient)")
			return trace, derivation, nil
		}
		la := EndOfInput
		if pos < len(input) {
			la = input[pos]
		}
		v, _ := stack.Peek()
		top := v.(Symbol)
		tracer().Debugf("stack top = %s, lookahead = %q", top, la)
		switch {
		case top.IsEOF():
			if pos < len(input) {
				return trace, derivation, &UnexpectedTrailingInputError{
					Position: pos,
					Rest:     append([]string(nil), input[pos:]...),
				}
			}
			tracer().Debugf("accept")
			return trace, derivation, nil
		case top.IsNonTerminal():
			trace = append(trace, top)
			p, ok := r.table.Lookup(top, la)
			if !ok {
				if pos == len(input) {
					return trace, derivation, &UnexpectedEndOfInputError{
						Position: pos,
						Top:      top,
						Expected: r.table.Expected(top),
					}
				}
				return trace, derivation, &UnexpectedSymbolError{
					Position:    pos,
					Symbol:      la,
					NonTerminal: top,
					Expected:    r.table.Expected(top),
				}
			}
			expansions++
			if expansions > r.maxExpansions {
				return trace, derivation, &GrammarLoopError{
					Position:   pos,
					Expansions: expansions - 1,
					Top:        top,
				}
			}
			tracer().Debugf("expand %s", p)
			derivation = append(derivation, p)
			stack.Pop()
			for i := len(p.rhs) - 1; i >= 0; i-- {
				stack.Push(p.rhs[i])
			}
		default: // terminal
			if pos == len(input) {
				return trace, derivation, &UnexpectedEndOfInputError{
					Position: pos,
					Top:      top,
					Expected: []string{top.Name()},
				}
			}
			if top.Name() != la {
				return trace, derivation, &SymbolMismatchError{
					Position: pos,
					Actual:   la,
					Expected: top.Name(),
				}
			}
			stack.Pop()
			pos++
			expansions = 0
		}
	}
}
