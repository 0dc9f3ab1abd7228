package llpas

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Applications define their own
// constants; package pascal does so for the toy-Pascal language.
type TokType int

// Token represents an input token. Tokens are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an integer constant in toy-Pascal:
//
//    TokType = pascal.Const  // identifier for this kind of tokens
//    Lexeme  = "2999"        // lexeme how it appeared in the input stream
//    Value   = "2999"        // value as captured by the lexer
//    Span    = 67…71         // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
