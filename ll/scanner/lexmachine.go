package scanner

import (
	"strings"

	"github.com/npillmayer/llpas"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter
//
// For more information on lexmachine, see e.g.
// https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html
//
//	var literals []string       // The tokens representing literal strings
//	var keywords []string       // The keyword tokens
//	var tokenIds map[string]int // A map from the token names to their int IDs
//
//	init := func(lexer *lexmachine.Lexer) {
//		// add patterns for identifiers, numbers, white space, …
//		//
//		// scanner.Skip      is a pre-defined action which ignores the scanned match
//		// scanner.MakeToken is a pre-defined action which wraps a scanned match into a
//		//                   token
//	}
//	LM, err := scanner.NewLMAdapter(init, literals, keywords, tokenIds)
//
// Literals and keywords are added before calling init, so they take precedence
// over init's patterns for matches of equal length.

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// LMOption configures a lexmachine adapter.
type LMOption func(*lmConfig)

type lmConfig struct {
	keywordCase func(string) string
}

// KeepKeywordCase makes keywords match exactly as given. The default is to
// match keywords in lower case.
func KeepKeywordCase() LMOption {
	return func(c *lmConfig) {
		c.keywordCase = func(s string) string { return s }
	}
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]int, opts ...LMOption) (*LMAdapter, error) {
	//
	conf := &lmConfig{keywordCase: strings.ToLower}
	for _, opt := range opts {
		opt(conf)
	}
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(conf.keywordCase(name)), MakeToken(name, tokenIds[name]))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	failed  bool
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Failed reports if the scanner has reported any error.
func (lms *LMScanner) Failed() bool {
	return lms.failed
}

// NextToken is part of the Tokenizer interface.
//
// Unconsumable input is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() llpas.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.failed = true
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(lms.scanner.TC)
		return MakeDefaultToken(EOF, "", llpas.Span{end, end})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q", token.Type, token.Lexeme)
	t := MakeDefaultToken(
		llpas.TokType(token.Type),
		string(token.Lexeme),
		llpas.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
	t.Val = token.Value
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
