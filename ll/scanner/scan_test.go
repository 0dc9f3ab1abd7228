package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/llpas"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestScan1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := GoTokenizer(name, reader)
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.scanner")
	defer teardown()
	//
	tok := GoTokenizer("symbols", strings.NewReader("a + 12 * (b - 1.5)"))
	symbols := Symbols(tok, TokenClass)
	assert.Equal(t, []string{"Ident", "+", "Int", "*", "(", "Ident", "-", "Float", ")"}, symbols)
	//
	tok = GoTokenizer("lexemes", strings.NewReader("a+12"))
	assert.Equal(t, []string{"a", "+", "12"}, Symbols(tok, Lexeme))
}

func TestUnifyStrings(t *testing.T) {
	tok := GoTokenizer("strings", strings.NewReader("'c' `raw`"), UnifyStrings(true))
	assert.Equal(t, []string{"String", "String"}, Symbols(tok, TokenClass))
}

var lispTokenCounts = []int{1, 3, 2, 3, 3}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		scanner, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != lispTokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, lispTokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMKeywordCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.scanner")
	defer teardown()
	//
	ids := map[string]int{"ID": Ident, "BEGIN": 100}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[A-Za-z]+`), MakeToken("ID", ids["ID"]))
		lexer.Add([]byte(`( |\n)+`), Skip)
	}
	LM, err := NewLMAdapter(init, nil, []string{"BEGIN"}, ids, KeepKeywordCase())
	if err != nil {
		t.Fatal(err)
	}
	scan, _ := LM.Scanner("BEGIN begin BEGINNER")
	tokens := Tokens(scan)
	if assert.Len(t, tokens, 3) {
		assert.Equal(t, llpas.TokType(100), tokens[0].TokType())
		assert.Equal(t, llpas.TokType(Ident), tokens[1].TokType())
		assert.Equal(t, llpas.TokType(Ident), tokens[2].TokType())
		assert.Equal(t, llpas.Span{12, 20}, tokens[2].Span())
	}
	assert.False(t, scan.Failed())
}

func TestLMErrorHandler(t *testing.T) {
	ids := map[string]int{"ID": Ident}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-z]+`), MakeToken("ID", ids["ID"]))
		lexer.Add([]byte(` +`), Skip)
	}
	LM, err := NewLMAdapter(init, nil, nil, ids)
	if err != nil {
		t.Fatal(err)
	}
	scan, _ := LM.Scanner("ab $ cd")
	var errs []error
	scan.SetErrorHandler(func(e error) { errs = append(errs, e) })
	tokens := Tokens(scan)
	assert.Len(t, tokens, 2)
	assert.Len(t, errs, 1)
	assert.True(t, scan.Failed())
}

func TestCursor(t *testing.T) {
	tok := GoTokenizer("cursor", strings.NewReader("a b"))
	c := NewCursor(Tokens(tok))
	assert.Equal(t, "a", c.Current().Lexeme())
	assert.Equal(t, "a", c.Advance().Lexeme())
	assert.Equal(t, "b", c.Current().Lexeme())
	assert.False(t, c.Done())
	c.Advance()
	assert.True(t, c.Done())
	assert.Equal(t, llpas.TokType(EOF), c.Current().TokType())
	assert.Equal(t, uint64(3), c.Current().Span().From())
	c.Advance()
	assert.Equal(t, 2, c.Position())
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"'",
		"(",
		")",
		"[",
		"]",
		"=",
		"+",
		"-",
		"*",
		"/",
	}
	keywords = []string{
		"nil",
		"t",
	}
	tokens = []string{
		"COMMENT",
		"ID",
		"NUM",
		"STRING",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["COMMENT"] = Comment
	tokenIds["ID"] = Ident
	tokenIds["NUM"] = Int
	tokenIds["STRING"] = String
	for i, tok := range tokens[4:] {
		tokenIds[tok] = i + 10
	}
}
