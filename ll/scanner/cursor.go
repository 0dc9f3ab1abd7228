package scanner

import "github.com/npillmayer/llpas"

// Cursor is a lookahead-one cursor over a sequence of tokens.
// After the last token, Current returns an EOF token positioned at the end of
// the last token.
type Cursor struct {
	tokens []llpas.Token
	pos    int
}

// NewCursor creates a cursor positioned at the first token.
func NewCursor(tokens []llpas.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Current returns the token under the cursor without consuming it.
func (c *Cursor) Current() llpas.Token {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos]
	}
	var end uint64
	if len(c.tokens) > 0 {
		end = c.tokens[len(c.tokens)-1].Span().To()
	}
	return MakeDefaultToken(EOF, "", llpas.Span{end, end})
}

// Advance consumes the current token and returns it.
func (c *Cursor) Advance() llpas.Token {
	t := c.Current()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return t
}

// Done is true if all tokens have been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// Position returns the index of the current token.
func (c *Cursor) Position() int {
	return c.pos
}
