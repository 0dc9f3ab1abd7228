package ll

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sumsYAML = `
name: sums
terms: ["1", "+"]
rules:
  - lhs: <S>
    alternatives: ["<F>", "(<S>+<F>)"]
  - lhs: <F>
    alternatives: ["1"]
`

func TestLoadGrammarFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sums.yml")
	if err := os.WriteFile(path, []byte(sumsYAML), 0644); err != nil {
		t.Fatal(err)
	}
	def, err := LoadGrammarDef(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "<S>", def.StartSymbol())
	g, err := def.Grammar()
	if assert.NoError(t, err) {
		assert.Equal(t, "sums", g.Name)
		assert.Equal(t, makeSums(t).Fingerprint(), g.Fingerprint())
	}
	//
	_, err = LoadGrammarDef(filepath.Join(dir, "sums.json"))
	assert.Error(t, err)
}

func TestLoadUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.ini")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadGrammarDef(path)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), ".ini")
	}
}

func TestGrammarDefUndefinedStart(t *testing.T) {
	def, err := DecodeTOML(strings.NewReader(`
start = "<X>"
[[rules]]
lhs = "<S>"
alternatives = ["a"]
`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = def.Grammar()
	var undef *UndefinedNonTerminalError
	if assert.True(t, errors.As(err, &undef)) {
		assert.Equal(t, N("<X>"), undef.Symbol)
	}
}

func TestDecodeBrokenTOML(t *testing.T) {
	_, err := DecodeTOML(strings.NewReader(`rules = [[`))
	assert.Error(t, err)
}
