package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/llpas/ll"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const sumsTOML = `
name  = "sums"
terms = ["1"]

[[rules]]
lhs = "<S>"
alternatives = ["<F>", "(<S>+<F>)"]

[[rules]]
lhs = "<F>"
alternatives = ["1"]
`

const program = `VAR a, b: INTEGER;
BEGIN
    READ(a);
    b = -a + 2;
    WRITE(a, b);
END
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command and captures its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	grammarFile, startSymbol, useTokens, htmlOutput = "", "", false, false
	traceLevel, lenient, traceTokens = "Error", false, false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGrammarCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.cli")
	defer teardown()
	//
	sums := writeFile(t, "sums.toml", sumsTOML)
	out, err := execute(t, "", "first", "--grammar", sums)
	if assert.NoError(t, err) {
		assert.Equal(t, "FIRST(<S>) = {(, 1}\nFIRST(<F>) = {1}\n", out)
	}
	out, err = execute(t, "", "follow", "--grammar", sums, "<F>")
	if assert.NoError(t, err) {
		assert.Equal(t, "FOLLOW(<F>) = {)}\n", out)
	}
	out, err = execute(t, "", "table", "--grammar", sums, "--html")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "<table")
		assert.Contains(t, out, "sums")
	}
	_, err = execute(t, "", "check", "--grammar", sums, "(1+1)", "((1+1)+1)")
	assert.NoError(t, err)
	_, err = execute(t, "", "check", "--grammar", sums, "(1+1)", "(1+1")
	assert.Error(t, err)
}

func TestPascalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.cli")
	defer teardown()
	//
	prog := writeFile(t, "prog.pas", program)
	out, err := execute(t, "", "translate", prog)
	if assert.NoError(t, err) {
		assert.Equal(t, "a = [int(v) for v in input().split(\" \")]\nb = int(-a + 2)\nprint(a, b)\n", out)
	}
	out, err = execute(t, "3\n", "run", prog)
	if assert.NoError(t, err) {
		assert.Equal(t, "3 -1\n", out)
	}
	out, err = execute(t, "", "lex", prog)
	if assert.NoError(t, err) {
		assert.True(t, strings.HasPrefix(out, "VAR "), "output is %q", out)
	}
	_, err = execute(t, "", "recognize", prog)
	assert.NoError(t, err)
	_, err = execute(t, "", "run", writeFile(t, "bad.pas", "VAR a: INTEGER; BEGIN a = b; END"))
	assert.Error(t, err)
}

func TestLenientFlag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.cli")
	defer teardown()
	//
	_, err := execute(t, "", "version", "--lenient")
	if assert.NoError(t, err) {
		assert.True(t, gconf.GetBool("ll.lenient-accept"))
	}
	_, err = execute(t, "", "version")
	if assert.NoError(t, err) {
		assert.False(t, gconf.GetBool("ll.lenient-accept"))
	}
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.cli")
	defer teardown()
	//
	useTokens = false
	def, err := ll.DecodeTOML(strings.NewReader(sumsTOML))
	if err != nil {
		t.Fatal(err)
	}
	g, err := def.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	r, err := ll.NewRecognizer(g, ll.Lenient(false))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	intp := &Intp{recognizer: r, analysis: ll.Analysis(g), start: "<S>", out: &out}
	quit, err := intp.Eval("(1+1)")
	assert.NoError(t, err)
	assert.False(t, quit)
	_, err = intp.Eval("(1+")
	assert.Error(t, err)
	_, err = intp.Eval(":first <S>")
	if assert.NoError(t, err) {
		assert.Equal(t, "FIRST(<S>) = {(, 1}\n", out.String())
	}
	_, err = intp.Eval(":follow")
	assert.Error(t, err)
	_, err = intp.Eval(":foo")
	assert.Error(t, err)
	quit, err = intp.Eval(":quit")
	assert.NoError(t, err)
	assert.True(t, quit)
}
