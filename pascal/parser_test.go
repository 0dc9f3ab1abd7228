package pascal

import (
	"errors"
	"testing"

	"github.com/npillmayer/llpas/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const caseProgram = `
    VAR a, b: INTEGER;
    BEGIN
        a = 2;
        CASE a OF
            1: a = 2;
            2: b = -a + 2;
        END_CASE;
        WRITE(a, b);
    END
`

const sampleProgram = `
    VAR a, b, c: INTEGER;
    BEGIN
        a = 2;
        b = 3;
        c = 4;
        CASE a / 2 OF
            1: b = 4;
            2: c = -b + c;
            3: b = (654 - 54 + a) + 12;
        END_CASE;
        WRITE(a, b, c);
    END
`

func TestParseCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.pascal")
	defer teardown()
	//
	prog, err := Parse(caseProgram)
	if !assert.NoError(t, err) {
		return
	}
	expected := &Program{
		Variables: []string{"a", "b"},
		Statements: []Statement{
			&Assign{Left: "a", Right: Atom("2")},
			&Case{
				Expr: Atom("a"),
				Choices: []Choice{
					{Value: "1", Assign: &Assign{Left: "a", Right: Atom("2")}},
					{Value: "2", Assign: &Assign{Left: "b", Right: &Expression{
						Operand1: &Expression{Operand1: Atom("a"), Operand2: Atom("2"), Op: "+"},
						Op:       "-",
					}}},
				},
			},
			&Call{Name: "write", Args: []string{"a", "b"}},
		},
	}
	assert.Equal(t, expected, prog)
	assert.Equal(t, "b = (- (+ a 2))", prog.Statements[1].(*Case).Choices[1].Assign.String())
}

func TestParseExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.pascal")
	defer teardown()
	//
	prog, err := Parse(sampleProgram)
	if !assert.NoError(t, err) || !assert.Len(t, prog.Statements, 5) {
		return
	}
	c := prog.Statements[3].(*Case)
	assert.Equal(t, "a / 2", Render(c.Expr))
	assert.Equal(t, "-b + c", Render(c.Choices[1].Assign.Right))
	assert.Equal(t, "(654 - 54 + a) + 12", Render(c.Choices[2].Assign.Right))
	assert.Equal(t, "(+ (paren (- 654 (+ 54 a))) 12)", c.Choices[2].Assign.Right.String())
}

func TestParseDuplicateChoice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.pascal")
	defer teardown()
	//
	prog, err := Parse(`VAR a: INTEGER; BEGIN CASE a OF 1: a = 1; 2: a = 2; 1: a = 3; END_CASE; END`)
	if !assert.NoError(t, err) {
		return
	}
	c := prog.Statements[0].(*Case)
	if assert.Len(t, c.Choices, 2) {
		assert.Equal(t, "1", c.Choices[0].Value)
		assert.Equal(t, Atom("3"), c.Choices[0].Assign.Right)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.pascal")
	defer teardown()
	//
	for _, code := range []string{
		"VAR a, b, c; INTEGER;",
		"VAR a, b, c: IVTEGER;",
		"VAR a, b, c: INTEGER",
		"VAR a: INTEGER; BEGIN a = 1 + 2 END",
		"VAR a: INTEGER; BEGIN a = ; END",
		"VAR a: INTEGER; BEGIN a = 1 2; END",
		"VAR a: INTEGER; BEGIN CASE a OF END_CASE; END",
		"VAR a: INTEGER; BEGIN WRITE(); END",
		"VAR a: INTEGER; BEGIN = a; END",
		"VAR a: INTEGER; BEGIN END END",
		"VAR a: INTEGER; BEGIN a = (1 + 2; END",
	} {
		t.Run(code, func(t *testing.T) {
			_, err := Parse(code)
			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr), "error is %v", err)
		})
	}
}

func TestParseVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.pascal")
	defer teardown()
	//
	_, err := Parse("VAR a: INTEGER; BEGIN b = 1; END")
	var undeclared *UndeclaredVariableError
	if assert.True(t, errors.As(err, &undeclared), "error is %v", err) {
		assert.Equal(t, "b", undeclared.Name)
	}
	_, err = Parse("VAR a: INTEGER; BEGIN a = b + 1; END")
	assert.True(t, errors.As(err, &undeclared), "error is %v", err)
	_, err = Parse("VAR a: INTEGER; BEGIN READ(a, c); END")
	assert.True(t, errors.As(err, &undeclared), "error is %v", err)
	//
	_, err = Parse("VAR a, b, a: INTEGER; BEGIN END")
	var redecl *runtime.RedeclarationError
	if assert.True(t, errors.As(err, &redecl), "error is %v", err) {
		assert.Equal(t, "a", redecl.Name)
	}
}

func TestParserScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.pascal")
	defer teardown()
	//
	tokens, err := Tokenize(caseProgram)
	if !assert.NoError(t, err) {
		return
	}
	p := NewParser(tokens)
	assert.Nil(t, p.Scope())
	_, err = p.Program()
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"a", "b"}, p.Scope().Tags().Names())
	}
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpas.pascal")
	defer teardown()
	//
	prog, err := Parse(caseProgram)
	if !assert.NoError(t, err) {
		return
	}
	list := prog.LeveledList()
	assert.Equal(t, "program", list[0].Text)
	assert.Equal(t, "var a, b", list[1].Text)
	assert.Equal(t, "write(a, b)", list[len(list)-1].Text)
	assert.Equal(t, 2, list[len(list)-1].Level)
}
