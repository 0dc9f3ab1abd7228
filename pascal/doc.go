/*
Package pascal implements a front-end for a toy Pascal dialect.

A toy-Pascal program declares integer variables and has a block of
statements:

    VAR a, b, c: INTEGER;
    BEGIN
        READ(a, b);
        c = (a + b) / 2;
        CASE c OF
            1: a = 0;
            2: a = -b + c;
        END_CASE;
        WRITE(a, c);
    END

Source code is split into tokens by Tokenize. Parse builds an AST with a
recursive descent parser; Recognize checks a program against an LL(1)
grammar with the table-driven recognizer of package ll. An AST may be
translated to Python (Translate) or executed directly (Interpreter).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pascal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpas.pascal'.
func tracer() tracing.Trace {
	return tracing.Select("llpas.pascal")
}
