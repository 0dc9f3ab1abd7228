/*
Package llpas is a small toolbox for table-driven LL(1) parsing, together
with a front-end for a toy Pascal-like language.

Package structure is as follows:

■ ll: Package ll implements the grammar model, FIRST/FOLLOW analysis,
construction of predictive (LL(1)) transition tables and a stack-based
recognizer driven by these tables.

■ pascal: Package pascal implements a lexer, a recursive-descent parser,
a table-driven recognizer grammar, a translator to Python and an interpreter
for a toy Pascal dialect.

■ runtime: Package runtime provides scopes, symbol tables and memory frames
for interpreters.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llpas
