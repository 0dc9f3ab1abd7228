/*
Package runtime implements an interpreter runtime, consisting of
scopes, memory frames and tags (variable declarations and references).

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Symbol Table and Scope Tree

Scopes carry symbol tables of declared variables and are organized in a tree.
During static analysis, a parser pushes and pops scopes on a scope tree and
declares variables in the current scope.

Memory Frames

Memory frames are used by an interpreter to allocate storage
for active scopes. The toy-Pascal interpreter uses a single global frame;
values are stored in the UData field of a frame's tags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpas.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("llpas.runtime")
}

// Runtime is a type implementing a runtime environment for an interpreter
type Runtime struct {
	ScopeTree     *ScopeTree        // collect scopes
	MemFrameStack *MemoryFrameStack // runtime stack of memory frames
	UData         interface{}       // extension point
}

// NewRuntimeEnvironment constructs a new runtime environment, with a global
// scope and a global memory frame connected to it.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.ScopeTree = new(ScopeTree)
	globals := rt.ScopeTree.PushNewScope("globals") // push global scope first
	rt.MemFrameStack = new(MemoryFrameStack)
	rt.MemFrameStack.PushNewMemoryFrame("global", globals) // global memory
	return rt
}

// Globals returns the global memory frame.
func (rt *Runtime) Globals() *MemoryFrame {
	return rt.MemFrameStack.Globals()
}
