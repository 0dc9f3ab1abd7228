package runtime

import (
	"fmt"
)

// MemoryFrame holds the values of variables of an active scope.
type MemoryFrame struct {
	Name        string
	Scope       *Scope
	SymbolTable *SymbolTable
	Parent      *MemoryFrame
}

// NewMemoryFrame creates a memory frame with empty storage.
func NewMemoryFrame(name string, scope *Scope) *MemoryFrame {
	return &MemoryFrame{
		Name:        name,
		Scope:       scope,
		SymbolTable: NewSymbolTable(),
	}
}

func (mf *MemoryFrame) String() string {
	return fmt.Sprintf("<mem %s -> %v>", mf.Name, mf.Scope)
}

// IsRoot is a predicate: Is this a root frame?
func (mf *MemoryFrame) IsRoot() bool {
	return (mf.Parent == nil)
}

// Store sets the value of a variable in this frame. Storage for the variable
// is allocated on first use.
func (mf *MemoryFrame) Store(name string, value interface{}) *Tag {
	tag, _ := mf.SymbolTable.ResolveOrDefineTag(name)
	tag.UData = value
	tracer().P("mem", mf.Name).Debugf("%s := %v", name, value)
	return tag
}

// Load gets the value of a variable, searching this frame and all its
// parent frames. The flag signals wether a value has been stored.
func (mf *MemoryFrame) Load(name string) (interface{}, bool) {
	for f := mf; f != nil; f = f.Parent {
		if tag := f.SymbolTable.ResolveTag(name); tag != nil && tag.IsSet() {
			return tag.UData, true
		}
	}
	return nil, false
}

// ---------------------------------------------------------------------------

// MemoryFrameStack is a (call-)stack of memory frames. Frames are linked to
// their parent frame, the bottom frame holds global variables.
type MemoryFrameStack struct {
	base *MemoryFrame
	tos  *MemoryFrame
}

// Current gets the top-most memory frame.
func (mfst *MemoryFrameStack) Current() *MemoryFrame {
	if mfst.tos == nil {
		panic("attempt to access memory frame from empty stack")
	}
	return mfst.tos
}

// Globals gets the bottom memory frame.
func (mfst *MemoryFrameStack) Globals() *MemoryFrame {
	if mfst.base == nil {
		panic("attempt to access global memory frame from empty stack")
	}
	return mfst.base
}

// PushNewMemoryFrame creates a frame for scope, with the current TOS as its
// parent, and pushes it.
func (mfst *MemoryFrameStack) PushNewMemoryFrame(name string, scope *Scope) *MemoryFrame {
	mf := NewMemoryFrame(name, scope)
	mf.Parent = mfst.tos
	if mfst.base == nil {
		mfst.base = mf
	}
	mfst.tos = mf
	tracer().P("mem", name).Debugf("pushing new memory frame")
	return mf
}

// PopMemoryFrame pops and returns the top-most memory frame.
func (mfst *MemoryFrameStack) PopMemoryFrame() *MemoryFrame {
	mf := mfst.Current()
	tracer().Debugf("popping memory frame [%s]", mf.Name)
	mfst.tos = mf.Parent
	return mf
}

// FindMemoryFrameForScope finds the top-most memory frame for a scope.
func (mfst *MemoryFrameStack) FindMemoryFrameForScope(scope *Scope) *MemoryFrame {
	for mf := mfst.tos; mf != nil; mf = mf.Parent {
		if mf.Scope == scope {
			return mf
		}
	}
	return nil
}
