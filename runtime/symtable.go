package runtime

import (
	"fmt"

	"github.com/npillmayer/llpas"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Tags ------------------------------------------------------------------

// Tag is an entry of a symbol table, i.e. a declared variable. Tags are not
// called 'Symbol' to keep them apart from grammar symbols.
type Tag struct {
	name  string
	Typ   int8
	Decl  llpas.Span  // position of the declaration in the source
	UData interface{} // user data, e.g. the value of a variable
}

// Tag types. toy-Pascal knows integers only.
const (
	Undefined int8 = iota
	IntegerType
)

func (tag *Tag) String() string {
	return fmt.Sprintf("<tag '%s':%d>", tag.name, tag.Typ)
}

// Name gets the tag's name.
func (tag *Tag) Name() string {
	return tag.name
}

// IsSet is a predicate: has a value been stored in the tag?
func (tag *Tag) IsSet() bool {
	return tag.UData != nil
}

// === Symbol Tables =========================================================

// SymbolTable maps names to tags.
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Tag)}
}

// ResolveTag returns the tag for a name, or nil.
func (t *SymbolTable) ResolveTag(name string) *Tag {
	return t.Table[name]
}

// ResolveOrDefineTag returns the tag for a name, creating it if necessary.
// The flag tells if the tag has been present before. Empty names are
// rejected with a nil tag.
func (t *SymbolTable) ResolveOrDefineTag(name string) (*Tag, bool) {
	if tag := t.ResolveTag(name); tag != nil {
		return tag, true
	}
	tag, _ := t.DefineTag(name)
	return tag, false
}

// DefineTag creates a tag, replacing an existing tag of the same name.
// It returns the new tag and the replaced one, if any.
func (t *SymbolTable) DefineTag(name string) (tag *Tag, old *Tag) {
	if name == "" {
		return nil, nil
	}
	tag = &Tag{name: name}
	old = t.Table[name]
	t.Table[name] = tag
	return tag, old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Names returns the names of all tags, sorted.
func (t *SymbolTable) Names() []string {
	names := maps.Keys(t.Table)
	slices.Sort(names)
	return names
}

// Each calls mapper for every tag, in order of tag names.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for _, name := range t.Names() {
		mapper(name, t.Table[name])
	}
}

// === Scopes ================================================================

// RedeclarationError is returned if a variable is declared twice in the same
// scope.
type RedeclarationError struct {
	Name  string
	First llpas.Span
	Again llpas.Span
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("variable %s at %s already declared at %s", e.Name, e.Again, e.First)
}

// Scope is a named scope of declarations. Scopes link back to their parent
// scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{
		Name:   name,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
}

func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in the scope, see SymbolTable.DefineTag.
func (s *Scope) DefineTag(name string) (*Tag, *Tag) {
	return s.symtab.DefineTag(name)
}

// Declare defines a variable of type typ in the scope. Declaring a variable
// twice in the same scope is an error; shadowing variables of parent scopes
// is not.
func (s *Scope) Declare(name string, typ int8, at llpas.Span) (*Tag, error) {
	if tag := s.symtab.ResolveTag(name); tag != nil {
		return nil, &RedeclarationError{Name: name, First: tag.Decl, Again: at}
	}
	tag, _ := s.symtab.DefineTag(name)
	tag.Typ = typ
	tag.Decl = at
	tracer().P("scope", s.Name).Debugf("declare %s", tag)
	return tag, nil
}

// ResolveTag searches a tag in this scope and then up the tree. It returns
// the tag and the scope it has been found in, or (nil, nil).
func (s *Scope) ResolveTag(name string) (*Tag, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if tag := sc.symtab.ResolveTag(name); tag != nil {
			return tag, sc
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree is used as a stack during static analysis. Pushing and popping
// scopes builds a tree of scopes.
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current gets the current scope (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope creates a scope as a child of the current scope and makes it
// the new TOS.
func (scst *ScopeTree) PushNewScope(name string) *Scope {
	sc := NewScope(name, scst.ScopeTOS)
	if scst.ScopeBase == nil {
		scst.ScopeBase = sc
	}
	scst.ScopeTOS = sc
	tracer().P("scope", name).Debugf("pushing new scope")
	return sc
}

// PopScope pops the current scope.
func (scst *ScopeTree) PopScope() *Scope {
	sc := scst.Current()
	tracer().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = sc.Parent
	return sc
}
