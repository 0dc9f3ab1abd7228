package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// TermSet is an ordered set of terminal names. Iteration order is the
// lexicographic order of the names, with EndOfInput first.
//
// Set operations are destructive, i.e. they modify the receiver.
type TermSet struct {
	set *treeset.Set
}

// NewTermSet creates a set from a list of terminal names.
func NewTermSet(terms ...string) *TermSet {
	s := &TermSet{set: treeset.NewWith(utils.StringComparator)}
	s.Add(terms...)
	return s
}

// Add inserts terminal names.
func (s *TermSet) Add(terms ...string) *TermSet {
	for _, t := range terms {
		s.set.Add(t)
	}
	return s
}

// AddAll inserts all terminals of another set.
func (s *TermSet) AddAll(other *TermSet) *TermSet {
	if other != nil {
		s.set.Add(other.set.Values()...)
	}
	return s
}

// Contains is a predicate.
func (s *TermSet) Contains(t string) bool {
	return s.set.Contains(t)
}

// Size returns the number of terminals in s.
func (s *TermSet) Size() int {
	return s.set.Size()
}

// IsEmpty is a predicate.
func (s *TermSet) IsEmpty() bool {
	return s.set.Empty()
}

// Values returns the terminal names in order.
func (s *TermSet) Values() []string {
	values := make([]string, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		values = append(values, it.Value().(string))
	}
	return values
}

// Equals checks two sets for equal members.
func (s *TermSet) Equals(other *TermSet) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	for _, t := range s.Values() {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

func (s *TermSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range s.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		if t == EndOfInput {
			b.WriteString("ε")
		} else {
			b.WriteString(t)
		}
	}
	b.WriteByte('}')
	return b.String()
}
