package analyzer

import (
	"github.com/quartzlang/quartz/internal/typesystem"
)

// Scope is a lexical symbol table mapping names to their declared types.
type Scope struct {
	parent *Scope
	names  map[string]typesystem.Type
}

func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, names: make(map[string]typesystem.Type)}
}

func (s *Scope) Define(name string, t typesystem.Type) {
	s.names[name] = t
}

func (s *Scope) Lookup(name string) (typesystem.Type, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if t, ok := scope.names[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// DefinedLocally reports whether name is defined in this scope, ignoring parents.
func (s *Scope) DefinedLocally(name string) bool {
	_, ok := s.names[name]
	return ok
}
