/*
File    : ember/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package environment implements the nested lexical scopes described in
spec.md section 4.4: a name-to-Value mapping plus an optional reference
to an enclosing Environment, forming a tree rooted at the global scope.

Unlike the teacher's scope package, an Environment here is never copied
for closure capture — a Function simply keeps a pointer to the
Environment active when it was declared. Go's garbage collector keeps
that Environment (and everything it transitively points to) alive for
as long as any closure references it, which is exactly the "shared
mutable ownership with interior mutability" spec.md section 4.4 calls
for; reference counting or an arena is unnecessary in a GC'd host.
*/
package environment

import (
	"github.com/akashmaji946/ember/value"
)

// Environment is one lexical scope: its own bindings plus a pointer to
// the scope that encloses it (nil for the global environment).
type Environment struct {
	values  map[string]value.Value
	parent  *Environment
}

// New creates a fresh Environment enclosed by parent. Pass nil to create
// the global environment.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), parent: parent}
}

// Define binds name to v in this environment only, shadowing (but never
// mutating) any binding of the same name in an enclosing environment.
// Redefining an existing name at this level overwrites it silently, per
// spec.md section 4.4 ("language permits variable re-declaration at top
// level and within a given block").
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name in this environment, then walks outward through
// enclosing environments until it is found. It reports ok=false (never
// creating a binding) if no environment in the chain defines name.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign updates the binding for name in the nearest enclosing
// environment that already defines it, without ever creating a new
// binding. It reports ok=false if no environment in the chain defines
// name — assign must not define, mirroring Define's must-not-walk-outward
// asymmetry (spec.md section 9).
func (e *Environment) Assign(name string, v value.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return true
		}
	}
	return false
}
