// Package compileunit bundles the mutable state one compilation threads
// through every pass: the AST arena, the storage allocation tables, the
// utility-function registry, and the error sink (spec.md §5 — a
// compilation is "one logical unit: a mutable AST context plus mutable
// pass-local state, handed off linearly between passes").
package compileunit

import (
	"github.com/cwbudde/sol2cairo/internal/alloc"
	"github.com/cwbudde/sol2cairo/internal/ast"
	"github.com/cwbudde/sol2cairo/internal/utilgen"
)

// Unit is never shared across compilations: two concurrent compilations
// each construct their own Unit, matching spec.md §5's "no global mutable
// state is shared across compilations."
type Unit struct {
	Context *ast.Context
	Helpers *utilgen.Registry
	Alloc   map[string]*alloc.Table // per-contract allocation tables, keyed by contract name
	errors  []error
}

// New builds an empty compile unit ready for the pipeline driver.
func New() *Unit {
	return &Unit{
		Context: ast.NewContext(),
		Helpers: utilgen.NewRegistry(),
		Alloc:   make(map[string]*alloc.Table),
	}
}

// AddError records a fatal error without aborting collection — callers
// that want fail-fast behavior (the pipeline driver does, spec.md §4.H)
// check HasErrors after each pass instead of relying on AddError to panic.
func (u *Unit) AddError(err error) {
	if err != nil {
		u.errors = append(u.errors, err)
	}
}

// HasErrors reports whether any pass has recorded a fatal error.
func (u *Unit) HasErrors() bool { return len(u.errors) > 0 }

// Errors returns every recorded error, oldest first.
func (u *Unit) Errors() []error { return u.errors }

// FirstError returns the earliest recorded error, or nil.
func (u *Unit) FirstError() error {
	if len(u.errors) == 0 {
		return nil
	}
	return u.errors[0]
}
