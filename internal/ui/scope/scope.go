// Package scope resolves the selection a renderer belongs to.
//
// A table is composed as a tree of scopes. A selectable table provides its
// selection service on one scope; every header and row renderer created
// below it finds that service by walking up the parent chain. Renderers
// created outside any selectable scope get selection.None and render
// without checkbox columns.
package scope

import "tablegrip/internal/ui/services/selection"

// Provider hands out the current capability snapshot.
// *selection.Service satisfies it.
type Provider interface {
	Capability() selection.Capability
}

type noneProvider struct{}

func (noneProvider) Capability() selection.Capability { return selection.None }

// Scope is one node of a composed table tree. The zero value is a valid
// root without a selection.
type Scope struct {
	parent   *Scope
	provider Provider
}

// New returns an empty root scope
func New() *Scope {
	return &Scope{}
}

// Child returns a nested scope that inherits everything from s
func (s *Scope) Child() *Scope {
	return &Scope{parent: s}
}

// WithSelection returns a nested scope providing p to its descendants.
// Inner providers shadow outer ones.
func (s *Scope) WithSelection(p Provider) *Scope {
	return &Scope{parent: s, provider: p}
}

// Provider returns the nearest selection provider, or one that always
// yields selection.None. Safe on a nil scope.
func (s *Scope) Provider() Provider {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.provider != nil {
			return cur.provider
		}
	}
	return noneProvider{}
}

// Selection returns the current capability of the nearest provider
func (s *Scope) Selection() selection.Capability {
	return s.Provider().Capability()
}
