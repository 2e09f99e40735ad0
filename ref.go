package typedmap

import (
	"fmt"
	"sort"
)

// Ref is a named placeholder for a schema declared elsewhere, enabling
// forward and self references between records. Every Ref must be resolved by
// a Registry before validation; the matcher itself never resolves names.
type Ref struct {
	Name string

	target Schema
}

func (r *Ref) Describe() string {
	if r.target != nil {
		return r.target.Describe()
	}
	return r.Name
}

// Target returns the resolved node, or nil before resolution.
func (r *Ref) Target() Schema { return r.target }

// Registry is the name table used to fix up Ref nodes into direct node
// references. Register the named schemas, then call Resolve once; after that
// the registry is no longer needed and the schemas are safe to share.
type Registry struct {
	byName map[string]Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Schema{}}
}

// Register binds a name to a schema, replacing any previous binding.
func (g *Registry) Register(name string, s Schema) {
	g.byName[name] = s
}

// Lookup returns the schema registered under name.
func (g *Registry) Lookup(name string) (Schema, bool) {
	s, ok := g.byName[name]
	return s, ok
}

// Resolve walks every registered schema and points each Ref at its target,
// failing on names with no registration. Cycles between records are fine;
// resolution visits each node once.
func (g *Registry) Resolve() error {
	seen := map[Schema]struct{}{}
	names := make([]string, 0, len(g.byName))
	for name := range g.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := g.resolve(g.byName[name], seen); err != nil {
			return err
		}
	}
	return nil
}

// ResolveSchema resolves references inside a single schema tree, e.g. one
// that uses registered records without being registered itself.
func (g *Registry) ResolveSchema(s Schema) error {
	return g.resolve(s, map[Schema]struct{}{})
}

func (g *Registry) resolve(s Schema, seen map[Schema]struct{}) error {
	if _, ok := seen[s]; ok {
		return nil
	}
	seen[s] = struct{}{}
	switch n := s.(type) {
	case *Ref:
		if n.target == nil {
			t, ok := g.byName[n.Name]
			if !ok {
				return fmt.Errorf("typedmap: unresolved schema reference %q", n.Name)
			}
			n.target = t
		}
		return g.resolve(n.target, seen)
	case *Record:
		for i := range n.Fields {
			if err := g.resolve(n.Fields[i].Type, seen); err != nil {
				return err
			}
		}
	case *Sequence:
		return g.resolve(n.Elem, seen)
	case *Mapping:
		return g.resolve(n.Value, seen)
	case *Union:
		for _, b := range n.Branches {
			if err := g.resolve(b, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
