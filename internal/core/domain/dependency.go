package domain

import "strings"

// Relationship is the kind of a dependency edge. Its value is the attribute it came from.
type Relationship string

// Relationship kinds.
const (
	RelDepends      Relationship = "PKGDEP"
	RelRecommends   Relationship = "PKGRECOM"
	RelBreaks       Relationship = "PKGBREAK"
	RelConflicts    Relationship = "PKGCONFL"
	RelReplaces     Relationship = "PKGREP"
	RelBuildDepends Relationship = "BUILDDEP"
)

// Relationships lists every relationship kind in the order edges are derived.
var Relationships = []Relationship{
	RelDepends,
	RelRecommends,
	RelBreaks,
	RelConflicts,
	RelReplaces,
	RelBuildDepends,
}

// IsRelationship reports whether the attribute name is a dependency attribute.
func IsRelationship(name string) bool {
	for _, rel := range Relationships {
		if string(rel) == name {
			return true
		}
	}
	return false
}

// constraintOperators start a version constraint inside a dependency token.
const constraintOperators = "<=>"

// DependencySpec is one parsed token of a dependency expression.
type DependencySpec struct {
	// Name is the package name, possibly empty for malformed tokens.
	Name string
	// Constraint is the operator and version, e.g. ">=1.2", or empty when unconstrained.
	Constraint string
}

// ParseDependencies splits a whitespace separated dependency expression into
// (name, constraint) pairs. The constraint is passed through verbatim.
func ParseDependencies(expr string) []DependencySpec {
	tokens := strings.Fields(expr)
	specs := make([]DependencySpec, 0, len(tokens))
	for _, tok := range tokens {
		if i := strings.IndexAny(tok, constraintOperators); i >= 0 {
			specs = append(specs, DependencySpec{Name: tok[:i], Constraint: tok[i:]})
			continue
		}
		specs = append(specs, DependencySpec{Name: tok})
	}
	return specs
}

// DependencyEdge is a row of the package_dependencies relation.
type DependencyEdge struct {
	Package      string
	Dependency   string
	Version      string
	Relationship Relationship
}

// EdgeKey is the composite primary key of a dependency edge.
type EdgeKey struct {
	Package      string
	Dependency   string
	Relationship Relationship
}

// Key returns the edge's primary key.
func (e DependencyEdge) Key() EdgeKey {
	return EdgeKey{Package: e.Package, Dependency: e.Dependency, Relationship: e.Relationship}
}
