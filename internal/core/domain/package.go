package domain

import (
	"slices"
	"strings"
)

// categorySeparator splits a category directory name into category and section.
const categorySeparator = "-"

// PackageRecord is the metadata of one package produced by evaluating a task.
type PackageRecord struct {
	Name        string
	Category    string
	Section     string
	PkgSection  string
	Version     string
	Release     string
	Description string
	// Directory is the "category/package/variant" tree path the record came
	// from. It is persisted as the package's source.
	Directory  string
	Attributes AttributeSet
}

// SplitCategory splits a category token such as "base-devel" on its first
// separator. A token without a separator has no top-level category.
func SplitCategory(token string) (category, section string) {
	category, section, ok := strings.Cut(token, categorySeparator)
	if !ok {
		return "", token
	}
	return category, section
}

// MatchCategory reports whether a category directory is scanned. The name must
// start with one of prefixes and, when selector is set, start or end with it.
func MatchCategory(name string, prefixes []string, selector string) bool {
	if selector != "" && !strings.HasPrefix(name, selector) && !strings.HasSuffix(name, selector) {
		return false
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// NewPackageRecord builds a record from the attributes evaluated for task.
// It reports false when PKGNAME is absent or empty, which happens for
// variants that only apply to other architectures.
func NewPackageRecord(task Task, attrs AttributeSet) (PackageRecord, bool) {
	name := attrs.Value(AttrName)
	if name == "" {
		return PackageRecord{}, false
	}
	category, section := SplitCategory(task.Category.String())
	return PackageRecord{
		Name:        name,
		Category:    category,
		Section:     section,
		PkgSection:  attrs.Value(AttrSection),
		Version:     attrs.Value(AttrVersion),
		Release:     attrs.Value(AttrRelease),
		Description: attrs.Value(AttrDescription),
		Directory:   task.String(),
		Attributes:  attrs,
	}, true
}

// Dependencies derives the record's dependency edges, one per token per
// relationship attribute, in relationship order then token order.
func (r PackageRecord) Dependencies() []DependencyEdge {
	var edges []DependencyEdge
	for _, rel := range Relationships {
		for _, dep := range ParseDependencies(r.Attributes.Value(string(rel))) {
			edges = append(edges, DependencyEdge{
				Package:      r.Name,
				Dependency:   dep.Name,
				Version:      dep.Constraint,
				Relationship: rel,
			})
		}
	}
	return edges
}

// SpecEntry is a row of the package_spec relation.
type SpecEntry struct {
	Package string
	Key     string
	Value   string
}

// SpecEntries returns the non-empty attributes that are neither package
// columns nor dependency attributes, sorted by key.
func (r PackageRecord) SpecEntries() []SpecEntry {
	keys := make([]string, 0, len(r.Attributes))
	for k, v := range r.Attributes {
		if v == "" || IsRelationship(k) {
			continue
		}
		if _, ok := promoted[k]; ok {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]SpecEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, SpecEntry{Package: r.Name, Key: k, Value: r.Attributes[k]})
	}
	return entries
}
