package domain

import (
	"path"
	"path/filepath"
)

// Task is one build variant of a package awaiting evaluation.
// Tasks are created by the tree scanner and never mutated afterwards; claiming
// happens on the queue that holds them, not on the task itself.
type Task struct {
	// Dir is the package directory holding the shared spec file.
	Dir string
	// Category is the category directory name, e.g. "base-devel".
	Category InternedString
	// Package is the package directory name.
	Package string
	// Variant is the name of the subdirectory holding the defines file.
	Variant string
}

// SpecPath returns the path of the spec file shared by all variants.
func (t Task) SpecPath() string {
	return filepath.Join(t.Dir, "spec")
}

// DefinesPath returns the path of the variant's defines file.
func (t Task) DefinesPath() string {
	return filepath.Join(t.Dir, t.Variant, "defines")
}

// VariantDir returns the directory the descriptors are evaluated in.
func (t Task) VariantDir() string {
	return filepath.Join(t.Dir, t.Variant)
}

// TreePath returns the slash separated "category/package" path relative to the pool root.
func (t Task) TreePath() string {
	return path.Join(t.Category.String(), t.Package)
}

// String returns "category/package/variant".
func (t Task) String() string {
	return path.Join(t.Category.String(), t.Package, t.Variant)
}
