package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/abbsmeta/internal/core/domain"
)

func newTask(category, pkg, variant string) domain.Task {
	return domain.Task{
		Dir:      "/tree/" + category + "/" + pkg,
		Category: domain.NewInternedString(category),
		Package:  pkg,
		Variant:  variant,
	}
}

func TestSplitCategory(t *testing.T) {
	tests := []struct {
		token    string
		category string
		section  string
	}{
		{"base-devel", "base", "devel"},
		{"extra-libs-x11", "extra", "libs-x11"},
		{"groups", "", "groups"},
		{"base-", "base", ""},
	}
	for _, tt := range tests {
		category, section := domain.SplitCategory(tt.token)
		require.Equal(t, tt.category, category, tt.token)
		require.Equal(t, tt.section, section, tt.token)
	}
}

func TestNewPackageRecord(t *testing.T) {
	attrs := domain.AttributeSet{
		"PKGNAME":  "foo",
		"PKGSEC":   "devel",
		"PKGDES":   "Foo tool",
		"VER":      "1.0",
		"REL":      "1",
		"PKGDEP":   "bar>=1.0 baz",
		"PKGEPOCH": "2",
	}

	rec, ok := domain.NewPackageRecord(newTask("base-devel", "foo", "autobuild"), attrs)
	require.True(t, ok)
	require.Equal(t, "foo", rec.Name)
	require.Equal(t, "base", rec.Category)
	require.Equal(t, "devel", rec.Section)
	require.Equal(t, "devel", rec.PkgSection)
	require.Equal(t, "1.0", rec.Version)
	require.Equal(t, "1", rec.Release)
	require.Equal(t, "Foo tool", rec.Description)
	require.Equal(t, "base-devel/foo/autobuild", rec.Directory)
}

func TestNewPackageRecord_MissingName(t *testing.T) {
	task := newTask("base-devel", "foo", "autobuild")

	_, ok := domain.NewPackageRecord(task, domain.AttributeSet{"VER": "1.0"})
	require.False(t, ok)

	_, ok = domain.NewPackageRecord(task, domain.AttributeSet{"PKGNAME": "", "VER": "1.0"})
	require.False(t, ok)
}

func TestPackageRecord_Dependencies(t *testing.T) {
	rec, ok := domain.NewPackageRecord(newTask("base-devel", "foo", "autobuild"), domain.AttributeSet{
		"PKGNAME":  "foo",
		"PKGDEP":   "bar>=1.0 baz",
		"BUILDDEP": "cmake",
		"PKGBREAK": "",
	})
	require.True(t, ok)

	require.Equal(t, []domain.DependencyEdge{
		{Package: "foo", Dependency: "bar", Version: ">=1.0", Relationship: domain.RelDepends},
		{Package: "foo", Dependency: "baz", Version: "", Relationship: domain.RelDepends},
		{Package: "foo", Dependency: "cmake", Version: "", Relationship: domain.RelBuildDepends},
	}, rec.Dependencies())
}

func TestPackageRecord_SpecEntries(t *testing.T) {
	rec, ok := domain.NewPackageRecord(newTask("extra-web", "nginx", "autobuild"), domain.AttributeSet{
		"PKGNAME":  "nginx",
		"VER":      "1.25",
		"PKGDEP":   "pcre",
		"SRCTBL":   "https://nginx.org/download/nginx-1.25.tar.gz",
		"CHKSUM":   "sha256::abc",
		"PKGEPOCH": "",
	})
	require.True(t, ok)

	require.Equal(t, []domain.SpecEntry{
		{Package: "nginx", Key: "CHKSUM", Value: "sha256::abc"},
		{Package: "nginx", Key: "SRCTBL", Value: "https://nginx.org/download/nginx-1.25.tar.gz"},
	}, rec.SpecEntries())
}

func TestVocabulary(t *testing.T) {
	require.Len(t, domain.Vocabulary, 14)
	for _, name := range domain.Vocabulary {
		require.True(t, domain.IsKnownAttribute(name))
	}
	require.False(t, domain.IsKnownAttribute("PATH"))
}

func TestTask_Paths(t *testing.T) {
	task := newTask("base-devel", "foo", "32bit")
	require.Equal(t, "/tree/base-devel/foo/spec", task.SpecPath())
	require.Equal(t, "/tree/base-devel/foo/32bit/defines", task.DefinesPath())
	require.Equal(t, "/tree/base-devel/foo/32bit", task.VariantDir())
	require.Equal(t, "base-devel/foo", task.TreePath())
	require.Equal(t, "base-devel/foo/32bit", task.String())
}
