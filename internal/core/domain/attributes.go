package domain

// Attribute names extracted from evaluated descriptors.
const (
	AttrName        = "PKGNAME"
	AttrSection     = "PKGSEC"
	AttrDescription = "PKGDES"
	AttrEpoch       = "PKGEPOCH"
	AttrVersion     = "VER"
	AttrRelease     = "REL"
	AttrSource      = "SRCTBL"
	AttrChecksum    = "CHKSUM"
)

// Vocabulary is the fixed set of attributes the evaluator asks the shell for.
var Vocabulary = []string{
	AttrName,
	AttrSection,
	AttrDescription,
	AttrEpoch,
	AttrVersion,
	AttrRelease,
	string(RelDepends),
	string(RelRecommends),
	string(RelBreaks),
	string(RelConflicts),
	string(RelReplaces),
	string(RelBuildDepends),
	AttrSource,
	AttrChecksum,
}

var vocabulary = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Vocabulary))
	for _, name := range Vocabulary {
		m[name] = struct{}{}
	}
	return m
}()

// promoted attributes are stored as package columns or dependency edges,
// not as spec entries.
var promoted = map[string]struct{}{
	AttrName:        {},
	AttrSection:     {},
	AttrDescription: {},
	AttrVersion:     {},
	AttrRelease:     {},
}

// IsKnownAttribute reports whether name is part of the vocabulary.
func IsKnownAttribute(name string) bool {
	_, ok := vocabulary[name]
	return ok
}

// AttributeSet maps attribute names to raw string values.
// A set is never modified after the evaluator returns it.
type AttributeSet map[string]string

// Value returns the attribute value or an empty string.
func (s AttributeSet) Value(name string) string {
	return s[name]
}
