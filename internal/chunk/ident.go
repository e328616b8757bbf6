package chunk

import (
	"strings"

	"github.com/chunk-team/chunkforge/internal/utils/hash"
)

// Ident is a content-identity descriptor for a build artifact: a source path
// plus an ordered list of distinguishing modifiers. Two artifacts with equal
// idents collapse to the same output; modifiers keep otherwise-identical
// artifacts apart.
type Ident struct {
	Path      string
	Modifiers []string
}

// NewIdent creates an identity descriptor for the given path.
func NewIdent(path string) Ident {
	return Ident{Path: path}
}

// WithModifier returns a copy of the ident with the modifier appended. The
// receiver is not modified.
func (i Ident) WithModifier(modifier string) Ident {
	mods := make([]string, 0, len(i.Modifiers)+1)
	mods = append(mods, i.Modifiers...)
	mods = append(mods, modifier)
	return Ident{Path: i.Path, Modifiers: mods}
}

// String folds the path and modifiers into a stable identity string.
func (i Ident) String() string {
	if len(i.Modifiers) == 0 {
		return i.Path
	}
	var b strings.Builder
	b.WriteString(i.Path)
	b.WriteString(" [")
	for n, m := range i.Modifiers {
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
	}
	b.WriteString("]")
	return b.String()
}

// Hash returns a short content-address suffix for output naming, stable
// across processes for equal idents.
func (i Ident) Hash() string {
	return hash.Short(i.String())
}
