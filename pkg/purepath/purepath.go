package purepath

import (
	"slices"
)

// RootKind identifies the kind of root prefix a path carries.
type RootKind uint8

const (
	// RootNone marks a relative path with no root prefix.
	RootNone RootKind = iota

	// RootSlash is the POSIX absolute root, a single leading separator.
	RootSlash

	// RootDrive is a Windows drive-letter root such as `C:\`.
	RootDrive

	// RootBare is the Windows bare-separator root, relative to the current
	// drive. UNC hosts degrade to this kind with the host and share as
	// leading components.
	RootBare
)

// Root is the dialect-specific prefix of a path, separate from its
// components. Drive is the uppercased drive letter when Kind is [RootDrive]
// and zero otherwise.
type Root struct {
	Kind  RootKind
	Drive byte
}

// Path is an immutable structured path: a root, an ordered component
// sequence, and a directory flag. The zero value is the unique empty path.
// Two inputs that parse to the same triple are indistinguishable, even if
// their original spellings differed.
//
// Path values are created by [Parse], [ParseBytes], or by the algebra
// operations; there is no mutation API.
type Path struct {
	parts []string
	root  Root
	dir   bool
}

// dot is the current-directory reference, rendered "./".
func dot() Path {
	return Path{parts: []string{"."}, dir: true}
}

// Root returns a path carrying only p's root information. For a relative
// path it is the empty path.
func (p Path) Root() Path {
	if p.root.Kind == RootNone {
		return Path{}
	}

	return Path{root: p.root, dir: true}
}

// RootKind returns the kind of p's root.
func (p Path) RootKind() RootKind {
	return p.root.Kind
}

// Drive returns the uppercased drive letter for a drive-rooted path, or zero.
func (p Path) Drive() byte {
	return p.root.Drive
}

// Components returns a copy of p's component sequence.
func (p Path) Components() []string {
	return slices.Clone(p.parts)
}

// IsDir reports whether p denotes a directory-like location, i.e. whether it
// was spelled with a trailing separator or produced by a directory-shaped
// operation.
func (p Path) IsDir() bool {
	return p.dir
}

// IsAbs reports whether p is absolute, i.e. carries a root.
func (p Path) IsAbs() bool {
	return p.root.Kind != RootNone
}

// IsRel reports whether p is relative. It is the negation of [Path.IsAbs].
func (p Path) IsRel() bool {
	return p.root.Kind == RootNone
}

// IsEmpty reports whether p is the unique empty path.
func (p Path) IsEmpty() bool {
	return p.root.Kind == RootNone && len(p.parts) == 0 && !p.dir
}

// Equal reports structural equality over the root, components, and
// directory flag.
func (p Path) Equal(q Path) bool {
	return p.root == q.root && p.dir == q.dir && slices.Equal(p.parts, q.parts)
}

// isDotForm reports whether p is one of the forms "", ".", ".." with no root,
// which denote directory references rather than real names.
func (p Path) isDotForm() bool {
	if p.root.Kind != RootNone {
		return false
	}
	if len(p.parts) == 0 {
		return true
	}

	return len(p.parts) == 1 && (p.parts[0] == "." || p.parts[0] == "..")
}
