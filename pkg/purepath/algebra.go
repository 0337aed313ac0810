package purepath

import (
	"strings"
)

// Dir returns the directory containing p's last segment if p denotes a
// file, or p itself if it already denotes a directory. The result always
// denotes a directory. The empty path maps to the current-directory
// reference "./", and an absolute root-only path maps to itself.
func (p Path) Dir() Path {
	if p.IsEmpty() {
		return dot()
	}
	if p.dir {
		return p
	}
	if len(p.parts) == 0 {
		return Path{root: p.root, dir: true}
	}

	return p.chop()
}

// Parent returns the directory containing p. For a file path it is the same
// as [Path.Dir]; for a directory path with content it strips one more
// level. The parent of a root is the root itself, and the empty, ".", and
// ".." forms map to "./".
func (p Path) Parent() Path {
	if p.isDotForm() {
		return dot()
	}
	if !p.dir {
		return p.Dir()
	}
	if len(p.parts) == 0 {
		return p
	}

	return p.chop()
}

// chop drops the last component and marks the result as a directory.
func (p Path) chop() Path {
	parts := p.parts[:len(p.parts)-1]
	if len(parts) == 0 && p.root.Kind == RootNone {
		return dot()
	}

	return Path{root: p.root, parts: parts, dir: true}
}

// Filename returns the last component's full text, or "" if p has no
// components.
func (p Path) Filename() string {
	if len(p.parts) == 0 {
		return ""
	}

	return p.parts[len(p.parts)-1]
}

// Base returns the filename with its trailing extension removed. The "."
// and ".." references are not real filenames and yield "".
func (p Path) Base() string {
	name := p.Filename()
	if name == "." || name == ".." {
		return ""
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}

	return name
}

// Join appends q to p. An absolute q is returned unchanged, mirroring
// platform join semantics. Otherwise the result takes p's root, the
// concatenated components, and q's directory flag. Joining the empty path
// forces p into directory shape.
func (p Path) Join(q Path) Path {
	if q.IsAbs() {
		return q
	}
	if q.IsEmpty() {
		return Path{root: p.root, parts: p.parts, dir: true}
	}

	parts := make([]string, 0, len(p.parts)+len(q.parts))
	parts = append(parts, p.parts...)
	parts = append(parts, q.parts...)

	return Path{root: p.root, parts: parts, dir: q.dir}
}

// CommonPrefix returns the longest path that is a component-wise prefix of
// every input. Paths with differing roots share no prefix beyond the empty
// path. The result denotes a directory only if the prefix ends on a
// component boundary in every input.
func CommonPrefix(paths ...Path) Path {
	if len(paths) == 0 {
		return Path{}
	}

	first := paths[0]
	n := len(first.parts)
	for _, p := range paths[1:] {
		if p.root != first.root {
			return Path{}
		}
		n = commonLen(first.parts, p.parts, n)
	}

	if n == 0 && first.root.Kind == RootNone {
		return Path{}
	}

	dir := true
	for _, p := range paths {
		if len(p.parts) == n && !p.dir {
			dir = false

			break
		}
	}

	return Path{root: first.root, parts: first.parts[:n], dir: dir}
}

func commonLen(a, b []string, limit int) int {
	n := 0
	for n < limit && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}

// SplitExt splits p's filename at the last "." that is not its first
// character, returning the path with the extension removed, the extension
// text without the dot, and whether a split occurred. A filename ending in
// "." yields an empty extension, distinct from no extension. Paths denoting
// directories never split.
func (p Path) SplitExt() (Path, string, bool) {
	if p.dir || len(p.parts) == 0 {
		return p, "", false
	}

	name := p.parts[len(p.parts)-1]
	if name == "." || name == ".." {
		return p, "", false
	}

	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return p, "", false
	}

	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	parts[len(parts)-1] = name[:i]

	return Path{root: p.root, parts: parts}, name[i+1:], true
}

// Ext returns the extension text of p's filename and whether one exists,
// under the same rules as [Path.SplitExt].
func (p Path) Ext() (string, bool) {
	_, ext, ok := p.SplitExt()

	return ext, ok
}
