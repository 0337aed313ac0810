package purepath

import (
	"github.com/MacroPower/pathkit/pkg/pathenc"
)

// Parse interprets text as a path under the given dialect rules. Parsing is
// total: malformed input degrades to a best-effort interpretation rather
// than an error. Repeated separators collapse, a trailing separator becomes
// the directory flag, and the literal inputs "." and ".." (with or without
// a trailing separator) parse as directory references.
func Parse(r Rules, s string) Path {
	root, rest := r.SplitRoot(s)

	p := Path{root: root}
	if rest == "" {
		// Root-only inputs such as "/" or "C:\" are directory-shaped.
		p.dir = root.Kind != RootNone

		return p
	}

	start := 0
	for i := 0; i <= len(rest); i++ {
		if i < len(rest) && !r.IsSeparator(rest[i]) {
			continue
		}

		seg := rest[start:i]
		start = i + 1

		switch {
		case seg != "":
			p.parts = append(p.parts, seg)
		case i == len(rest):
			p.dir = true
		}
	}

	if root.Kind == RootNone && len(p.parts) == 1 && (p.parts[0] == "." || p.parts[0] == "..") {
		p.dir = true
	}

	return p
}

// ParseBytes interprets raw bytes as a path, decoding them through
// [pathenc.Decode] first. The returned bool is true when the bytes were
// valid text; an invalid tag applies to the path as a whole. The original
// bytes are recoverable via [Path.Bytes] regardless of the tag.
func ParseBytes(r Rules, b []byte) (Path, bool) {
	text, ok := pathenc.Decode(b)

	return Parse(r, text), ok
}
