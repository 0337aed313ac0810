package purepath

import (
	"strings"

	"github.com/MacroPower/pathkit/pkg/pathenc"
)

// Format renders p in the dialect's canonical spelling: the root, the
// components joined by the canonical separator, and a trailing separator
// iff p denotes a directory. Rendering is deterministic and total, but not
// necessarily equal to the input p was parsed from; repeated separators,
// alternate separators, and drive-letter case are normalized away.
func (p Path) Format(r Rules) string {
	var sb strings.Builder
	sb.WriteString(r.FormatRoot(p.root))

	for i, part := range p.parts {
		if i > 0 {
			sb.WriteByte(r.Separator())
		}
		sb.WriteString(part)
	}

	if p.dir {
		switch {
		case len(p.parts) > 0:
			sb.WriteByte(r.Separator())
		case p.root.Kind == RootNone:
			// A rootless, componentless directory still serializes to a
			// directory-shaped form.
			sb.WriteString(".")
			sb.WriteByte(r.Separator())
		}
	}

	return sb.String()
}

// Bytes renders p and re-encodes the result to raw bytes, reversing any
// escaping performed by [ParseBytes].
func (p Path) Bytes(r Rules) []byte {
	return pathenc.Encode(p.Format(r))
}

// TextValid reports whether every component of p is real text, i.e. carries
// no escaped raw bytes from [ParseBytes].
func (p Path) TextValid() bool {
	for _, part := range p.parts {
		if !pathenc.Valid(part) {
			return false
		}
	}

	return true
}
