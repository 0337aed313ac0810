package purepath

// Collapse resolves "." and ".." components left to right without consulting
// a filesystem. A "." is dropped; a ".." cancels the immediately preceding
// real component when one exists and is not itself "..", and is kept
// otherwise: collapsing never crosses the root and never invents a parent
// for a relative path. The root is never altered. Collapse is idempotent.
//
// A relative path whose components all collapse away becomes the
// current-directory reference "./" rather than the empty path.
func (p Path) Collapse() Path {
	out := make([]string, 0, len(p.parts))
	for _, c := range p.parts {
		switch c {
		case ".":
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else {
				out = append(out, c)
			}
		default:
			out = append(out, c)
		}
	}

	if len(out) == 0 {
		if p.root.Kind != RootNone {
			return Path{root: p.root, dir: true}
		}
		if len(p.parts) == 0 {
			return p
		}

		return dot()
	}

	return Path{root: p.root, parts: out, dir: p.dir}
}
