package purepath

import (
	"strings"
)

// SplitSearchPath splits a delimited search-path string such as PATH into
// its entries, using the dialect's list separator. An empty entry means
// "current directory" by platform convention and becomes the "./" path
// rather than the empty path.
func SplitSearchPath(r Rules, s string) []Path {
	segs := strings.Split(s, string(r.ListSeparator()))

	out := make([]Path, len(segs))
	for i, seg := range segs {
		if seg == "" {
			out[i] = dot()

			continue
		}
		out[i] = Parse(r, seg)
	}

	return out
}
