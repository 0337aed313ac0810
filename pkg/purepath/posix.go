package purepath

type posixRules struct{}

func (posixRules) Name() string {
	return "posix"
}

func (posixRules) Separator() byte {
	return '/'
}

func (posixRules) IsSeparator(c byte) bool {
	return c == '/'
}

func (posixRules) ListSeparator() byte {
	return ':'
}

// SplitRoot recognizes a single leading slash as the absolute root. Repeated
// leading slashes collapse into it via empty-segment dropping in the parser.
func (posixRules) SplitRoot(s string) (Root, string) {
	if len(s) > 0 && s[0] == '/' {
		return Root{Kind: RootSlash}, s[1:]
	}

	return Root{}, s
}

func (posixRules) FormatRoot(root Root) string {
	if root.Kind == RootNone {
		return ""
	}

	return "/"
}

// IsReserved reports characters POSIX components may not contain: NUL and
// the separator itself.
func (posixRules) IsReserved(r rune) bool {
	return r == 0 || r == '/'
}
