package purepath

type windowsRules struct{}

func (windowsRules) Name() string {
	return "windows"
}

func (windowsRules) Separator() byte {
	return '\\'
}

// IsSeparator accepts both separators on input; rendering always uses '\'.
func (windowsRules) IsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

func (windowsRules) ListSeparator() byte {
	return ';'
}

// SplitRoot tries the drive-letter root before the bare-separator root,
// longest prefix first. A drive root requires `<letter>:` followed by a
// separator or end of input; `C:foo` is drive-relative and parses rootless.
func (w windowsRules) SplitRoot(s string) (Root, string) {
	if len(s) >= 2 && s[1] == ':' && isDriveLetter(s[0]) {
		if len(s) == 2 || w.IsSeparator(s[2]) {
			return Root{Kind: RootDrive, Drive: upperDrive(s[0])}, s[2:]
		}
	}
	if len(s) > 0 && w.IsSeparator(s[0]) {
		return Root{Kind: RootBare}, s[1:]
	}

	return Root{}, s
}

func (windowsRules) FormatRoot(root Root) string {
	switch root.Kind {
	case RootNone:
		return ""
	case RootDrive:
		return string([]byte{root.Drive, ':', '\\'})
	default:
		return `\`
	}
}

// IsReserved reports characters Windows components may not contain: control
// characters, the separators, and the `<>:"|?*` set.
func (windowsRules) IsReserved(r rune) bool {
	if r < 0x20 {
		return true
	}
	switch r {
	case '\\', '/', '<', '>', ':', '"', '|', '?', '*':
		return true
	}

	return false
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func upperDrive(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
