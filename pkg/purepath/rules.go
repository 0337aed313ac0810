package purepath

// Rules describes one path dialect: its separator grammar, root syntax,
// reserved characters, and search-path delimiter. Implementations are
// immutable and safe for unsynchronized concurrent use.
//
// Exactly two instances exist, [Posix] and [Windows]. Dialect dispatch is by
// value: every operation that converts between text and the structured model
// takes a Rules argument explicitly.
type Rules interface {
	// Name returns the dialect name, "posix" or "windows".
	Name() string

	// Separator returns the canonical separator used when rendering.
	Separator() byte

	// IsSeparator reports whether c acts as a separator on input. Windows
	// accepts '/' in addition to '\'.
	IsSeparator(c byte) bool

	// ListSeparator returns the delimiter between search-path entries.
	ListSeparator() byte

	// SplitRoot detects and strips the longest root prefix of s, returning
	// the root (normalized, e.g. an uppercased drive letter) and the rest of
	// the input. Detection never fails; inputs without a recognizable root
	// yield a RootNone root and s unchanged.
	SplitRoot(s string) (Root, string)

	// FormatRoot renders a root in this dialect's spelling. Roots belonging
	// to the other dialect degrade to this dialect's plain separator root.
	FormatRoot(root Root) string

	// IsReserved reports whether r may not appear in a valid component of
	// this dialect. Parsing is permissive and ignores this set; only the
	// validity predicate consults it.
	IsReserved(r rune) bool
}

// Posix is the Rules instance for slash-separated POSIX paths.
var Posix Rules = posixRules{}

// Windows is the Rules instance for backslash-separated Windows paths with
// drive-letter roots.
var Windows Rules = windowsRules{}
