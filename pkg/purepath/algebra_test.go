package purepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/pathkit/pkg/purepath"
)

func posix(t *testing.T, s string) purepath.Path {
	t.Helper()

	return purepath.Parse(purepath.Posix, s)
}

func posixFormat(p purepath.Path) string {
	return p.Format(purepath.Posix)
}

func TestPath_Root(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"absolute":      {input: "/foo", want: "/"},
		"relative":      {input: "foo", want: ""},
		"root itself":   {input: "/", want: "/"},
		"empty":         {input: "", want: ""},
		"relative dir":  {input: "a/b/", want: ""},
		"absolute deep": {input: "/a/b/c", want: "/"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, posixFormat(posix(t, tc.input).Root()))
		})
	}
}

func TestPath_Dir(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"absolute file":   {input: "/foo/bar", want: "/foo/"},
		"relative file":   {input: "foo", want: "./"},
		"already dir":     {input: "a/b/", want: "a/b/"},
		"empty":           {input: "", want: "./"},
		"root only":       {input: "/", want: "/"},
		"file under root": {input: "/foo", want: "/"},
		"dot":             {input: ".", want: "./"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := posix(t, tc.input).Dir()
			assert.Equal(t, tc.want, posixFormat(got))
			assert.True(t, got.IsDir())
		})
	}
}

func TestPath_Parent(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"dir with content":  {input: "/foo/bar/", want: "/foo/"},
		"dotdot":            {input: "..", want: "./"},
		"dot":               {input: ".", want: "./"},
		"empty":             {input: "", want: "./"},
		"file":              {input: "/foo/bar", want: "/foo/"},
		"root is its own":   {input: "/", want: "/"},
		"relative file":     {input: "foo", want: "./"},
		"relative last dir": {input: "foo/", want: "./"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, posixFormat(posix(t, tc.input).Parent()))
		})
	}
}

func TestPath_FilenameBase(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		filename string
		base     string
	}{
		"with extension": {input: "/foo/bar.txt", filename: "bar.txt", base: "bar"},
		"no extension":   {input: "/foo/bar", filename: "bar", base: "bar"},
		"root only":      {input: "/", filename: "", base: ""},
		"empty":          {input: "", filename: "", base: ""},
		"dot":            {input: ".", filename: ".", base: ""},
		"dotdot":         {input: "..", filename: "..", base: ""},
		"hidden file":    {input: ".bashrc", filename: ".bashrc", base: ".bashrc"},
		"trailing dot":   {input: "foo.", filename: "foo.", base: "foo"},
		"many dots":      {input: "a.b.c", filename: "a.b.c", base: "a.b"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := posix(t, tc.input)
			assert.Equal(t, tc.filename, p.Filename())
			assert.Equal(t, tc.base, p.Base())
		})
	}
}

func TestPath_Join(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a, b string
		want string
	}{
		"absolute b wins":       {a: "/a/", b: "/b", want: "/b"},
		"relative append":       {a: "a/", b: "b.txt", want: "a/b.txt"},
		"file base still joins": {a: "a", b: "b", want: "a/b"},
		"empty b makes dir":     {a: "a/b", b: "", want: "a/b/"},
		"empty a":               {a: "", b: "x", want: "x"},
		"both empty":            {a: "", b: "", want: "./"},
		"dir flag from b":       {a: "/x", b: "y/", want: "/x/y/"},
		"dotdot kept literal":   {a: "a/b", b: "../c", want: "a/b/../c"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := posix(t, tc.a).Join(posix(t, tc.b))
			assert.Equal(t, tc.want, posixFormat(got))
		})
	}
}

func TestPath_Join_WindowsRoots(t *testing.T) {
	t.Parallel()

	a := purepath.Parse(purepath.Windows, `C:\base`)
	b := purepath.Parse(purepath.Windows, `D:\other`)
	assert.True(t, a.Join(b).Equal(b))

	rel := purepath.Parse(purepath.Windows, `sub\f.txt`)
	assert.Equal(t, `C:\base\sub\f.txt`, a.Join(rel).Format(purepath.Windows))
}

func TestCommonPrefix(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		inputs []string
		want   string
	}{
		"shared parent":      {inputs: []string{"/a/b/x", "/a/b/y"}, want: "/a/b/"},
		"same path twice":    {inputs: []string{"/a/b", "/a/b"}, want: "/a/b"},
		"no shared parts":    {inputs: []string{"/a", "/b"}, want: "/"},
		"differing roots":    {inputs: []string{"/a/b", "a/b"}, want: ""},
		"relative shared":    {inputs: []string{"a/b/c", "a/b/d"}, want: "a/b/"},
		"relative disjoint":  {inputs: []string{"a/x", "b/x"}, want: ""},
		"prefix of another":  {inputs: []string{"/a", "/a/b"}, want: "/a"},
		"dir prefix of file": {inputs: []string{"/a/", "/a/b"}, want: "/a/"},
		"single input":       {inputs: []string{"/a/b/"}, want: "/a/b/"},
		"component boundary": {inputs: []string{"/a/bc", "/a/bd"}, want: "/a/"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			paths := make([]purepath.Path, len(tc.inputs))
			for i, s := range tc.inputs {
				paths[i] = posix(t, s)
			}

			assert.Equal(t, tc.want, posixFormat(purepath.CommonPrefix(paths...)))
		})
	}

	t.Run("no inputs", func(t *testing.T) {
		t.Parallel()

		assert.True(t, purepath.CommonPrefix().IsEmpty())
	})
}

func TestPath_SplitExt(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		base  string
		ext   string
		ok    bool
	}{
		"dots in parent dirs": {input: "foo.a/bar.b.c", base: "foo.a/bar.b", ext: "c", ok: true},
		"simple":              {input: "x.txt", base: "x", ext: "txt", ok: true},
		"no extension":        {input: "x", base: "x", ok: false},
		"trailing dot":        {input: "x.", base: "x", ext: "", ok: true},
		"hidden file":         {input: ".bashrc", base: ".bashrc", ok: false},
		"directory":           {input: "x.txt/", base: "x.txt/", ok: false},
		"dot":                 {input: ".", base: "./", ok: false},
		"dotdot":              {input: "..", base: "../", ok: false},
		"root":                {input: "/", base: "/", ok: false},
		"empty":               {input: "", base: "", ok: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			base, ext, ok := posix(t, tc.input).SplitExt()
			assert.Equal(t, tc.base, posixFormat(base))
			assert.Equal(t, tc.ext, ext)
			assert.Equal(t, tc.ok, ok)

			gotExt, gotOK := posix(t, tc.input).Ext()
			assert.Equal(t, tc.ext, gotExt)
			assert.Equal(t, tc.ok, gotOK)
		})
	}
}

func TestPath_Immutability(t *testing.T) {
	t.Parallel()

	p := posix(t, "/a/b/c")

	parts := p.Components()
	parts[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, p.Components())

	// Derived values do not alias the original.
	q := p.Join(posix(t, "d"))
	assert.Equal(t, "/a/b/c", posixFormat(p))
	assert.Equal(t, "/a/b/c/d", posixFormat(q))
}
