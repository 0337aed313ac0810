// Package purepath provides lexical parsing and manipulation of filesystem
// paths for the POSIX and Windows dialects.
//
// This package implements a structured path model together with the parsing,
// rendering, and algebra operations over it. All operations are purely
// lexical: nothing here touches a filesystem, resolves symlinks, or queries
// the environment. Parsing is total and never fails; validity is a separate
// reportable property. Trailing separators are significant and mark a path
// as denoting a directory:
//
//	purepath.Parse(purepath.Posix, "foo/bar/").IsDir() // true
//	purepath.Parse(purepath.Posix, "foo/bar").IsDir()  // false
package purepath
