// Package pathenc converts raw path bytes to and from a text representation
// without losing information.
//
// Filesystem paths are byte sequences; text is a derived view. Decoding maps
// every byte sequence to text by escaping each byte that is not part of a
// valid UTF-8 encoding into the low surrogate band U+DC80..U+DCFF, one byte
// at a time. Valid UTF-8 never decodes to a surrogate, so the band is
// disjoint from all ordinary decoded output. Encoding reverses the mapping
// exactly, so Encode(text) returns the original bytes for any decoded input,
// whether or not escapes occurred. Neither direction can fail.
package pathenc
