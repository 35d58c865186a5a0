package rename

import "strings"

// Extension returns the extension of a file name with its leading dot, or
// "" when there is none. A name whose only dot is the leading one (such as
// ".bashrc") has no extension; a trailing dot yields ".".
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i:]
}

// SplitName splits a file name into stem and extension. Every trailing copy
// of the extension is trimmed from the stem, so "x.a.a" yields ("x", ".a").
func SplitName(name string) (stem, ext string) {
	ext = Extension(name)
	stem = name
	if ext == "" {
		return stem, ext
	}
	for strings.HasSuffix(stem, ext) {
		stem = strings.TrimSuffix(stem, ext)
	}
	return stem, ext
}
