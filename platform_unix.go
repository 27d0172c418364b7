//go:build !windows

package pathkit

import "strings"

// Separator is the path separator appended by directory normalization.
const Separator = '/'

// IsSeparator reports whether c is a path separator on this platform.
func IsSeparator(c byte) bool {
	return c == '/'
}

func isAbsolute(text string) bool {
	return strings.HasPrefix(text, "/")
}
