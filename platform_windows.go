//go:build windows

package pathkit

// Separator is the path separator appended by directory normalization.
const Separator = '\\'

// IsSeparator reports whether c is a path separator on this platform.
// Windows accepts forward slashes as well.
func IsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

// isAbsolute accepts drive paths ("C:\x", "C:/x") and UNC paths ("\\host\share").
func isAbsolute(text string) bool {
	if len(text) >= 3 && isDriveLetter(text[0]) && text[1] == ':' && IsSeparator(text[2]) {
		return true
	}
	return len(text) >= 3 && IsSeparator(text[0]) && IsSeparator(text[1]) && !IsSeparator(text[2])
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
