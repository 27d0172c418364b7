package pathkit

// IsAbsolute reports whether text denotes an absolute path under the host
// platform's rules. It never touches the filesystem.
func IsAbsolute(text string) bool {
	return isAbsolute(text)
}

// EnsureTrailingSeparator returns text with exactly one trailing Separator
// appended when it does not already end in one. Calling it again on the
// result returns the result unchanged.
func EnsureTrailingSeparator(text string) string {
	if len(text) > 0 && IsSeparator(text[len(text)-1]) {
		return text
	}
	return text + string(Separator)
}
