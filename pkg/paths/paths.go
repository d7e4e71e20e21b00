package paths

import (
	"os"
	"path/filepath"
)

// Normalize turns a possibly-relative path into an absolute one, using the
// process working directory as the base. An empty input, or a failure to read
// the working directory, yields "" so that callers can treat "cannot resolve"
// as a value rather than an error.
//
// Paths that are already absolute are returned unchanged. A Windows
// drive-letter prefix (e.g. "C:\install") is recognized on every platform:
// station install paths are routinely written down in Windows form and must
// pass through untouched.
func Normalize(path string) string {
	if path == "" {
		return ""
	}

	if filepath.IsAbs(path) || hasDrivePrefix(path) {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	return cwd + string(os.PathSeparator) + path
}

// hasDrivePrefix reports whether path starts with a drive letter followed by
// a separator, e.g. "C:\" or "C:/". Single "C:" (relative to the drive's
// current directory) does not count.
func hasDrivePrefix(path string) bool {
	if len(path) <= 3 {
		return false
	}
	if path[1] != ':' {
		return false
	}
	c := path[0]
	if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return false
	}
	return path[2] == '\\' || path[2] == '/'
}
