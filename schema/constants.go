package schema

import "strings"

// EmptyTreeHash is the well-known hash of Git's empty tree, used as the
// diff base for root commits that have no parent.
const EmptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// UnknownLanguage keys files without an extension in language rollups.
const UnknownLanguage = "unknown"

// sourceExtensions is the fixed allow-list of extensions that qualify a
// path for hotspot ranking.
var sourceExtensions = map[string]bool{
	".rs": true, ".py": true, ".java": true, ".js": true, ".ts": true,
	".c": true, ".cpp": true, ".h": true, ".go": true, ".rb": true,
	".php": true, ".cs": true,
}

// vendoredDirs are dependency-cache directory names excluded from hotspot
// ranking regardless of extension.
var vendoredDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// IsSourceFile reports whether the path qualifies for hotspot ranking:
// a recognized source extension and no vendored directory segment.
func IsSourceFile(path string) bool {
	lower := strings.ToLower(path)
	dot := strings.LastIndex(lower, ".")
	if dot < 0 || !sourceExtensions[lower[dot:]] {
		return false
	}
	for _, seg := range strings.Split(path, "/") {
		if vendoredDirs[seg] {
			return false
		}
	}
	return true
}

// LanguageOf returns the lowercase extension of a path without the leading
// dot, or UnknownLanguage when the file has no extension.
func LanguageOf(path string) string {
	base := path
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	dot := strings.LastIndex(base, ".")
	if dot < 0 || dot == len(base)-1 {
		return UnknownLanguage
	}
	return strings.ToLower(base[dot+1:])
}

// ParentDir returns the owning directory of a path, with the repository
// root represented by the empty string for top-level files.
func ParentDir(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}
	return ""
}
