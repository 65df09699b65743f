package watcher

import (
	"path"
	"strings"
)

// DefaultExtensions are the site source extensions that trigger a rerun.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".json", ".html", ".css"}

// DefaultIgnoredDirs are never watched.
var DefaultIgnoredDirs = []string{"node_modules", ".git", "dist"}

// ExtensionFilter accepts paths whose extension is one of exts.
func ExtensionFilter(exts ...string) FileFilter {
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}
	return func(rel string) bool {
		return allowed[strings.ToLower(path.Ext(rel))]
	}
}

// DirFilter rejects paths that pass through a directory called name below
// the watch root.
func DirFilter(name string) FileFilter {
	return func(rel string) bool {
		for _, part := range strings.Split(rel, "/") {
			if part == name {
				return false
			}
		}
		return true
	}
}
