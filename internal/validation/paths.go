// Package validation checks user-supplied paths and names before they reach
// the filesystem.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

var dangerousChars = []string{";", "&", "|", "$", "`", "<", ">", "\x00"}

// ValidateRelativePath validates a path that is resolved against a project
// root. It must be non-empty, relative, stay inside the root and carry no
// shell metacharacters.
func ValidateRelativePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return fmt.Errorf("absolute path not allowed: %s", path)
	}

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return fmt.Errorf("path traversal detected: %s", path)
		}
	}

	for _, char := range dangerousChars {
		if strings.Contains(path, char) {
			return fmt.Errorf("path contains dangerous character: %q", char)
		}
	}

	return nil
}

// ValidatePath validates a root or output directory given on the command
// line. Absolute paths are allowed.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	for _, char := range dangerousChars {
		if strings.Contains(path, char) {
			return fmt.Errorf("path contains dangerous character: %q", char)
		}
	}

	return nil
}

// WithinRoot resolves path and returns its cleaned absolute form when it is
// root itself or lies below it.
func WithinRoot(root, path string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("getting absolute root: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("getting absolute path: %w", err)
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("path %s is outside %s: %w", path, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside %s", path, root)
	}

	return absPath, nil
}

// ValidateFileExtension validates an extension such as ".jsx".
func ValidateFileExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return fmt.Errorf("extension must start with a dot: %q", ext)
	}
	if strings.ContainsAny(ext[1:], `./\`) {
		return fmt.Errorf("extension contains a separator: %q", ext)
	}
	return nil
}
