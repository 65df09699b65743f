// Package testutils builds site checkouts for tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Fixture contents that satisfy every default check.
const (
	Component = `import React from 'react'

const Hero = () => {
  return <section className="hero">DeepOptimizer</section>
}

export default Hero
`

	Package = `{
  "name": "deepoptimizer-website",
  "scripts": {"dev": "vite", "build": "vite build", "preview": "vite preview"},
  "dependencies": {"react": "^18.2.0", "react-dom": "^18.2.0", "react-router-dom": "^6.20.0"}
}`

	Index = `<!doctype html>
<html lang="en">
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>
`

	Module = "export default {}\n"
)

// Layout lists the files a fixture site contains.
type Layout struct {
	Files      []string
	Components []string
}

// WriteSite writes layout under root on fs. package.json and index.html get
// the manifest and markup fixtures, components get Component and every
// other file gets Module.
func WriteSite(t *testing.T, fs afero.Fs, root string, layout Layout) {
	t.Helper()
	for _, file := range layout.Files {
		content := Module
		switch filepath.Base(file) {
		case "package.json":
			content = Package
		case "index.html":
			content = Index
		}
		WriteFile(t, fs, root, file, content)
	}
	for _, file := range layout.Components {
		WriteFile(t, fs, root, file, Component)
	}
}

// CreateTempSite writes layout into a fresh temporary directory on disk and
// returns its path.
func CreateTempSite(t *testing.T, layout Layout) string {
	t.Helper()
	root := t.TempDir()
	WriteSite(t, afero.NewOsFs(), root, layout)
	return root
}

// WriteFile writes content to the slash-separated rel under root, creating
// parent directories.
func WriteFile(t *testing.T, fs afero.Fs, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	return path
}

// RemoveFile deletes the slash-separated rel under root.
func RemoveFile(t *testing.T, fs afero.Fs, root, rel string) {
	t.Helper()
	require.NoError(t, fs.Remove(filepath.Join(root, filepath.FromSlash(rel))))
}

// WaitForFileChange waits for a file to be modified (useful for testing file watchers)
func WaitForFileChange(
	t *testing.T,
	filePath string,
	originalModTime time.Time,
	timeout time.Duration,
) {
	t.Helper()
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		info, err := os.Stat(filePath)
		if err == nil && info.ModTime().After(originalModTime) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("File %s was not modified within %v", filePath, timeout)
}
