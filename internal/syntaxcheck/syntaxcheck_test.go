package syntaxcheck

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepoptimizer/sitecheck/internal/report"
)

const goodComponent = `import React from 'react'

const Footer = () => {
  return (
    <footer className="footer">
      <label htmlFor="email">Email</label>
    </footer>
  )
}

export default Footer
`

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "clean component", content: goodComponent},
		{name: "named export", content: "const a = () => {}\nexport { a }\n"},
		{
			name:    "unbalanced braces",
			content: "export default function App() { return {",
			want:    []string{"Unbalanced braces: 2 open, 0 close"},
		},
		{
			name:    "unbalanced parentheses",
			content: "export default (a",
			want:    []string{"Unbalanced parentheses: 1 open, 0 close"},
		},
		{
			name:    "class attribute",
			content: `export default () => <div class="x"></div>`,
			want:    []string{`Found "class=" instead of "className="`},
		},
		{
			name:    "class attribute next to className",
			content: `export default () => <div class="x" className="y"></div>`,
		},
		{
			name:    "for attribute",
			content: `export default () => <label for="x"></label>`,
			want:    []string{`Found "for=" instead of "htmlFor="`},
		},
		{
			name:    "no export",
			content: "const a = 1\n",
			want:    []string{"No export found"},
		},
		{
			name:    "rules report in order",
			content: `<div class="a" for="b">{(`,
			want: []string{
				"Unbalanced braces: 1 open, 0 close",
				"Unbalanced parentheses: 1 open, 0 close",
				`Found "class=" instead of "className="`,
				`Found "for=" instead of "htmlFor="`,
				"No export found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckSource(tt.content))
		})
	}
}

func TestCheckFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.jsx", []byte("const a = 1"), 0o644))

	issues, err := CheckFile(fs, "/a.jsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"No export found"}, issues)

	_, err = CheckFile(fs, "/missing.jsx")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("/site", name), []byte(content), 0o644))
}

func TestRunCleanTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "src/App.jsx", goodComponent)
	writeFile(t, fs, "src/main.jsx", goodComponent)
	writeFile(t, fs, "src/components/Hero.jsx", goodComponent)
	writeFile(t, fs, "src/components/styles.css", "body {")

	r := New(fs, DefaultOptions()).Run("/site")

	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, 0, r.ExitCode())

	var items []string
	for _, l := range r.LinesFor(report.SectionSources) {
		items = append(items, l.Item)
	}
	assert.Equal(t, []string{"src/App.jsx", "src/main.jsx", "src/components/Hero.jsx"}, items)
	assert.Empty(t, r.LinesFor(report.SectionTests), "missing test directory is skipped")
}

func TestRunFindings(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "src/App.jsx", goodComponent)
	writeFile(t, fs, "src/components/Nav.jsx", `const Nav = () => <a class="x">`)
	writeFile(t, fs, "src/components/About.jsx", goodComponent)
	writeFile(t, fs, "src/__tests__/App.test.jsx", "test('renders', () => {})\n")
	writeFile(t, fs, "src/__tests__/notes.md", "ignored")

	r := New(fs, DefaultOptions()).Run("/site")

	assert.Equal(t, []string{"Failed to read src/main.jsx"}, r.Errors)
	assert.Equal(t, []string{
		`src/components/Nav.jsx: Found "class=" instead of "className="`,
		"src/components/Nav.jsx: No export found",
		"src/__tests__/App.test.jsx: No export found",
	}, r.Warnings)
	assert.Equal(t, 1, r.ExitCode())

	tests := r.LinesFor(report.SectionTests)
	require.Len(t, tests, 1)
	assert.Equal(t, "src/__tests__/App.test.jsx", tests[0].Item)
	assert.Equal(t, report.SeverityWarning, tests[0].Severity)
}

func TestRunMissingComponentDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "src/App.jsx", goodComponent)
	writeFile(t, fs, "src/main.jsx", goodComponent)

	r := New(fs, DefaultOptions()).Run("/site")

	assert.Equal(t, []string{"Failed to read src/components"}, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestRunCustomOptions(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "app/index.jsx", goodComponent)

	r := New(fs, Options{Entries: []string{"app/index.jsx"}}).Run("/site")

	assert.True(t, r.Clean())
	assert.Len(t, r.Lines, 1)
}
