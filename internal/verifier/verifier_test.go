package verifier

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepoptimizer/sitecheck/internal/logging"
	"github.com/deepoptimizer/sitecheck/internal/testutils"
)

const testRoot = "/site"

// writeSite lays out a complete site under root.
func writeSite(t *testing.T, fs afero.Fs, root string) {
	t.Helper()
	testutils.WriteSite(t, fs, root, testutils.Layout{
		Files:      DefaultRequiredFiles(),
		Components: DefaultRequiredComponents(),
	})
}

func TestVerifyCompleteSite(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSite(t, fs, testRoot)

	r := New(fs, DefaultCheckSet()).Verify(testRoot)

	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, 0, r.ExitCode())
	assert.True(t, r.Clean())
	assert.Equal(t, testRoot, r.Root)
}

func TestVerifyDocumentedScenario(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSite(t, fs, testRoot)
	require.NoError(t, fs.Remove(filepath.Join(testRoot, "src/components/Footer.jsx")))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testRoot, "index.html"),
		[]byte(`<html><body><div id="root"></div><script src="./main.js"></script></body></html>`), 0o644))

	r := New(fs, DefaultCheckSet()).Verify(testRoot)

	if diff := cmp.Diff([]string{"Missing component: src/components/Footer.jsx"}, r.Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Main script reference might be incorrect"}, r.Warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, r.ExitCode())
}

func TestVerifyMissingFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSite(t, fs, testRoot)
	for _, file := range []string{"vite.config.js", "src/index.css"} {
		require.NoError(t, fs.Remove(filepath.Join(testRoot, file)))
	}

	r := New(fs, DefaultCheckSet()).Verify(testRoot)

	assert.Equal(t, []string{
		"Missing required file: vite.config.js",
		"Missing required file: src/index.css",
	}, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestVerifyComponentMarkers(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSite(t, fs, testRoot)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testRoot, "src/components/About.jsx"),
		[]byte("const About = () => null\n"), 0o644))

	r := New(fs, DefaultCheckSet()).Verify(testRoot)

	assert.Empty(t, r.Errors, "marker checks never produce errors")
	assert.Equal(t, []string{
		"src/components/About.jsx might be missing default export",
		"src/components/About.jsx might be missing return statement",
	}, r.Warnings)
}

func TestVerifyTopLevelFilesSkipMarkers(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSite(t, fs, testRoot)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testRoot, "src/App.jsx"), []byte("nothing here"), 0o644))

	r := New(fs, DefaultCheckSet()).Verify(testRoot)

	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestVerifyManifest(t *testing.T) {
	tests := []struct {
		name         string
		manifest     string
		wantErrors   []string
		wantWarnings int
	}{
		{
			name:     "missing script and dependency",
			manifest: `{"scripts": {"dev": "vite", "build": "vite build"}, "dependencies": {"react": "18", "react-dom": "18"}}`,
			wantErrors: []string{
				"Missing script: preview",
				"Missing dependency: react-router-dom",
			},
		},
		{
			name:       "unparseable",
			manifest:   `{"scripts": {"dev": "vite",}`,
			wantErrors: []string{"Failed to parse package.json"},
		},
		{
			name:       "null document",
			manifest:   `null`,
			wantErrors: []string{"Failed to parse package.json"},
		},
		{
			name:     "scripts with wrong type",
			manifest: `{"scripts": "vite", "dependencies": {"react": "18", "react-dom": "18", "react-router-dom": "6"}}`,
			wantErrors: []string{
				"Missing script: dev",
				"Missing script: build",
				"Missing script: preview",
			},
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeSite(t, fs, testRoot)
			require.NoError(t, afero.WriteFile(fs, filepath.Join(testRoot, "package.json"), []byte(tt.manifest), 0o644))

			r := New(fs, DefaultCheckSet()).Verify(testRoot)

			assert.Equal(t, tt.wantErrors, r.Errors)
			assert.Len(t, r.Warnings, tt.wantWarnings)
		})
	}
}

func TestVerifyMissingManifestAndMarkup(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSite(t, fs, testRoot)
	require.NoError(t, fs.Remove(filepath.Join(testRoot, "package.json")))
	require.NoError(t, fs.Remove(filepath.Join(testRoot, "index.html")))

	r := New(fs, DefaultCheckSet()).Verify(testRoot)

	assert.Equal(t, []string{
		"Missing required file: index.html",
		"Missing required file: package.json",
		"Failed to parse package.json",
		"Failed to read index.html",
	}, r.Errors)
}

func TestVerifyMarkupMarkers(t *testing.T) {
	tests := []struct {
		name         string
		markup       string
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name:         "no root element",
			markup:       `<body><main></main><script src="/src/main.jsx"></script></body>`,
			wantErrors:   []string{"Missing root element in index.html"},
			wantWarnings: []string{},
		},
		{
			name:         "no script reference",
			markup:       `<body><div id="root"></div></body>`,
			wantErrors:   []string{},
			wantWarnings: []string{"Main script reference might be incorrect"},
		},
		{
			name:         "marker spacing matters",
			markup:       `<div id='root'></div> src="/src/main.jsx"`,
			wantErrors:   []string{"Missing root element in index.html"},
			wantWarnings: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeSite(t, fs, testRoot)
			require.NoError(t, afero.WriteFile(fs, filepath.Join(testRoot, "index.html"), []byte(tt.markup), 0o644))

			r := New(fs, DefaultCheckSet()).Verify(testRoot)

			assert.Equal(t, tt.wantErrors, r.Errors)
			assert.Equal(t, tt.wantWarnings, r.Warnings)
		})
	}
}

func TestVerifyInjectedCheckSet(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/app/public/index.html", []byte(`<div id="app"></div>`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/app/package.json", []byte(`{"scripts": {"start": "serve"}}`), 0o644))

	checks := CheckSet{
		RequiredFiles:   []string{"public/index.html", "README.md"},
		RequiredScripts: []string{"start"},
		Manifest:        "package.json",
		Markup:          "public/index.html",
		RootMarker:      `<div id="app">`,
		ScriptMarker:    `<div`,
	}

	r := New(fs, checks).Verify("/app")

	assert.Equal(t, []string{"Missing required file: README.md"}, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestVerifyLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelDebug,
		Format: "text",
		Output: &buf,
	})

	fs := afero.NewMemMapFs()
	v := New(fs, DefaultCheckSet(), WithLogger(logger))
	r := v.Verify(testRoot)

	require.True(t, r.HasErrors())
	assert.Contains(t, buf.String(), "component=verifier")
	assert.Contains(t, buf.String(), "Required file missing")
	assert.Equal(t, DefaultCheckSet(), v.Checks())
}

func TestVerifyQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	newLogger := func(level logging.LogLevel) logging.Logger {
		return logging.NewLogger(&logging.LoggerConfig{Level: level, Format: "text", Output: &buf})
	}

	fs := afero.NewMemMapFs()
	writeSite(t, fs, testRoot)

	r := New(fs, DefaultCheckSet(), WithLogger(newLogger(logging.LevelInfo))).Verify(testRoot)
	require.True(t, r.Clean())
	assert.Empty(t, buf.String(), "a clean run writes no log lines at info")

	New(fs, DefaultCheckSet(), WithLogger(newLogger(logging.LevelDebug))).Verify(testRoot)
	assert.Contains(t, buf.String(), "Verifying site")
	assert.Contains(t, buf.String(), "Manifest parsed")
	assert.Contains(t, buf.String(), "[build dev preview]")
	assert.Contains(t, buf.String(), "[react react-dom react-router-dom]")
}
