// Package fallback writes the single-page-app 404 page into a build output
// directory. Static hosts serve 404.html for unknown paths, so a copy of
// index.html lets the client-side router take over.
package fallback

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/deepoptimizer/sitecheck/internal/errors"
)

// Error codes returned by Create.
const (
	ErrCodeIndexRead     = "FALLBACK_INDEX_READ"
	ErrCodeNotFoundWrite = "FALLBACK_WRITE"
)

// Options names the source and destination pages inside the dist directory.
type Options struct {
	Index    string `mapstructure:"index" json:"index" yaml:"index"`
	NotFound string `mapstructure:"not_found" json:"not_found" yaml:"not_found"`
}

// DefaultOptions copies index.html to 404.html.
func DefaultOptions() Options {
	return Options{Index: "index.html", NotFound: "404.html"}
}

// Create copies <dist>/<Index> to <dist>/<NotFound> byte for byte and
// returns the path written. An empty name takes its default.
func Create(fs afero.Fs, dist string, opts Options) (string, error) {
	def := DefaultOptions()
	if opts.Index == "" {
		opts.Index = def.Index
	}
	if opts.NotFound == "" {
		opts.NotFound = def.NotFound
	}
	src := filepath.Join(dist, opts.Index)
	dst := filepath.Join(dist, opts.NotFound)

	content, err := afero.ReadFile(fs, src)
	if err != nil {
		return "", errors.WrapIO(err, ErrCodeIndexRead, "failed to read built index", src)
	}

	mode := os.FileMode(0o644)
	if info, statErr := fs.Stat(src); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err := afero.WriteFile(fs, dst, content, mode); err != nil {
		return "", errors.WrapIO(err, ErrCodeNotFoundWrite, "failed to write fallback page", dst)
	}
	return dst, nil
}
