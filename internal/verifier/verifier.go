// Package verifier checks that a site checkout is ready to build.
//
// A run is sequential and exhaustive: every check executes, problems are
// accumulated into a report.Report, and nothing stops early. Checks are
// plain existence tests and literal substring tests; the verifier never
// parses JSX or HTML.
package verifier

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/deepoptimizer/sitecheck/internal/logging"
	"github.com/deepoptimizer/sitecheck/internal/manifest"
	"github.com/deepoptimizer/sitecheck/internal/report"
)

// Title is the banner of a verification report.
const Title = "Checking site build..."

// Verifier runs a CheckSet against a project root.
type Verifier struct {
	fs     afero.Fs
	checks CheckSet
	logger logging.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger used for per-check debug output.
func WithLogger(logger logging.Logger) Option {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// New creates a verifier reading from fs.
func New(fs afero.Fs, checks CheckSet, opts ...Option) *Verifier {
	v := &Verifier{
		fs:     fs,
		checks: checks,
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.WithComponent("verifier")
	return v
}

// Checks returns the check set the verifier was built with.
func (v *Verifier) Checks() CheckSet {
	return v.checks
}

// Verify runs every check against root and returns the accumulated report.
func (v *Verifier) Verify(root string) *report.Report {
	ctx := context.Background()
	r := report.New(Title, root)
	r.SuccessHint = []string{
		"The website should build successfully.",
		"",
		"To build the website:",
		"  1. npm install",
		"  2. npm run build",
	}
	r.FailureHint = "Please fix these issues before building."

	v.logger.Debug(ctx, "Verifying site", "root", root)

	v.checkFiles(ctx, root, r)
	v.checkComponents(ctx, root, r)
	v.checkManifest(ctx, root, r)
	v.checkMarkup(ctx, root, r)

	v.logger.Debug(ctx, "Verification finished",
		"errors", len(r.Errors),
		"warnings", len(r.Warnings),
	)
	return r
}

func (v *Verifier) path(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

func (v *Verifier) exists(root, rel string) bool {
	_, err := v.fs.Stat(v.path(root, rel))
	return err == nil
}

func (v *Verifier) checkFiles(ctx context.Context, root string, r *report.Report) {
	for _, file := range v.checks.RequiredFiles {
		if v.exists(root, file) {
			r.Pass(report.SectionFiles, file)
			continue
		}
		v.logger.Debug(ctx, "Required file missing", "path", file)
		r.Error(report.SectionFiles, file, "Missing required file: "+file)
	}
}

func (v *Verifier) checkComponents(ctx context.Context, root string, r *report.Report) {
	for _, file := range v.checks.RequiredComponents {
		if !v.exists(root, file) {
			v.logger.Debug(ctx, "Component missing", "path", file)
			r.Error(report.SectionComponents, file, "Missing component: "+file)
			continue
		}
		r.Pass(report.SectionComponents, file)

		content, err := afero.ReadFile(v.fs, v.path(root, file))
		if err != nil {
			v.logger.Warn(ctx, err, "Component unreadable", "path", file)
			r.Warn(report.SectionComponents, "", fmt.Sprintf("%s could not be read: %v", file, err))
			continue
		}
		for _, marker := range v.checks.ComponentMarkers {
			if !strings.Contains(string(content), marker.Text) {
				r.Warn(report.SectionComponents, "", fmt.Sprintf("%s might be missing %s", file, marker.Describes))
			}
		}
	}
}

func (v *Verifier) checkManifest(ctx context.Context, root string, r *report.Report) {
	name := v.checks.Manifest

	data, err := afero.ReadFile(v.fs, v.path(root, name))
	var m *manifest.Manifest
	if err == nil {
		m, err = manifest.Parse(data)
	}
	if err != nil {
		v.logger.Debug(ctx, "Manifest unusable", "path", name, "error", err.Error())
		r.Error(report.SectionManifest, name, "Failed to parse "+name)
		return
	}
	v.logger.Debug(ctx, "Manifest parsed",
		"path", name,
		"scripts", m.Scripts(),
		"dependencies", m.Dependencies(),
	)

	for _, script := range v.checks.RequiredScripts {
		item := "Script: " + script
		if m.HasScript(script) {
			r.Pass(report.SectionManifest, item)
		} else {
			r.Error(report.SectionManifest, item, "Missing script: "+script)
		}
	}

	for _, dep := range v.checks.RequiredDependencies {
		item := "Dependency: " + dep
		if m.HasDependency(dep) {
			r.Pass(report.SectionManifest, item)
		} else {
			r.Error(report.SectionManifest, item, "Missing dependency: "+dep)
		}
	}

	for _, problem := range m.Problems() {
		r.Warn(report.SectionManifest, "", fmt.Sprintf("%s %s", name, problem))
	}
}

func (v *Verifier) checkMarkup(ctx context.Context, root string, r *report.Report) {
	name := v.checks.Markup

	data, err := afero.ReadFile(v.fs, v.path(root, name))
	if err != nil {
		v.logger.Debug(ctx, "Markup unreadable", "path", name, "error", err.Error())
		r.Error(report.SectionMarkup, name, "Failed to read "+name)
		return
	}
	content := string(data)

	if strings.Contains(content, v.checks.RootMarker) {
		r.Pass(report.SectionMarkup, "Root element found")
	} else {
		r.Error(report.SectionMarkup, "Root element", "Missing root element in "+name)
	}

	if strings.Contains(content, v.checks.ScriptMarker) {
		r.Pass(report.SectionMarkup, "Main script reference found")
	} else {
		r.Warn(report.SectionMarkup, "Main script reference", "Main script reference might be incorrect")
	}
}
