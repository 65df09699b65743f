// Package syntaxcheck runs cheap text heuristics over the site's JSX
// sources. It counts delimiters and looks for a few common HTML-isms; it
// does not parse JavaScript, so every finding is a warning.
package syntaxcheck

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/deepoptimizer/sitecheck/internal/logging"
	"github.com/deepoptimizer/sitecheck/internal/report"
)

// Title is the banner of a syntax report.
const Title = "Checking JSX syntax..."

// Options selects which files are checked. Paths are slash-separated and
// relative to the project root.
type Options struct {
	Entries      []string `mapstructure:"entries" json:"entries" yaml:"entries"`
	ComponentDir string   `mapstructure:"component_dir" json:"component_dir" yaml:"component_dir"`
	TestDir      string   `mapstructure:"test_dir" json:"test_dir" yaml:"test_dir"`
}

// DefaultOptions returns the layout of the landing-page site.
func DefaultOptions() Options {
	return Options{
		Entries:      []string{"src/App.jsx", "src/main.jsx"},
		ComponentDir: "src/components",
		TestDir:      "src/__tests__",
	}
}

// Checker runs the heuristics over a project tree.
type Checker struct {
	fs     afero.Fs
	opts   Options
	logger logging.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the checker's logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a checker reading from fs.
func New(fs afero.Fs, opts Options, options ...Option) *Checker {
	c := &Checker{
		fs:     fs,
		opts:   opts,
		logger: logging.NewNopLogger(),
	}
	for _, o := range options {
		o(c)
	}
	c.logger = c.logger.WithComponent("syntaxcheck")
	return c
}

// Run checks every target under root.
func (c *Checker) Run(root string) *report.Report {
	ctx := context.Background()
	r := report.New(Title, root)
	r.SuccessHint = []string{"No syntax errors found!"}
	r.FailureHint = `Note: These are basic checks. Run "npm run build" for complete validation.`

	for _, rel := range c.sources(ctx, root, r) {
		c.checkTarget(ctx, root, rel, report.SectionSources, r)
	}

	if c.opts.TestDir != "" {
		if tests, ok := c.listDir(root, c.opts.TestDir, ".js", ".jsx"); ok {
			for _, rel := range tests {
				c.checkTarget(ctx, root, rel, report.SectionTests, r)
			}
		}
	}

	c.logger.Info(ctx, "Syntax check finished",
		"errors", len(r.Errors),
		"warnings", len(r.Warnings),
	)
	return r
}

func (c *Checker) sources(ctx context.Context, root string, r *report.Report) []string {
	targets := append([]string(nil), c.opts.Entries...)
	if c.opts.ComponentDir == "" {
		return targets
	}
	components, ok := c.listDir(root, c.opts.ComponentDir, ".jsx")
	if !ok {
		c.logger.Debug(ctx, "Component directory unreadable", "path", c.opts.ComponentDir)
		r.Error(report.SectionSources, c.opts.ComponentDir, "Failed to read "+c.opts.ComponentDir)
		return targets
	}
	return append(targets, components...)
}

// listDir returns the sorted files in dir with one of exts. ok is false
// when the directory cannot be read.
func (c *Checker) listDir(root, dir string, exts ...string) ([]string, bool) {
	infos, err := afero.ReadDir(c.fs, filepath.Join(root, filepath.FromSlash(dir)))
	if err != nil {
		return nil, false
	}
	var out []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		for _, ext := range exts {
			if strings.HasSuffix(info.Name(), ext) {
				out = append(out, path.Join(dir, info.Name()))
				break
			}
		}
	}
	sort.Strings(out)
	return out, true
}

func (c *Checker) checkTarget(ctx context.Context, root, rel string, section report.Section, r *report.Report) {
	issues, err := CheckFile(c.fs, filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		c.logger.Debug(ctx, "Source unreadable", "path", rel, "error", err.Error())
		r.Error(section, rel, "Failed to read "+rel)
		return
	}

	if len(issues) == 0 {
		r.Pass(section, rel)
		return
	}
	for i, issue := range issues {
		item := ""
		if i == 0 {
			item = rel
		}
		r.Warn(section, item, fmt.Sprintf("%s: %s", rel, issue))
	}
}

// CheckFile runs the heuristics over a single file on fs.
func CheckFile(fs afero.Fs, name string) ([]string, error) {
	data, err := afero.ReadFile(fs, name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source %s does not exist: %w", name, err)
		}
		return nil, fmt.Errorf("reading source %s: %w", name, err)
	}
	return CheckSource(string(data)), nil
}

// CheckSource returns the issues found in content, in rule order.
func CheckSource(content string) []string {
	var issues []string

	if open, closed := strings.Count(content, "{"), strings.Count(content, "}"); open != closed {
		issues = append(issues, fmt.Sprintf("Unbalanced braces: %d open, %d close", open, closed))
	}
	if open, closed := strings.Count(content, "("), strings.Count(content, ")"); open != closed {
		issues = append(issues, fmt.Sprintf("Unbalanced parentheses: %d open, %d close", open, closed))
	}
	if strings.Contains(content, "class=") && !strings.Contains(content, "className=") {
		issues = append(issues, `Found "class=" instead of "className="`)
	}
	if strings.Contains(content, "for=") && !strings.Contains(content, "htmlFor=") {
		issues = append(issues, `Found "for=" instead of "htmlFor="`)
	}
	if !strings.Contains(content, "export default") && !strings.Contains(content, "export {") {
		issues = append(issues, "No export found")
	}

	return issues
}
