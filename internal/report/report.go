// Package report accumulates the outcome of one sitecheck run.
//
// A Report holds two contract lists, Errors and Warnings, plus an ordered
// list of check lines used only for display. The exit status of a run is
// derived from Errors alone.
package report

import (
	"time"
)

// Severity represents how a recorded problem affects the run.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Section groups check lines under a heading.
type Section struct {
	Key   string `json:"key" yaml:"key"`
	Icon  string `json:"icon" yaml:"icon"`
	Title string `json:"title" yaml:"title"`
}

// Sections used by the build verifier and the syntax checker.
var (
	SectionFiles      = Section{Key: "files", Icon: "📁", Title: "required files"}
	SectionComponents = Section{Key: "components", Icon: "🧩", Title: "components"}
	SectionManifest   = Section{Key: "manifest", Icon: "📦", Title: "manifest"}
	SectionMarkup     = Section{Key: "markup", Icon: "📄", Title: "markup"}
	SectionSources    = Section{Key: "sources", Icon: "🔍", Title: "sources"}
	SectionTests      = Section{Key: "tests", Icon: "🧪", Title: "test files"}
)

// Line is one displayed check result.
type Line struct {
	Section  Section  `json:"section" yaml:"section"`
	Item     string   `json:"item" yaml:"item"`
	Severity Severity `json:"-" yaml:"-"`
	Status   string   `json:"status" yaml:"status"`
	Detail   string   `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report is the accumulated result of one run.
type Report struct {
	Title     string    `json:"title" yaml:"title"`
	Root      string    `json:"root" yaml:"root"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Lines     []Line    `json:"checks" yaml:"checks"`
	Errors    []string  `json:"errors" yaml:"errors"`
	Warnings  []string  `json:"warnings" yaml:"warnings"`

	// SuccessHint and FailureHint close the text rendering.
	SuccessHint []string `json:"-" yaml:"-"`
	FailureHint string   `json:"-" yaml:"-"`
}

// Summary provides an overview of a report
type Summary struct {
	Checks   int `json:"checks" yaml:"checks"`
	Passed   int `json:"passed" yaml:"passed"`
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// New creates an empty report for root.
func New(title, root string) *Report {
	return &Report{
		Title:     title,
		Root:      root,
		Timestamp: time.Now(),
		Lines:     make([]Line, 0),
		Errors:    make([]string, 0),
		Warnings:  make([]string, 0),
	}
}

// Pass records a passed check line.
func (r *Report) Pass(section Section, item string) {
	r.addLine(section, item, SeverityOK, "")
}

// Error records an error. When item is non-empty a failed check line is
// displayed under section as well.
func (r *Report) Error(section Section, item, message string) {
	if item != "" {
		r.addLine(section, item, SeverityError, message)
	}
	r.Errors = append(r.Errors, message)
}

// Warn records a warning. When item is non-empty a warning line is
// displayed under section as well.
func (r *Report) Warn(section Section, item, message string) {
	if item != "" {
		r.addLine(section, item, SeverityWarning, message)
	}
	r.Warnings = append(r.Warnings, message)
}

func (r *Report) addLine(section Section, item string, sev Severity, detail string) {
	r.Lines = append(r.Lines, Line{
		Section:  section,
		Item:     item,
		Severity: sev,
		Status:   sev.String(),
		Detail:   detail,
	})
}

// HasErrors reports whether any error was recorded.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Clean reports whether the run recorded neither errors nor warnings.
func (r *Report) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// ExitCode is 1 if any error was recorded and 0 otherwise. Warnings never
// affect it.
func (r *Report) ExitCode() int {
	if r.HasErrors() {
		return 1
	}
	return 0
}

// Summary counts lines and findings.
func (r *Report) Summary() Summary {
	s := Summary{
		Checks:   len(r.Lines),
		Errors:   len(r.Errors),
		Warnings: len(r.Warnings),
	}
	for _, l := range r.Lines {
		if l.Severity == SeverityOK {
			s.Passed++
		}
	}
	return s
}

// Sections returns the sections that have lines, in first-seen order.
func (r *Report) Sections() []Section {
	seen := make(map[string]bool)
	var out []Section
	for _, l := range r.Lines {
		if !seen[l.Section.Key] {
			seen[l.Section.Key] = true
			out = append(out, l.Section)
		}
	}
	return out
}

// LinesFor returns the lines recorded under section.
func (r *Report) LinesFor(section Section) []Line {
	var out []Line
	for _, l := range r.Lines {
		if l.Section.Key == section.Key {
			out = append(out, l)
		}
	}
	return out
}
