package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Write.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatJUnit = "junit"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatJUnit}

// IsFormat reports whether f is a supported output format.
func IsFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

const minRuleWidth = 50

// document is the structured form shared by the JSON and YAML renderers.
type document struct {
	Report   `yaml:",inline"`
	Summary  Summary `json:"summary" yaml:"summary"`
	ExitCode int     `json:"exit_code" yaml:"exit_code"`
}

// Write renders r to w in the requested format.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatJUnit:
		return WriteJUnit(w, r)
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

// WriteJSON renders r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Report: *r, Summary: r.Summary(), ExitCode: r.ExitCode()})
}

// WriteYAML renders r as YAML.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Report: *r, Summary: r.Summary(), ExitCode: r.ExitCode()}); err != nil {
		return err
	}
	return enc.Close()
}

// WriteText renders the human-readable report: a banner, one block per
// section, then the error and warning lists.
func WriteText(w io.Writer, r *Report) error {
	tw := &textWriter{w: w}

	banner := "🔍 " + r.Title
	tw.printf("%s\n", banner)

	for _, section := range r.Sections() {
		tw.printf("\n%s Checking %s...\n", section.Icon, section.Title)
		for _, line := range r.LinesFor(section) {
			switch line.Severity {
			case SeverityOK:
				tw.printf("  ✅ %s\n", line.Item)
			case SeverityWarning:
				tw.printf("  ⚠️  %s\n", line.Item)
			default:
				tw.printf("  ❌ %s - %s\n", line.Item, line.Detail)
			}
		}
	}

	width := runewidth.StringWidth(banner)
	if width < minRuleWidth {
		width = minRuleWidth
	}
	tw.printf("\n%s\n", strings.Repeat("=", width))

	if r.Clean() {
		tw.printf("✅ All checks passed!\n")
		if len(r.SuccessHint) > 0 {
			tw.printf("\n")
			for _, hint := range r.SuccessHint {
				tw.printf("%s\n", hint)
			}
		}
		return tw.err
	}

	if len(r.Errors) > 0 {
		tw.printf("\n❌ Found %d error(s):\n", len(r.Errors))
		for _, e := range r.Errors {
			tw.printf("  - %s\n", e)
		}
	}

	if len(r.Warnings) > 0 {
		tw.printf("\n⚠️  Found %d warning(s):\n", len(r.Warnings))
		for _, warning := range r.Warnings {
			tw.printf("  - %s\n", warning)
		}
	}

	if r.FailureHint != "" {
		tw.printf("\n%s\n", r.FailureHint)
	}

	return tw.err
}

// textWriter keeps the first write error so the renderer can stay linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
