package config

import (
	"fmt"
	"strings"

	"github.com/deepoptimizer/sitecheck/internal/logging"
	"github.com/deepoptimizer/sitecheck/internal/report"
	"github.com/deepoptimizer/sitecheck/internal/validation"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// Error joins the error messages so a failed result can be returned as an error.
func (vr *ValidationResult) Error() string {
	msgs := make([]string, 0, len(vr.Errors))
	for _, err := range vr.Errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("❌ Validation Errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("⚠️  Validation Warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

func (vr *ValidationResult) addError(field string, value interface{}, message string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Value: value, Message: message, Suggestions: suggestions})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, message string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Value: value, Message: message, Suggestions: suggestions})
}

// ValidateConfigWithDetails validates every section and collects all problems
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	if err := validation.ValidatePath(config.Root); err != nil {
		result.addError("root", config.Root, err.Error())
	}
	if !report.IsFormat(config.Format) {
		result.addError("format", config.Format, "unknown report format",
			"Use one of: "+strings.Join(report.Formats, ", "))
	}

	validateChecks(config, result)
	validateSyntax(config, result)
	validateFallback(config, result)
	validateWatch(config, result)
	validateLog(config, result)

	result.Valid = !result.HasErrors()
	return result
}

func validateRelativePaths(field string, paths []string, result *ValidationResult) {
	for i, path := range paths {
		if err := validation.ValidateRelativePath(path); err != nil {
			result.addError(fmt.Sprintf("%s[%d]", field, i), path, err.Error(),
				"Paths are relative to the project root, e.g. src/App.jsx")
		}
	}
}

func validateNames(field string, names []string, result *ValidationResult) {
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			result.addError(fmt.Sprintf("%s[%d]", field, i), name, "name cannot be empty")
		}
	}
}

func validateChecks(config *Config, result *ValidationResult) {
	checks := config.Checks

	validateRelativePaths("checks.required_files", checks.RequiredFiles, result)
	validateRelativePaths("checks.required_components", checks.RequiredComponents, result)
	validateRelativePaths("checks.manifest", []string{checks.Manifest}, result)
	validateRelativePaths("checks.markup", []string{checks.Markup}, result)

	validateNames("checks.required_scripts", checks.RequiredScripts, result)
	validateNames("checks.required_dependencies", checks.RequiredDependencies, result)

	for i, marker := range checks.ComponentMarkers {
		if marker.Text == "" {
			result.addError(fmt.Sprintf("checks.component_markers[%d].text", i), marker.Text, "marker text cannot be empty")
		}
		if marker.Describes == "" {
			result.addWarning(fmt.Sprintf("checks.component_markers[%d].describes", i), marker.Describes,
				"marker has no description", `Warnings will read "might be missing "`)
		}
	}

	if len(checks.RequiredFiles) == 0 && len(checks.RequiredComponents) == 0 {
		result.addWarning("checks", nil, "no required files or components configured")
	}
}

func validateSyntax(config *Config, result *ValidationResult) {
	validateRelativePaths("syntax.entries", config.Syntax.Entries, result)
	if dir := config.Syntax.ComponentDir; dir != "" {
		validateRelativePaths("syntax.component_dir", []string{dir}, result)
	}
	if dir := config.Syntax.TestDir; dir != "" {
		validateRelativePaths("syntax.test_dir", []string{dir}, result)
	}
}

func validateFallback(config *Config, result *ValidationResult) {
	if err := validation.ValidatePath(config.Fallback.Dist); err != nil {
		result.addError("fallback.dist", config.Fallback.Dist, err.Error())
	}
	validateRelativePaths("fallback.index", []string{config.Fallback.Index}, result)
	validateRelativePaths("fallback.not_found", []string{config.Fallback.NotFound}, result)
	if config.Fallback.Index == config.Fallback.NotFound {
		result.addError("fallback.not_found", config.Fallback.NotFound, "fallback page would overwrite the index")
	}
}

func validateWatch(config *Config, result *ValidationResult) {
	if config.Watch.Debounce <= 0 {
		result.addError("watch.debounce", config.Watch.Debounce, "debounce must be positive",
			"Use a duration such as 300ms")
	}
	for i, ext := range config.Watch.Extensions {
		if err := validation.ValidateFileExtension(ext); err != nil {
			result.addError(fmt.Sprintf("watch.extensions[%d]", i), ext, err.Error())
		}
	}
	if len(config.Watch.Extensions) == 0 {
		result.addWarning("watch.extensions", nil, "no extensions configured, watch mode will never rerun")
	}
}

func validateLog(config *Config, result *ValidationResult) {
	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		result.addError("log.level", config.Log.Level, err.Error(), "Use debug, info, warn or error")
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		result.addError("log.format", config.Log.Format, "unknown log format", "Use text or json")
	}
}
