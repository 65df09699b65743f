// Package config loads sitecheck configuration using Viper from the
// .sitecheck.yml file, SITECHECK_ environment variables and command-line
// flags.
//
// Every list in the check set falls back to the landing-page defaults only
// when the key is absent. A key set to an empty list stays empty, so a
// project can switch a whole group of checks off.
package config

import (
	"io"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/deepoptimizer/sitecheck/internal/errors"
	"github.com/deepoptimizer/sitecheck/internal/fallback"
	"github.com/deepoptimizer/sitecheck/internal/report"
	"github.com/deepoptimizer/sitecheck/internal/syntaxcheck"
	"github.com/deepoptimizer/sitecheck/internal/verifier"
	"github.com/deepoptimizer/sitecheck/internal/watcher"
)

// EnvPrefix prefixes every environment override, e.g.
// SITECHECK_CHECKS_REQUIRED_SCRIPTS=dev,build.
const EnvPrefix = "SITECHECK"

// Error codes returned by Load.
const (
	ErrCodeDecode  = "CONFIG_DECODE"
	ErrCodeInvalid = "CONFIG_INVALID"
)

type Config struct {
	Root     string              `mapstructure:"root" yaml:"root" json:"root"`
	Format   string              `mapstructure:"format" yaml:"format" json:"format"`
	Checks   verifier.CheckSet   `mapstructure:"checks" yaml:"checks" json:"checks"`
	Syntax   syntaxcheck.Options `mapstructure:"syntax" yaml:"syntax" json:"syntax"`
	Fallback FallbackConfig      `mapstructure:"fallback" yaml:"fallback" json:"fallback"`
	Watch    WatchConfig         `mapstructure:"watch" yaml:"watch" json:"watch"`
	Log      LogConfig           `mapstructure:"log" yaml:"log" json:"log"`
}

type FallbackConfig struct {
	Dist     string `mapstructure:"dist" yaml:"dist" json:"dist"`
	Index    string `mapstructure:"index" yaml:"index" json:"index"`
	NotFound string `mapstructure:"not_found" yaml:"not_found" json:"not_found"`
}

// Options converts the section into fallback.Options.
func (f FallbackConfig) Options() fallback.Options {
	return fallback.Options{Index: f.Index, NotFound: f.NotFound}
}

type WatchConfig struct {
	Debounce   time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
	Extensions []string      `mapstructure:"extensions" yaml:"extensions" json:"extensions"`
	Ignore     []string      `mapstructure:"ignore" yaml:"ignore" json:"ignore"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// keys lists every leaf key so environment variables reach Unmarshal.
var keys = []string{
	"root",
	"format",
	"checks.required_files",
	"checks.required_components",
	"checks.required_scripts",
	"checks.required_dependencies",
	"checks.component_markers",
	"checks.manifest",
	"checks.markup",
	"checks.root_marker",
	"checks.script_marker",
	"syntax.entries",
	"syntax.component_dir",
	"syntax.test_dir",
	"fallback.dist",
	"fallback.index",
	"fallback.not_found",
	"watch.debounce",
	"watch.extensions",
	"watch.ignore",
	"log.level",
	"log.format",
}

// BindEnv wires SITECHECK_<SECTION>_<KEY> variables into the global viper.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		_ = viper.BindEnv(key)
	}
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	fb := fallback.DefaultOptions()
	return &Config{
		Root:     ".",
		Format:   report.FormatText,
		Checks:   verifier.DefaultCheckSet(),
		Syntax:   syntaxcheck.DefaultOptions(),
		Fallback: FallbackConfig{Dist: "dist", Index: fb.Index, NotFound: fb.NotFound},
		Watch: WatchConfig{
			Debounce:   300 * time.Millisecond,
			Extensions: append([]string(nil), watcher.DefaultExtensions...),
			Ignore:     append([]string(nil), watcher.DefaultIgnoredDirs...),
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load unmarshals the global viper state, fills unset keys with defaults
// and validates the result.
func Load() (*Config, error) {
	var config Config
	err := viper.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, errors.WrapConfig(err, ErrCodeDecode, "failed to decode configuration")
	}

	applyDefaults(&config)

	if result := ValidateConfigWithDetails(&config); result.HasErrors() {
		return nil, errors.WrapConfig(result, ErrCodeInvalid, "invalid configuration")
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	def := Default()

	setString := func(dst *string, value string) {
		if *dst == "" {
			*dst = value
		}
	}
	setSlice := func(key string, dst *[]string, value []string) {
		if !viper.IsSet(key) {
			*dst = value
		}
	}

	setString(&config.Root, def.Root)
	setString(&config.Format, def.Format)

	setSlice("checks.required_files", &config.Checks.RequiredFiles, def.Checks.RequiredFiles)
	setSlice("checks.required_components", &config.Checks.RequiredComponents, def.Checks.RequiredComponents)
	setSlice("checks.required_scripts", &config.Checks.RequiredScripts, def.Checks.RequiredScripts)
	setSlice("checks.required_dependencies", &config.Checks.RequiredDependencies, def.Checks.RequiredDependencies)
	if !viper.IsSet("checks.component_markers") {
		config.Checks.ComponentMarkers = def.Checks.ComponentMarkers
	}
	setString(&config.Checks.Manifest, def.Checks.Manifest)
	setString(&config.Checks.Markup, def.Checks.Markup)
	setString(&config.Checks.RootMarker, def.Checks.RootMarker)
	setString(&config.Checks.ScriptMarker, def.Checks.ScriptMarker)

	setSlice("syntax.entries", &config.Syntax.Entries, def.Syntax.Entries)
	// An explicitly empty directory disables that group.
	if !viper.IsSet("syntax.component_dir") {
		config.Syntax.ComponentDir = def.Syntax.ComponentDir
	}
	if !viper.IsSet("syntax.test_dir") {
		config.Syntax.TestDir = def.Syntax.TestDir
	}

	setString(&config.Fallback.Dist, def.Fallback.Dist)
	setString(&config.Fallback.Index, def.Fallback.Index)
	setString(&config.Fallback.NotFound, def.Fallback.NotFound)

	if !viper.IsSet("watch.debounce") {
		config.Watch.Debounce = def.Watch.Debounce
	}
	setSlice("watch.extensions", &config.Watch.Extensions, def.Watch.Extensions)
	setSlice("watch.ignore", &config.Watch.Ignore, def.Watch.Ignore)

	setString(&config.Log.Level, def.Log.Level)
	setString(&config.Log.Format, def.Log.Format)
}

// WriteYAML writes config as a .sitecheck.yml document.
func WriteYAML(w io.Writer, config *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return err
	}
	return enc.Close()
}
