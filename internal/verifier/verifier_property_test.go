//go:build property
// +build property

package verifier

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/afero"

	"github.com/deepoptimizer/sitecheck/internal/testutils"
)

// fileCase pairs a generated file name with whether it is written to disk.
type fileCase struct {
	Name    string
	Present bool
}

func genFileCases() gopter.Gen {
	return gen.SliceOf(gopter.CombineGens(gen.Identifier(), gen.Bool()).Map(func(v []interface{}) fileCase {
		return fileCase{Name: v[0].(string), Present: v[1].(bool)}
	}))
}

// buildSite writes the manifest and markup plus every present file, and
// returns a check set requiring all generated files.
func buildSite(cases []fileCase) (afero.Fs, CheckSet) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/site/package.json", []byte(testutils.Package), 0o644)
	_ = afero.WriteFile(fs, "/site/index.html", []byte(testutils.Index), 0o644)

	checks := DefaultCheckSet()
	checks.RequiredFiles = nil
	checks.RequiredComponents = nil

	seen := make(map[string]bool)
	for i, c := range cases {
		name := fmt.Sprintf("src/%d_%s.js", i, c.Name)
		if seen[name] {
			continue
		}
		seen[name] = true
		checks.RequiredFiles = append(checks.RequiredFiles, name)
		if c.Present {
			_ = afero.WriteFile(fs, filepath.Join("/site", name), []byte("export default 1"), 0o644)
		}
	}
	return fs, checks
}

func TestVerifierProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("one error per absent path, naming it", prop.ForAll(
		func(cases []fileCase) bool {
			fs, checks := buildSite(cases)
			r := New(fs, checks).Verify("/site")

			var want []string
			for i, c := range cases {
				if !c.Present {
					want = append(want, fmt.Sprintf("Missing required file: src/%d_%s.js", i, c.Name))
				}
			}
			if len(want) != len(r.Errors) {
				return false
			}
			for i := range want {
				if want[i] != r.Errors[i] {
					return false
				}
			}
			return true
		},
		genFileCases(),
	))

	properties.Property("all present means no errors", prop.ForAll(
		func(cases []fileCase) bool {
			for i := range cases {
				cases[i].Present = true
			}
			fs, checks := buildSite(cases)
			return len(New(fs, checks).Verify("/site").Errors) == 0
		},
		genFileCases(),
	))

	properties.Property("exit code is zero iff no errors", prop.ForAll(
		func(cases []fileCase, dropMarker bool) bool {
			fs, checks := buildSite(cases)
			if dropMarker {
				checks.ScriptMarker = "never-present-marker"
			}
			r := New(fs, checks).Verify("/site")
			return (r.ExitCode() == 0) == (len(r.Errors) == 0)
		},
		genFileCases(),
		gen.Bool(),
	))

	properties.Property("unparseable manifest is a single error", prop.ForAll(
		func(cases []fileCase, garbage string) bool {
			for i := range cases {
				cases[i].Present = true
			}
			fs, checks := buildSite(cases)
			_ = afero.WriteFile(fs, "/site/package.json", []byte(`{"scripts": `+garbage), 0o644)

			r := New(fs, checks).Verify("/site")
			if len(r.Errors) != 1 || r.Errors[0] != "Failed to parse package.json" {
				return false
			}
			return r.ExitCode() == 1
		},
		genFileCases(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
