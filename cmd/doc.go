// Package cmd provides the command-line interface for sitecheck.
//
// This package implements all CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - verify: Check that a site checkout is ready to build (also the default)
//   - syntax: Run the JSX heuristics over entry files, components and tests
//   - fallback: Copy the built index.html to 404.html for SPA hosting
//   - watch: Re-verify whenever a site source file changes
//   - config: Show or validate the resolved configuration
//   - version: Show build information
//
// # Command Examples
//
//	// Verify the current directory
//	sitecheck
//
//	// Verify another checkout and emit JUnit XML for CI
//	sitecheck verify ./website --format junit
//
//	// After `vite build`
//	sitecheck fallback --dist dist
//
// # Exit Codes
//
// Every command exits 1 on failure. For verify and syntax a failure means
// the report recorded at least one error; warnings never fail a run.
package cmd
