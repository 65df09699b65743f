// Package internal contains the implementation packages for sitecheck.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - verifier: Build-readiness checks over a site checkout
//   - syntaxcheck: Text heuristics over JSX sources
//   - fallback: SPA 404 page generation in the build output
//   - manifest: package.json decoding and schema validation
//   - report: Check outcomes and their text, JSON, YAML and JUnit renderings
//   - watcher: File system monitoring with debouncing
//   - config: Configuration loading and validation
//   - validation: Path checks shared by cmd, config and watcher
//   - logging: Structured logging on log/slog
//   - errors: Typed errors with codes and context
//   - version: Build metadata
//   - testutils: Site fixtures for tests
//
// # Data Flow
//
// A command loads the config, builds a checker for the project root and
// renders the returned report. The report's exit code decides the process
// exit status:
//
//   - verifier and syntaxcheck read through an afero.Fs and never write
//   - fallback is the only package that writes into the project
//   - watch re-runs the verifier after each debounced batch of changes
//
// # Testing Strategy
//
//   - Unit tests run against afero.MemMapFs
//   - Property tests live behind the "property" build tag
//   - Watcher tests check for leaked goroutines
package internal
