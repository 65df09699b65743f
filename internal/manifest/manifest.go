// Package manifest reads the site's package.json.
//
// Presence checks follow the package manager's own reading of the file: a
// script or dependency counts only when its key exists and its value is
// truthy. Shape problems found by the embedded JSON Schema are reported
// separately and never decide presence.
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema.json
var schemaJSON []byte

const schemaName = "package.schema.json"

var (
	packageSchema = mustCompileSchema(schemaJSON, schemaName)
	printer       = message.NewPrinter(language.English)
)

// ErrNullDocument is returned for a manifest whose top-level value is null.
var ErrNullDocument = errors.New("manifest document is null")

// Manifest is a parsed package.json.
type Manifest struct {
	raw any
	doc map[string]any
}

func mustCompileSchema(raw []byte, name string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// Parse decodes data. A document that is valid JSON but not an object is
// accepted and behaves as an empty object.
func Parse(data []byte) (*Manifest, error) {
	raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if raw == nil {
		return nil, ErrNullDocument
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		doc = map[string]any{}
	}
	return &Manifest{raw: raw, doc: doc}, nil
}

// HasScript reports whether scripts[name] is present and truthy.
func (m *Manifest) HasScript(name string) bool {
	return m.has("scripts", name)
}

// HasDependency reports whether dependencies[name] is present and truthy.
func (m *Manifest) HasDependency(name string) bool {
	return m.has("dependencies", name)
}

// Scripts returns the declared script names, sorted.
func (m *Manifest) Scripts() []string {
	return m.keys("scripts")
}

// Dependencies returns the declared dependency names, sorted.
func (m *Manifest) Dependencies() []string {
	return m.keys("dependencies")
}

func (m *Manifest) has(table, name string) bool {
	entries, ok := m.doc[table].(map[string]any)
	if !ok {
		return false
	}
	v, ok := entries[name]
	return ok && truthy(v)
}

func (m *Manifest) keys(table string) []string {
	entries, ok := m.doc[table].(map[string]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(entries))
	for k := range entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// truthy mirrors JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	default:
		return true
	}
}

// Problems validates the manifest against the embedded schema and returns
// one "location: reason" string per violation.
func (m *Manifest) Problems() []string {
	err := packageSchema.Validate(m.raw)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{fmt.Sprintf("/: %v", err)}
	}
	var problems []string
	collectSchemaErrors(ve, &problems)
	sort.Strings(problems)
	return problems
}

func collectSchemaErrors(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		*out = append(*out, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(printer)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, out)
	}
}
