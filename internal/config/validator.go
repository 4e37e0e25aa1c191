// Where: internal/config/validator.go
// What: Schema validation for the project config file.
// Why: Typo'd keys should warn instead of being silently dropped.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/dcctl.schema.json
var projectSchemaJSON string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// validateProjectConfig checks the raw YAML payload against the embedded
// schema and returns one warning per unrecognized top-level key.
func validateProjectConfig(content []byte) ([]string, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return nil, err
	}

	return unknownKeyWarnings(document), nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("dcctl.schema.json", strings.NewReader(projectSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("dcctl.schema.json")
	})
	return compiledSchema, schemaErr
}

func unknownKeyWarnings(document any) []string {
	root, ok := document.(map[string]any)
	if !ok {
		return nil
	}

	known := map[string]struct{}{
		"compose_file":     {},
		"project_name":     {},
		"always_yes":       {},
		"default_services": {},
	}

	var warnings []string
	for key := range root {
		if _, ok := known[key]; !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key %q ignored", key))
		}
	}
	sort.Strings(warnings)
	return warnings
}
