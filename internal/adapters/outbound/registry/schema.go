package registry

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// printer formats schema validation messages.
var printer = message.NewPrinter(language.English)

var (
	ruleFileSchema   = mustCompileSchema("rule_file.schema.json")
	confidenceSchema = mustCompileSchema("rule_confidence.schema.json")
	fabricSchema     = mustCompileSchema("fabric_lookup.schema.json")
)

func mustCompileSchema(name string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(fmt.Sprintf("reading embedded %s: %v", name, err))
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("parsing embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("adding %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compiling %s: %v", name, err))
	}
	return sch
}

// SchemaError lists every violation found in one document.
type SchemaError struct {
	Document   string
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Document, strings.Join(e.Violations, "; "))
}

// validate checks a decoded JSON document against schema.
func validate(schema *jsonschema.Schema, document string, instance any) error {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("%s: schema: %w", document, err)
	}
	se := &SchemaError{Document: document}
	collectViolations(ve, &se.Violations)
	return se
}

func collectViolations(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		*out = append(*out, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(printer)))
		return
	}
	for _, c := range ve.Causes {
		collectViolations(c, out)
	}
}
