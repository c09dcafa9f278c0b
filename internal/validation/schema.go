package validation

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Schema is a compiled JSON schema for a request payload.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

var (
	UserCreate     = mustLoad("user_create")
	CategoryCreate = mustLoad("category_create")
	CategoryPatch  = mustLoad("category_patch")
	ExpenseCreate  = mustLoad("expense_create")
	ExpensePatch   = mustLoad("expense_patch")
	GoalCreate     = mustLoad("goal_create")
	GoalPatch      = mustLoad("goal_patch")
	BudgetUpsert   = mustLoad("budget_upsert")
)

func mustLoad(name string) Schema {
	data, err := schemaFiles.ReadFile(fmt.Sprintf("schemas/%s.json", name))
	if err != nil {
		panic(fmt.Sprintf("schema %s is missing: %v", name, err))
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		panic(fmt.Sprintf("schema %s is invalid: %v", name, err))
	}

	return Schema{name: name, schema: schema}
}

func (s Schema) String() string {
	return s.name
}

// check validates the document and returns an error per failing field.
func (s Schema) check(document []byte) ([]FieldError, error) {
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, err
	}

	var fields []FieldError
	for _, e := range res.Errors() {
		field := e.Field()

		// Missing properties are reported on the parent object
		if e.Type() == "required" {
			if property, ok := e.Details()["property"].(string); ok {
				field = property
			}
		}

		fields = append(fields, FieldError{Field: field, Reason: e.Description()})
	}

	return fields, nil
}
