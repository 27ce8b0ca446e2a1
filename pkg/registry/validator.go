// pkg/registry/validator.go
package registry

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// OutputValidator checks worker output payloads against the output schema
// an activity declares in the registry. Activities without an output
// schema validate trivially.
type OutputValidator struct {
	registry *ActivityRegistry
}

func NewOutputValidator(registry *ActivityRegistry) *OutputValidator {
	return &OutputValidator{registry: registry}
}

// ValidateOutput validates a completed job's variables against the
// registered schema for the task type.
func (v *OutputValidator) ValidateOutput(taskType string, output interface{}) error {
	activity, ok := v.registry.FindByTaskType(taskType)
	if !ok {
		return fmt.Errorf("no activity registered for task type %s", taskType)
	}
	if len(activity.OutputSchema) == 0 {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(activity.OutputSchema)
	documentLoader := gojsonschema.NewGoLoader(output)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate output for %s: %w", taskType, err)
	}
	if !result.Valid() {
		return fmt.Errorf("output for %s violates schema: %v", taskType, result.Errors())
	}
	return nil
}
