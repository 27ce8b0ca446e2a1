// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Validate checks structural invariants: every activity carries an ID and
// a task type, and both are unique across the registry.
func (r *ActivityRegistry) Validate() error {
	seenIDs := make(map[string]bool)
	seenTaskTypes := make(map[string]bool)

	for _, activity := range r.Activities {
		if activity.ID == "" {
			return fmt.Errorf("activity without id")
		}
		if activity.TaskType == "" {
			return fmt.Errorf("activity %s: task type missing", activity.ID)
		}
		if seenIDs[activity.ID] {
			return fmt.Errorf("duplicate activity id %s", activity.ID)
		}
		if seenTaskTypes[activity.TaskType] {
			return fmt.Errorf("duplicate task type %s", activity.TaskType)
		}
		seenIDs[activity.ID] = true
		seenTaskTypes[activity.TaskType] = true
	}
	return nil
}

// FindByTaskType returns the activity registered for a Zeebe task type.
func (r *ActivityRegistry) FindByTaskType(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}
