// internal/workers/intake/infer-context/models.go
package infercontext

import "guided-buying-workers/internal/models"

type Input struct {
	Message string `json:"message"`
	// PersonaID selects a roster persona; an inline Persona takes
	// precedence when its ID is set.
	PersonaID string          `json:"personaId,omitempty"`
	Persona   *models.Persona `json:"persona,omitempty"`
}

type Output struct {
	ContextInference models.ContextInference `json:"contextInference"`
}
