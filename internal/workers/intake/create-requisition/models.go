// internal/workers/intake/create-requisition/models.go
package createrequisition

import "guided-buying-workers/internal/models"

// Input carries the raw purchase request and the requesting persona. An
// inline persona with a non-empty ID takes precedence over personaId.
type Input struct {
	Message   string          `json:"message"`
	PersonaID string          `json:"personaId,omitempty"`
	Persona   *models.Persona `json:"persona,omitempty"`
}

// Output carries the assembled requisition. The PR number is surfaced as a
// top-level variable so downstream process steps can reference it directly.
type Output struct {
	PRNumber    string                      `json:"prNumber"`
	Requisition *models.PurchaseRequisition `json:"requisition"`
}
