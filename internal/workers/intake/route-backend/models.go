// internal/workers/intake/route-backend/models.go
package routebackend

import "guided-buying-workers/internal/models"

// Input carries the routing inputs for a routing decision.
type Input struct {
	IntentType       models.IntentType       `json:"intentType"`
	ContextInference models.ContextInference `json:"contextInference"`
}

// Output carries the backend routing decision.
type Output struct {
	BackendRouting models.BackendRouting `json:"backendRouting"`
}
