// internal/workers/intake/classify-intent/models.go
package classifyintent

import "guided-buying-workers/internal/models"

type Input struct {
	Message string `json:"message"`
}

type Output struct {
	IntentClassification models.IntentClassification `json:"intentClassification"`
}
