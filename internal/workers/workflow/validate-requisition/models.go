// internal/workers/workflow/validate-requisition/models.go
package validaterequisition

import "guided-buying-workers/internal/models"

type Input struct {
	LineItems []models.DraftLineItem `json:"lineItems"`
}

type Output struct {
	Issues []models.ValidationIssue `json:"validationIssues"`
	// Passed is true when no error-severity issues were found; warnings
	// and suggestions do not block submission.
	Passed     bool    `json:"passed"`
	TotalValue float64 `json:"totalValue"`
}
