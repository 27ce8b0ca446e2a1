// internal/workers/workflow/build-approval-path/models.go
package buildapprovalpath

import "guided-buying-workers/internal/models"

// Input accepts either the draft line items or a pre-computed total; the
// line items win when both are present.
type Input struct {
	LineItems  []models.DraftLineItem `json:"lineItems,omitempty"`
	TotalValue *float64               `json:"totalValue,omitempty"`
}

type Output struct {
	ApprovalPath []models.ApprovalStep `json:"approvalPath"`
}
