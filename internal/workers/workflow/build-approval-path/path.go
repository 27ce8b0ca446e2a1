// internal/workers/workflow/build-approval-path/path.go
package buildapprovalpath

import "guided-buying-workers/internal/models"

// procurementReviewThreshold is the total value above which a procurement
// review step joins the approval chain.
const procurementReviewThreshold = 10000.0

// BuildPath returns the ordered approval chain for a requisition total.
// Manager and cost center approval always apply; procurement review is
// added for larger requests. Every step starts pending.
func BuildPath(totalValue float64) []models.ApprovalStep {
	path := []models.ApprovalStep{
		{Role: "Manager", ApproverName: "Sarah Johnson", Status: models.ApprovalPending, Order: 1},
		{Role: "Cost Center Owner", ApproverName: "Michael Chen", Status: models.ApprovalPending, Order: 2},
	}

	if totalValue > procurementReviewThreshold {
		path = append(path, models.ApprovalStep{
			Role:         "Procurement",
			ApproverName: "Emily Rodriguez",
			Status:       models.ApprovalPending,
			Order:        3,
		})
	}

	return path
}
