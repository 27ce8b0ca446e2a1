// internal/workers/workflow/validate-requisition/validator.go
package validaterequisition

import "guided-buying-workers/internal/models"

// quoteAttachmentThreshold is the total value above which a quote
// attachment becomes mandatory.
const quoteAttachmentThreshold = 50000.0

// Validate runs the submission policy checks over the draft line items.
func Validate(lineItems []models.DraftLineItem) []models.ValidationIssue {
	var issues []models.ValidationIssue

	if TotalValue(lineItems) > quoteAttachmentThreshold {
		issues = append(issues, models.ValidationIssue{
			Severity:  models.SeverityError,
			Message:   "Requests over $50,000 require a quote attachment.",
			CanFix:    true,
			FixAction: "Upload quote",
		})
	}

	if hasNonPreferredSupplier(lineItems) {
		issues = append(issues, models.ValidationIssue{
			Severity: models.SeveritySuggestion,
			Message:  "Consider using preferred suppliers for faster approval.",
			CanFix:   false,
		})
	}

	return issues
}

// TotalValue sums the line item totals; items without a price contribute
// nothing.
func TotalValue(lineItems []models.DraftLineItem) float64 {
	total := 0.0
	for _, item := range lineItems {
		if item.TotalPrice != nil {
			total += *item.TotalPrice
		}
	}
	return total
}

// Passed reports whether the issues contain no blocking errors.
func Passed(issues []models.ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == models.SeverityError {
			return false
		}
	}
	return true
}

func hasNonPreferredSupplier(lineItems []models.DraftLineItem) bool {
	for _, item := range lineItems {
		if !item.PreferredFlag {
			return true
		}
	}
	return false
}
