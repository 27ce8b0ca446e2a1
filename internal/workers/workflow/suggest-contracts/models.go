// internal/workers/workflow/suggest-contracts/models.go
package suggestcontracts

import "guided-buying-workers/internal/models"

// Input names the supplier mentioned on the draft, if any. An empty or
// unrecognized supplier keeps the contract list in its default order.
// Entity and category, when present, also surface the callable framework
// agreement covering them.
type Input struct {
	SupplierName string          `json:"supplierName,omitempty"`
	Entity       string          `json:"entity,omitempty"`
	Category     models.Category `json:"category,omitempty"`
}

type Output struct {
	Contracts         []models.CLMContract      `json:"clmContracts"`
	FrameworkContract *models.FrameworkContract `json:"frameworkContract,omitempty"`
}
