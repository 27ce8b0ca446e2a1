// internal/workers/intake/lookup-requisition/models.go
package lookuprequisition

import "guided-buying-workers/internal/models"

// Input selects a lookup mode. ListAll returns every stored requisition;
// otherwise PRNumber is used when set, else the number is extracted from
// the free-text Message.
type Input struct {
	PRNumber string `json:"prNumber,omitempty"`
	Message  string `json:"message,omitempty"`
	ListAll  bool   `json:"listAll,omitempty"`
}

type Output struct {
	Found        bool                          `json:"found"`
	Requisition  *models.PurchaseRequisition   `json:"requisition,omitempty"`
	Requisitions []*models.PurchaseRequisition `json:"requisitions,omitempty"`
	Count        int                           `json:"count"`
}
