// internal/workers/intake/create-requisition/builder.go
package createrequisition

import (
	"strings"
	"time"

	"guided-buying-workers/internal/data"
	"guided-buying-workers/internal/models"
	classifyintent "guided-buying-workers/internal/workers/intake/classify-intent"
	infercontext "guided-buying-workers/internal/workers/intake/infer-context"
	routebackend "guided-buying-workers/internal/workers/intake/route-backend"

	"github.com/google/uuid"
)

const maxDescriptionLength = 100

// Assemble runs the full intake pipeline over a raw request message and
// returns a draft requisition. The PR number is left empty; the store
// assigns it when the requisition is persisted.
func Assemble(message string, persona models.Persona, now time.Time) *models.PurchaseRequisition {
	classification := classifyintent.Classify(message)
	inference := infercontext.Infer(message, persona)
	routing := routebackend.Route(classification.Type, inference)

	ts := now.UTC().Format(time.RFC3339)

	return &models.PurchaseRequisition{
		ID:                   uuid.New().String(),
		Status:               models.PRStatusDraft,
		RequestingPersona:    persona,
		OriginalMessage:      message,
		IntentClassification: classification,
		ContextInference:     inference,
		BackendRouting:       routing,
		LineItems:            []models.LineItem{BuildLineItem(message, inference)},
		CreatedAt:            ts,
		UpdatedAt:            ts,
	}
}

// BuildLineItem derives a single draft line item from the request message.
// Unit pricing comes from the typical-item table for the inferred category;
// categories without an entry get no price estimate.
func BuildLineItem(message string, inference models.ContextInference) models.LineItem {
	quantity := infercontext.ExtractQuantity(message)

	item := models.LineItem{
		ID:            uuid.New().String(),
		Description:   truncateDescription(strings.TrimSpace(message)),
		Quantity:      quantity,
		UnitOfMeasure: "EA",
	}

	if typical, ok := data.TypicalItemForCategory(inference.Category); ok {
		unitPrice := typical.TypicalUnitPrice
		totalPrice := unitPrice * float64(quantity)
		item.UnitOfMeasure = typical.UnitOfMeasure
		item.UnitPrice = &unitPrice
		item.TotalPrice = &totalPrice
		item.SupplierName = typical.SupplierName
	}

	return item
}

// truncateDescription limits the description to maxDescriptionLength
// runes. Cutting on bytes could split a multibyte character in half.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionLength {
		return s
	}
	return string(runes[:maxDescriptionLength]) + "..."
}
