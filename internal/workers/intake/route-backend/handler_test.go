// internal/workers/intake/route-backend/handler_test.go
package routebackend

import (
	"context"
	"testing"
	"time"

	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout: 3 * time.Second,
	}
}

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(createTestConfig(), logger.NewTestLogger(t))
}

func ctxWith(entity string, category models.Category) models.ContextInference {
	return models.ContextInference{
		Entity:   entity,
		Category: category,
	}
}

// ==========================
// Routing Rule Tests
// ==========================

func TestRouteSourcingHandOff(t *testing.T) {
	got := Route(models.IntentNeedsSourcing, ctxWith("RO01", models.CategoryITHardware))

	assert.Equal(t, models.BackendSourcingHandOff, got.System)
	assert.Equal(t, "RFP/RFQ/tender requests are routed to the sourcing team for supplier selection", got.Reasoning)
}

func TestRouteSourcingBeatsEntityRules(t *testing.T) {
	// Sourcing requests hand off regardless of entity or category.
	got := Route(models.IntentNeedsSourcing, ctxWith("US01", models.CategoryMarketingServices))

	assert.Equal(t, models.BackendSourcingHandOff, got.System)
}

func TestRouteITHardwareRomania(t *testing.T) {
	got := Route(models.IntentCatalogPurchase, ctxWith("RO01", models.CategoryITHardware))

	assert.Equal(t, models.BackendSAPMM, got.System)
	assert.Equal(t, "IT Hardware purchases for entity RO01 are processed through SAP Materials Management", got.Reasoning)
}

func TestRouteMarketingUS(t *testing.T) {
	got := Route(models.IntentContractCallOff, ctxWith("US01", models.CategoryMarketingServices))

	assert.Equal(t, models.BackendCoupa, got.System)
	assert.Equal(t, "Marketing Services for entity US01 are managed via Coupa", got.Reasoning)
}

func TestRouteConsultingAnyEntity(t *testing.T) {
	tests := []struct {
		name   string
		entity string
	}{
		{"romanian entity", "RO01"},
		{"us entity", "US01"},
		{"german entity", "DE01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Route(models.IntentServicesSOW, ctxWith(tt.entity, models.CategoryConsultingServices))

			assert.Equal(t, models.BackendCoupa, got.System)
			assert.Equal(t, "Consulting and professional services are procured through Coupa", got.Reasoning)
		})
	}
}

func TestRouteUSEntityDefault(t *testing.T) {
	// US entities use Coupa even for categories with no dedicated rule.
	got := Route(models.IntentCatalogPurchase, ctxWith("US02", models.CategoryFacilitiesOffice))

	assert.Equal(t, models.BackendCoupa, got.System)
	assert.Equal(t, "Entity US02 uses Coupa as primary procurement system", got.Reasoning)
}

func TestRouteSoftwareAnyEntity(t *testing.T) {
	got := Route(models.IntentCatalogPurchase, ctxWith("RO01", models.CategoryITSoftware))

	assert.Equal(t, models.BackendCoupa, got.System)
	assert.Equal(t, "Software and SaaS subscriptions are managed through Coupa", got.Reasoning)
}

func TestRouteFallbackLocalERP(t *testing.T) {
	got := Route(models.IntentCatalogPurchase, ctxWith("RO01", models.CategoryFacilitiesOffice))

	assert.Equal(t, models.BackendLocalERP, got.System)
	assert.Equal(t, "No specific routing rule matched - defaulting to Local ERP for entity RO01", got.Reasoning)
}

func TestRouteAlwaysReturnsDecision(t *testing.T) {
	intents := []models.IntentType{
		models.IntentCatalogPurchase,
		models.IntentContractCallOff,
		models.IntentServicesSOW,
		models.IntentNeedsSourcing,
		models.IntentStatusQuery,
		models.IntentListQuery,
		models.IntentUnknown,
	}
	categories := []models.Category{
		models.CategoryITHardware,
		models.CategoryITSoftware,
		models.CategoryMarketingServices,
		models.CategoryConsultingServices,
		models.CategoryFacilitiesOffice,
		models.CategoryLegalServices,
		models.CategoryUnknown,
	}

	for _, intent := range intents {
		for _, category := range categories {
			got := Route(intent, ctxWith("XX99", category))

			assert.NotEmpty(t, got.System)
			assert.NotEmpty(t, got.Reasoning)
		}
	}
}

func TestRoutePriorityOrderStable(t *testing.T) {
	for i := 1; i < len(routingRules); i++ {
		assert.GreaterOrEqual(t, routingRules[i].priority, routingRules[i-1].priority,
			"rules must stay sorted by priority")
	}
}

// ==========================
// Handler Execute Tests
// ==========================

func TestExecuteSuccess(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		IntentType:       models.IntentCatalogPurchase,
		ContextInference: ctxWith("RO01", models.CategoryITHardware),
	})

	require.NoError(t, err)
	assert.Equal(t, models.BackendSAPMM, output.BackendRouting.System)
}

func TestExecuteInvalidInput(t *testing.T) {
	h := newTestHandler(t)

	t.Run("nil input", func(t *testing.T) {
		_, err := h.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilInput)
	})

	t.Run("missing intent", func(t *testing.T) {
		_, err := h.Execute(context.Background(), &Input{})
		assert.ErrorIs(t, err, ErrMissingIntent)
	})
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkRoute(b *testing.B) {
	ctx := ctxWith("RO01", models.CategoryITHardware)
	for i := 0; i < b.N; i++ {
		Route(models.IntentCatalogPurchase, ctx)
	}
}
