// internal/workers/intake/create-requisition/handler_test.go
package createrequisition

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	cerrors "guided-buying-workers/internal/common/errors"
	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/models"
	"guided-buying-workers/internal/store"
	infercontext "guided-buying-workers/internal/workers/intake/infer-context"

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
	return NewHandler(createTestConfig(), store.NewRequisitionStore(), logger.NewTestLogger(t))
}

func anaPopescu() models.Persona {
	return models.Persona{
		ID:           "persona-1",
		Name:         "Ana Popescu",
		Role:         "IT Project Manager",
		Entity:       "RO01",
		Region:       models.RegionCEE,
		Location:     "Bucharest",
		BusinessUnit: "IT",
	}
}

// ==========================
// Assembly Tests
// ==========================

func TestAssembleLaptopRequest(t *testing.T) {
	pr := Assemble("I need 15 laptops for the new Bucharest office ASAP", anaPopescu(), time.Now())

	assert.Equal(t, models.IntentCatalogPurchase, pr.IntentClassification.Type)
	assert.Equal(t, models.CategoryITHardware, pr.ContextInference.Category)
	assert.Equal(t, models.UrgencyHigh, pr.ContextInference.Urgency)
	assert.Equal(t, "ASAP", pr.ContextInference.NeededBy)
	assert.Equal(t, "RO01", pr.ContextInference.Entity)
	assert.Equal(t, models.BackendSAPMM, pr.BackendRouting.System)
	assert.Equal(t, models.PRStatusDraft, pr.Status)
	assert.NotEmpty(t, pr.ID)
	assert.Empty(t, pr.PRNumber, "PR number is assigned on persist")

	require.Len(t, pr.LineItems, 1)
	item := pr.LineItems[0]
	assert.Equal(t, 15, item.Quantity)
	assert.Equal(t, "EA", item.UnitOfMeasure)
	assert.Equal(t, "ACME_LAPTOPS", item.SupplierName)
	require.NotNil(t, item.UnitPrice)
	require.NotNil(t, item.TotalPrice)
	assert.InDelta(t, 900.0, *item.UnitPrice, 0.001)
	assert.InDelta(t, 13500.0, *item.TotalPrice, 0.001)
}

func TestAssembleTimestamps(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	pr := Assemble("I need 2 monitors", anaPopescu(), now)

	assert.Equal(t, "2025-03-14T09:30:00Z", pr.CreatedAt)
	assert.Equal(t, pr.CreatedAt, pr.UpdatedAt)
}

func TestBuildLineItemUnknownCategory(t *testing.T) {
	inference := models.ContextInference{Category: models.CategoryUnknown}
	item := BuildLineItem("7 xyzzy flibbers", inference)

	assert.Equal(t, 7, item.Quantity)
	assert.Equal(t, "EA", item.UnitOfMeasure)
	assert.Nil(t, item.UnitPrice)
	assert.Nil(t, item.TotalPrice)
	assert.Empty(t, item.SupplierName)
}

func TestBuildLineItemDefaultQuantity(t *testing.T) {
	inference := models.ContextInference{Category: models.CategoryMarketingServices}
	item := BuildLineItem("Renew our marketing agency retainer", inference)

	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "MONTH", item.UnitOfMeasure)
	assert.Equal(t, "BRIGHT_ADS", item.SupplierName)
	require.NotNil(t, item.TotalPrice)
	assert.InDelta(t, 3000.0, *item.TotalPrice, 0.001)
}

func TestBuildLineItemTruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("laptop ", 30)
	item := BuildLineItem(long, models.ContextInference{Category: models.CategoryUnknown})

	assert.Len(t, item.Description, maxDescriptionLength+3)
	assert.True(t, strings.HasSuffix(item.Description, "..."))
}

func TestBuildLineItemTruncatesOnRuneBoundaries(t *testing.T) {
	long := strings.Repeat("Bürostühle früh bestellen ", 10)
	item := BuildLineItem(long, models.ContextInference{Category: models.CategoryUnknown})

	assert.True(t, utf8.ValidString(item.Description))
	assert.Equal(t, maxDescriptionLength+3, utf8.RuneCountInString(item.Description))
	assert.True(t, strings.HasSuffix(item.Description, "..."))
}

func TestBuildLineItemKeepsShortDescriptions(t *testing.T) {
	item := BuildLineItem("  I need 2 monitors  ", models.ContextInference{Category: models.CategoryUnknown})

	assert.Equal(t, "I need 2 monitors", item.Description)
}

// ==========================
// Handler Execute Tests
// ==========================

func TestExecuteAssignsSequentialNumbers(t *testing.T) {
	h := newTestHandler(t)

	first, err := h.Execute(context.Background(), &Input{
		Message:   "I need 15 laptops for the new Bucharest office ASAP",
		PersonaID: "persona-1",
	})
	require.NoError(t, err)

	second, err := h.Execute(context.Background(), &Input{
		Message:   "Order 5 chairs for the office",
		PersonaID: "persona-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "PR-0001", first.PRNumber)
	assert.Equal(t, "PR-0002", second.PRNumber)
	assert.Equal(t, first.PRNumber, first.Requisition.PRNumber)
	assert.Equal(t, 2, h.store.Count())
}

func TestExecutePersistsForLookup(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Message:   "I need 3 laptops",
		PersonaID: "persona-1",
	})
	require.NoError(t, err)

	stored, ok := h.store.GetByNumber(output.PRNumber)
	require.True(t, ok)
	assert.Equal(t, output.Requisition.ID, stored.ID)
	assert.Equal(t, "I need 3 laptops", stored.OriginalMessage)
}

func TestExecuteInlinePersonaWins(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Message:   "I need 3 laptops",
		PersonaID: "persona-1",
		Persona: &models.Persona{
			ID:     "persona-x",
			Name:   "Maria Schmidt",
			Entity: "DE01",
			Region: models.RegionEMEA,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "DE01", output.Requisition.ContextInference.Entity)
	assert.Equal(t, "Maria Schmidt", output.Requisition.RequestingPersona.Name)
}

func TestExecuteInvalidInput(t *testing.T) {
	h := newTestHandler(t)

	t.Run("nil input", func(t *testing.T) {
		_, err := h.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilInput)
	})

	t.Run("empty message", func(t *testing.T) {
		_, err := h.Execute(context.Background(), &Input{Message: "   ", PersonaID: "persona-1"})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("unknown persona", func(t *testing.T) {
		_, err := h.Execute(context.Background(), &Input{Message: "I need 3 laptops", PersonaID: "persona-999"})
		assert.Error(t, err)
	})
}

// ==========================
// Error Wrapping Tests
// ==========================

func TestWrapErrorMapsMissingPersona(t *testing.T) {
	h := newTestHandler(t)

	stdErr := h.wrapError(&Input{PersonaID: "persona-999"}, infercontext.ErrNoPersona)
	assert.Equal(t, cerrors.ErrCodePersonaNotFound, stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Contains(t, stdErr.Details, "persona-999")
}

func TestWrapErrorDefaultsToCreateFailed(t *testing.T) {
	h := newTestHandler(t)

	stdErr := h.wrapError(&Input{}, ErrNilStore)
	assert.Equal(t, cerrors.ErrCodeRequisitionCreateFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkAssemble(b *testing.B) {
	persona := anaPopescu()
	for i := 0; i < b.N; i++ {
		Assemble("I need 15 laptops for the new Bucharest office ASAP", persona, time.Now())
	}
}
