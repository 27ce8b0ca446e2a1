// internal/workers/catalog/draft-free-text-item/handler_test.go
package draftfreetextitem

import (
	"context"
	"testing"
	"time"

	"guided-buying-workers/internal/common/logger"

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

// ==========================
// Item Name Extraction Tests
// ==========================

func TestExtractItemName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"strips quantity", "10 ergonomic chairs with lumbar support for the office", "Ergonomic chairs with lumbar support"},
		{"strips written quantity", "five standing desks", "Standing desks"},
		{"strips verb prefix", "Buy projector mounts", "Projector mounts"},
		{"strips longer prefix", "Get me a coffee machine", "A coffee machine"},
		{"caps at five words", "whiteboard markers assorted colors bulk pack refill", "Whiteboard markers assorted colors bulk"},
		{"capitalizes", "standing desk", "Standing desk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractItemName(tt.query))
		})
	}
}

// ==========================
// Supplier Extraction Tests
// ==========================

func TestExtractSupplierName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"dell", "Dell docking station", "Dell"},
		{"case insensitive", "a LOGITECH webcam", "Logitech"},
		{"consulting brand", "Deloitte advisory engagement", "Deloitte"},
		{"no brand", "standing desk", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSupplierName(tt.query))
		})
	}
}

// ==========================
// Draft Assembly Tests
// ==========================

func TestDraftBudgetExtraction(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{"plain amount", "projector for $500", 500},
		{"thousands separator", "video wall for $12,500", 12500},
		{"cents", "software license for $1,299.99", 1299.99},
		{"space after dollar", "banner printing for $ 750", 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Draft(tt.query)
			require.NotNil(t, draft.EstimatedValue)
			assert.InDelta(t, tt.want, *draft.EstimatedValue, 0.001)
		})
	}
}

func TestDraftNoBudget(t *testing.T) {
	draft := Draft("standing desk for the design team")

	assert.Nil(t, draft.EstimatedValue)
}

func TestDraftDeliveryDatePhrases(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"by month day", "banners by March 15", "by March 15"},
		{"by end of month day", "banners by end of June 30", "by end of June 30"},
		{"relative weeks", "lab equipment in 3 weeks", "in 3 weeks"},
		{"next month", "office plants next month", "next month"},
		{"next quarter", "team offsite next quarter", "next quarter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Draft(tt.query)
			assert.Equal(t, tt.want, draft.DesiredDeliveryDate)
		})
	}
}

func TestDraftDefaults(t *testing.T) {
	draft := Draft("  standing desk  ")

	assert.Equal(t, "Standing desk", draft.ItemName)
	assert.Equal(t, "standing desk", draft.Description)
	assert.Equal(t, "USD", draft.Currency)
	assert.Empty(t, draft.PreferredSupplier)
	assert.Empty(t, draft.DesiredDeliveryDate)
}

func TestDraftFullQuery(t *testing.T) {
	draft := Draft("I need a Dell docking station for $350 by March 15")

	assert.Equal(t, "A Dell docking station for", draft.ItemName)
	assert.Equal(t, "Dell", draft.PreferredSupplier)
	require.NotNil(t, draft.EstimatedValue)
	assert.InDelta(t, 350.0, *draft.EstimatedValue, 0.001)
	assert.Equal(t, "by March 15", draft.DesiredDeliveryDate)
}

// ==========================
// Handler Execute Tests
// ==========================

func TestExecuteSuccess(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Query: "Buy projector mounts"})

	require.NoError(t, err)
	assert.Equal(t, "Projector mounts", output.Draft.ItemName)
}

func TestExecuteInvalidInput(t *testing.T) {
	h := newTestHandler(t)

	t.Run("nil input", func(t *testing.T) {
		_, err := h.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilInput)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := h.Execute(context.Background(), &Input{Query: " "})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})
}
