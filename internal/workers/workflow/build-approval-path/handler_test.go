// internal/workers/workflow/build-approval-path/handler_test.go
package buildapprovalpath

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

func floatPtr(v float64) *float64 { return &v }

// ==========================
// Approval Path Tests
// ==========================

func TestBuildPathSmallRequest(t *testing.T) {
	path := BuildPath(5000)

	require.Len(t, path, 2)
	assert.Equal(t, "Manager", path[0].Role)
	assert.Equal(t, "Sarah Johnson", path[0].ApproverName)
	assert.Equal(t, 1, path[0].Order)
	assert.Equal(t, "Cost Center Owner", path[1].Role)
	assert.Equal(t, "Michael Chen", path[1].ApproverName)
	assert.Equal(t, 2, path[1].Order)
}

func TestBuildPathLargeRequestAddsProcurement(t *testing.T) {
	path := BuildPath(13500)

	require.Len(t, path, 3)
	assert.Equal(t, "Procurement", path[2].Role)
	assert.Equal(t, "Emily Rodriguez", path[2].ApproverName)
	assert.Equal(t, 3, path[2].Order)
}

func TestBuildPathThresholdIsExclusive(t *testing.T) {
	assert.Len(t, BuildPath(10000), 2)
	assert.Len(t, BuildPath(10000.01), 3)
}

func TestBuildPathAllStepsPending(t *testing.T) {
	for _, step := range BuildPath(100000) {
		assert.Equal(t, models.ApprovalPending, step.Status)
	}
}

// ==========================
// Handler Execute Tests
// ==========================

func TestExecuteFromLineItems(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		LineItems: []models.DraftLineItem{
			{LineItem: models.LineItem{Quantity: 15, TotalPrice: floatPtr(13500)}},
		},
	})

	require.NoError(t, err)
	assert.Len(t, output.ApprovalPath, 3)
}

func TestExecuteFromTotalValue(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{TotalValue: floatPtr(800)})

	require.NoError(t, err)
	assert.Len(t, output.ApprovalPath, 2)
}

func TestExecuteInvalidInput(t *testing.T) {
	h := newTestHandler(t)

	t.Run("nil input", func(t *testing.T) {
		_, err := h.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilInput)
	})

	t.Run("nothing to size", func(t *testing.T) {
		_, err := h.Execute(context.Background(), &Input{})
		assert.ErrorIs(t, err, ErrNoValue)
	})
}
