// internal/workers/catalog/search-catalog/handler_test.go
package searchcatalog

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
		Timeout:     3 * time.Second,
		SearchDelay: 0,
		MaxResults:  8,
	}
}

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(createTestConfig(), logger.NewTestLogger(t))
}

func resultIDs(results []models.SearchResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Item.ID)
	}
	return ids
}

// ==========================
// Item Type Classification Tests
// ==========================

func TestClassifyItemType(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.ItemType
	}{
		{"plain goods", "10 office chairs", models.ItemTypeGoods},
		{"laptop", "Dell Latitude laptop", models.ItemTypeGoods},
		{"consulting", "SAP consulting engagement", models.ItemTypeService},
		{"training", "security training for the team", models.ItemTypeService},
		{"maintenance", "HVAC maintenance contract", models.ItemTypeService},
		{"vendor name implies service", "Salesforce rollout", models.ItemTypeService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyItemType(tt.query))
		})
	}
}

// ==========================
// Quantity Inference Tests
// ==========================

func TestInferQuantity(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"leading numeral", "10 chairs", 10},
		{"numeral mid-query ignored", "chairs for 10 people", 1},
		{"written number", "five monitors", 5},
		{"written number capitalized", "Ten laptops", 10},
		{"no quantity", "office chair", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferQuantity(tt.query))
		})
	}
}

// ==========================
// Ranked Search Tests
// ==========================

func TestSearchDellLatitude(t *testing.T) {
	results := Search("Dell Latitude", 8)

	require.NotEmpty(t, results)
	assert.Equal(t, "cat-003", results[0].Item.ID)
	assert.Equal(t, []string{"cat-003"}, resultIDs(results))
}

func TestSearchLaptopRanksPreferredFirst(t *testing.T) {
	results := Search("laptop", 8)

	require.Len(t, results, 2)
	assert.Equal(t, "cat-003", results[0].Item.ID)
	assert.Equal(t, "cat-004", results[1].Item.ID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchNameMatchOutranksPreferredBoost(t *testing.T) {
	// cat-002 carries the query in its name; the 1.1x preferred boost on
	// cat-001 does not overcome that.
	results := Search("office chair", 8)

	require.Len(t, results, 2)
	assert.Equal(t, "cat-002", results[0].Item.ID)
	assert.Equal(t, "cat-001", results[1].Item.ID)
}

func TestSearchExactNameMatch(t *testing.T) {
	results := Search("ErgoChair Pro 3000", 8)

	require.NotEmpty(t, results)
	assert.Equal(t, "cat-001", results[0].Item.ID)
	assert.Greater(t, results[0].Score, 150.0)
}

func TestSearchNoMatches(t *testing.T) {
	results := Search("alien spaceship rental", 8)

	assert.Empty(t, results)
}

func TestSearchCapsResults(t *testing.T) {
	results := Search("office desk chair laptop monitor keyboard lamp", 3)

	assert.Len(t, results, 3)
}

func TestSearchScoresDescending(t *testing.T) {
	results := Search("office desk chair laptop monitor keyboard lamp", 8)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

// ==========================
// Simple Search Tests
// ==========================

func TestSimpleSearchKeepsCatalogOrder(t *testing.T) {
	matches := SimpleSearch("laptop")

	require.Len(t, matches, 2)
	assert.Equal(t, "cat-003", matches[0].ID)
	assert.Equal(t, "cat-004", matches[1].ID)
}

func TestSimpleSearchKeywordMatch(t *testing.T) {
	matches := SimpleSearch("desk")

	require.Len(t, matches, 2)
	assert.Equal(t, "cat-006", matches[0].ID)
	assert.Equal(t, "cat-008", matches[1].ID)
}

func TestSimpleSearchCapsAtFive(t *testing.T) {
	// Single-letter query substring-matches most rows by name or description.
	matches := SimpleSearch("o")

	assert.Len(t, matches, 5)
}

func TestSimpleSearchNoMatches(t *testing.T) {
	assert.Empty(t, SimpleSearch("zeppelin"))
}

// ==========================
// Handler Execute Tests
// ==========================

func TestExecuteGoodsQuery(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Query: "3 Dell laptops"})

	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeGoods, output.Metadata.ItemType)
	assert.Equal(t, 3, output.Metadata.Quantity)
	assert.Equal(t, len(output.Results), output.Metadata.ResultCount)
	require.NotEmpty(t, output.Results)
	assert.Equal(t, "cat-003", output.Results[0].Item.ID)
}

func TestExecuteServiceQueryFallsThroughToFreeText(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Query: "SAP implementation consulting"})

	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeFreeText, output.Metadata.ItemType)
	assert.Empty(t, output.Results)
	assert.Equal(t, 0, output.Metadata.ResultCount)
}

func TestExecuteNoMatchesFallsThroughToFreeText(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Query: "alien spaceship rental"})

	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeFreeText, output.Metadata.ItemType)
	assert.Empty(t, output.Results)
}

func TestExecuteCancelledContextDuringDelay(t *testing.T) {
	h := NewHandler(&Config{
		Timeout:     3 * time.Second,
		SearchDelay: 500 * time.Millisecond,
		MaxResults:  8,
	}, logger.NewTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Execute(ctx, &Input{Query: "laptop"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteInvalidInput(t *testing.T) {
	h := newTestHandler(t)

	t.Run("nil input", func(t *testing.T) {
		_, err := h.Execute(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilInput)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := h.Execute(context.Background(), &Input{Query: "   "})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkSearch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Search("Dell Latitude laptop", 8)
	}
}
