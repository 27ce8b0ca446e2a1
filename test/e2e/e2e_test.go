// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/models"
	"guided-buying-workers/internal/store"
	"guided-buying-workers/pkg/registry"

	classifyintent "guided-buying-workers/internal/workers/intake/classify-intent"
	createrequisition "guided-buying-workers/internal/workers/intake/create-requisition"
	infercontext "guided-buying-workers/internal/workers/intake/infer-context"
	lookuprequisition "guided-buying-workers/internal/workers/intake/lookup-requisition"
	routebackend "guided-buying-workers/internal/workers/intake/route-backend"

	draftfreetextitem "guided-buying-workers/internal/workers/catalog/draft-free-text-item"
	searchcatalog "guided-buying-workers/internal/workers/catalog/search-catalog"

	buildapprovalpath "guided-buying-workers/internal/workers/workflow/build-approval-path"
	suggestcontracts "guided-buying-workers/internal/workers/workflow/suggest-contracts"
	validaterequisition "guided-buying-workers/internal/workers/workflow/validate-requisition"
)

var (
	zeebeClient zbc.Client
	zapLog      *zap.Logger
)

func TestMain(m *testing.M) {
	if os.Getenv("E2E_TESTS") != "true" {
		fmt.Println("E2E_TESTS not set, skipping e2e suite")
		os.Exit(0)
	}

	gateway := os.Getenv("ZEEBE_ADDRESS")
	if gateway == "" {
		gateway = "localhost:26500"
	}

	var err error
	zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         gateway,
		UsePlaintextConnection: true,
	})
	if err != nil {
		panic(fmt.Sprintf("❌ Failed to connect to Zeebe: %v", err))
	}

	zapLog, _ = zap.NewProduction()

	code := m.Run()

	zeebeClient.Close()
	os.Exit(code)
}

func TestZeebeConnectivity(t *testing.T) {
	t.Log("🔍 Checking Zeebe connectivity...")

	_, err := zeebeClient.NewTopologyCommand().Send(context.Background())
	require.NoError(t, err, "❌ Zeebe topology request failed")
	t.Log("✅ Zeebe connected")
}

// TestGuidedBuyingJourney runs the full requester journey through the
// worker handlers: intake, catalog search, drafting, validation,
// approvals and contract suggestions, plus a status lookup at the end.
func TestGuidedBuyingJourney(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log := logger.NewTestLogger(t)
	reqStore := store.NewRequisitionStore()

	t.Log("🚀 Starting guided buying journey...")

	// --- 1. Intake: classify, infer, route ---
	message := "I need 15 laptops for the new Bucharest office ASAP"

	ciOut, err := classifyintent.NewHandler(&classifyintent.Config{Timeout: 5 * time.Second}, log).
		Execute(ctx, &classifyintent.Input{Message: message})
	require.NoError(t, err)
	assert.Equal(t, models.IntentCatalogPurchase, ciOut.IntentClassification.Type)

	icOut, err := infercontext.NewHandler(&infercontext.Config{Timeout: 5 * time.Second}, log).
		Execute(ctx, &infercontext.Input{Message: message, PersonaID: "persona-1"})
	require.NoError(t, err)
	assert.Equal(t, "RO01", icOut.ContextInference.Entity)
	assert.Equal(t, models.CategoryITHardware, icOut.ContextInference.Category)
	assert.Equal(t, models.UrgencyHigh, icOut.ContextInference.Urgency)
	assert.Equal(t, "ASAP", icOut.ContextInference.NeededBy)

	rbOut, err := routebackend.NewHandler(&routebackend.Config{Timeout: 5 * time.Second}, log).
		Execute(ctx, &routebackend.Input{
			IntentType:       ciOut.IntentClassification.Type,
			ContextInference: icOut.ContextInference,
		})
	require.NoError(t, err)
	assert.Equal(t, models.BackendSAPMM, rbOut.BackendRouting.System)
	t.Log("✅ Intake pipeline: catalog_purchase / IT Hardware / SAP_MM")

	// --- 2. Create and look up the requisition ---
	crHandler := createrequisition.NewHandler(&createrequisition.Config{Timeout: 5 * time.Second}, reqStore, log)
	crOut, err := crHandler.Execute(ctx, &createrequisition.Input{Message: message, PersonaID: "persona-1"})
	require.NoError(t, err)
	assert.Equal(t, "PR-0001", crOut.PRNumber)
	require.Len(t, crOut.Requisition.LineItems, 1)
	assert.Equal(t, 15, crOut.Requisition.LineItems[0].Quantity)

	lrHandler := lookuprequisition.NewHandler(&lookuprequisition.Config{Timeout: 5 * time.Second}, reqStore, log)
	lrOut, err := lrHandler.Execute(ctx, &lookuprequisition.Input{Message: "Where is PR-0001?"})
	require.NoError(t, err)
	assert.True(t, lrOut.Found)
	assert.Equal(t, crOut.Requisition.ID, lrOut.Requisition.ID)
	t.Log("✅ Requisition created and found: " + crOut.PRNumber)

	// --- 3. Catalog search and free-text drafting ---
	scHandler := searchcatalog.NewHandler(&searchcatalog.Config{
		Timeout:    5 * time.Second,
		MaxResults: 8,
	}, log)
	scOut, err := scHandler.Execute(ctx, &searchcatalog.Input{Query: "3 Dell laptops"})
	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeGoods, scOut.Metadata.ItemType)
	require.NotEmpty(t, scOut.Results)
	assert.Equal(t, "cat-003", scOut.Results[0].Item.ID)

	dftOut, err := draftfreetextitem.NewHandler(&draftfreetextitem.Config{Timeout: 5 * time.Second}, log).
		Execute(ctx, &draftfreetextitem.Input{Query: "I need a conference booth for $12,500 by March 15"})
	require.NoError(t, err)
	require.NotNil(t, dftOut.Draft.EstimatedValue)
	assert.InDelta(t, 12500.0, *dftOut.Draft.EstimatedValue, 0.001)
	assert.Equal(t, "by March 15", dftOut.Draft.DesiredDeliveryDate)
	t.Log("✅ Catalog search and free-text drafting")

	// --- 4. Validation, approvals, contracts ---
	total := 13500.0
	items := []models.DraftLineItem{{
		LineItem: models.LineItem{
			Description: message,
			Quantity:    15,
			TotalPrice:  &total,
		},
		PreferredFlag: true,
	}}

	vrOut, err := validaterequisition.NewHandler(&validaterequisition.Config{Timeout: 5 * time.Second}, log).
		Execute(ctx, &validaterequisition.Input{LineItems: items})
	require.NoError(t, err)
	assert.True(t, vrOut.Passed)

	bapOut, err := buildapprovalpath.NewHandler(&buildapprovalpath.Config{Timeout: 5 * time.Second}, log).
		Execute(ctx, &buildapprovalpath.Input{LineItems: items})
	require.NoError(t, err)
	assert.Len(t, bapOut.ApprovalPath, 3, "13.5k total needs procurement review")

	sgOut, err := suggestcontracts.NewHandler(&suggestcontracts.Config{Timeout: 5 * time.Second}, log).
		Execute(ctx, &suggestcontracts.Input{SupplierName: "Deloitte"})
	require.NoError(t, err)
	require.NotEmpty(t, sgOut.Contracts)
	assert.Equal(t, "Deloitte", sgOut.Contracts[0].Supplier)
	t.Log("✅ Validation, approval path and contract suggestions")

	t.Log("✅ ALL STEPS PASSED: guided buying journey complete!")
}

// TestRegistryCoversAllWorkers checks every registered handler task type
// has a registry entry with a matching output schema.
func TestRegistryCoversAllWorkers(t *testing.T) {
	reg, err := registry.LoadRegistry("../../configs/activity-registry.json")
	require.NoError(t, err)
	require.NoError(t, reg.Validate())

	taskTypes := []string{
		classifyintent.TaskType,
		infercontext.TaskType,
		routebackend.TaskType,
		createrequisition.TaskType,
		lookuprequisition.TaskType,
		searchcatalog.TaskType,
		draftfreetextitem.TaskType,
		validaterequisition.TaskType,
		buildapprovalpath.TaskType,
		suggestcontracts.TaskType,
	}
	for _, taskType := range taskTypes {
		_, ok := reg.FindByTaskType(taskType)
		assert.True(t, ok, "registry missing %s", taskType)
	}

	v := registry.NewOutputValidator(reg)
	err = v.ValidateOutput(classifyintent.TaskType, map[string]interface{}{
		"intentClassification": map[string]interface{}{
			"type":            "catalog_purchase",
			"confidence":      "high",
			"confidenceScore": 0.72,
		},
	})
	assert.NoError(t, err)
}
