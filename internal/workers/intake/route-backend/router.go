// internal/workers/intake/route-backend/router.go
package routebackend

import (
	"fmt"
	"strings"

	"guided-buying-workers/internal/models"
)

// routingRule matches a classified request against a target backend system.
// A nil predicate field means "any value".
type routingRule struct {
	priority  int
	matches   func(intent models.IntentType, ctx models.ContextInference) bool
	system    models.BackendSystem
	reasoning func(ctx models.ContextInference) string
}

// routingRules is ordered by ascending priority; the first matching rule wins.
// Ties on priority resolve in declaration order.
var routingRules = []routingRule{
	{
		priority: 1,
		matches: func(intent models.IntentType, _ models.ContextInference) bool {
			return intent == models.IntentNeedsSourcing
		},
		system: models.BackendSourcingHandOff,
		reasoning: func(_ models.ContextInference) string {
			return "RFP/RFQ/tender requests are routed to the sourcing team for supplier selection"
		},
	},
	{
		priority: 2,
		matches: func(_ models.IntentType, ctx models.ContextInference) bool {
			return ctx.Category == models.CategoryITHardware && ctx.Entity == "RO01"
		},
		system: models.BackendSAPMM,
		reasoning: func(ctx models.ContextInference) string {
			return fmt.Sprintf("IT Hardware purchases for entity %s are processed through SAP Materials Management", ctx.Entity)
		},
	},
	{
		priority: 2,
		matches: func(_ models.IntentType, ctx models.ContextInference) bool {
			return ctx.Category == models.CategoryMarketingServices && ctx.Entity == "US01"
		},
		system: models.BackendCoupa,
		reasoning: func(ctx models.ContextInference) string {
			return fmt.Sprintf("Marketing Services for entity %s are managed via Coupa", ctx.Entity)
		},
	},
	{
		priority: 3,
		matches: func(_ models.IntentType, ctx models.ContextInference) bool {
			return ctx.Category == models.CategoryConsultingServices
		},
		system: models.BackendCoupa,
		reasoning: func(_ models.ContextInference) string {
			return "Consulting and professional services are procured through Coupa"
		},
	},
	{
		priority: 4,
		matches: func(_ models.IntentType, ctx models.ContextInference) bool {
			return strings.HasPrefix(ctx.Entity, "US")
		},
		system: models.BackendCoupa,
		reasoning: func(ctx models.ContextInference) string {
			return fmt.Sprintf("Entity %s uses Coupa as primary procurement system", ctx.Entity)
		},
	},
	{
		priority: 4,
		matches: func(_ models.IntentType, ctx models.ContextInference) bool {
			return ctx.Category == models.CategoryITSoftware
		},
		system: models.BackendCoupa,
		reasoning: func(_ models.ContextInference) string {
			return "Software and SaaS subscriptions are managed through Coupa"
		},
	},
	{
		priority: 999,
		matches: func(_ models.IntentType, _ models.ContextInference) bool {
			return true
		},
		system: models.BackendLocalERP,
		reasoning: func(ctx models.ContextInference) string {
			return fmt.Sprintf("No specific routing rule matched - defaulting to Local ERP for entity %s", ctx.Entity)
		},
	},
}

// Route picks the target backend system for a classified and context-enriched
// request. The final rule is a catch-all, so Route always returns a decision.
func Route(intent models.IntentType, ctx models.ContextInference) models.BackendRouting {
	for _, rule := range routingRules {
		if rule.matches(intent, ctx) {
			return models.BackendRouting{
				System:    rule.system,
				Reasoning: rule.reasoning(ctx),
			}
		}
	}
	// Unreachable: the catch-all rule always matches.
	return models.BackendRouting{
		System:    models.BackendLocalERP,
		Reasoning: fmt.Sprintf("No specific routing rule matched - defaulting to Local ERP for entity %s", ctx.Entity),
	}
}
