// internal/workers/intake/classify-intent/classifier.go
package classifyintent

import (
	"fmt"
	"regexp"
	"strings"

	"guided-buying-workers/internal/models"
)

// intentPattern pairs an intent with its detection signals. Pattern order
// matters: on equal scores the earlier entry wins.
type intentPattern struct {
	intentType models.IntentType
	patterns   []*regexp.Regexp
	keywords   []string
	weight     float64
}

var intentPatterns = []intentPattern{
	// Status queries
	{
		intentType: models.IntentStatusQuery,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)where is pr[-\s]?\d+`),
			regexp.MustCompile(`(?i)status of pr[-\s]?\d+`),
			regexp.MustCompile(`(?i)show me pr[-\s]?\d+`),
		},
		keywords: []string{"where", "status", "show", "pr-", "pr"},
		weight:   1.0,
	},
	// List queries
	{
		intentType: models.IntentListQuery,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)show all.*pr`),
			regexp.MustCompile(`(?i)list.*pr`),
			regexp.MustCompile(`(?i)show.*last.*pr`),
			regexp.MustCompile(`(?i)my pr`),
			regexp.MustCompile(`(?i)all pr`),
		},
		keywords: []string{"show all", "list", "all prs", "my prs", "last"},
		weight:   1.0,
	},
	// Needs sourcing (RFP, RFQ, tender)
	{
		intentType: models.IntentNeedsSourcing,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)rfp|rfq|tender|proposal|bid`),
			regexp.MustCompile(`(?i)new (supplier|vendor)`),
		},
		keywords: []string{"rfp", "rfq", "tender", "proposal", "bid", "new supplier", "new vendor"},
		weight:   0.9,
	},
	// Contract call-off
	{
		intentType: models.IntentContractCallOff,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)renew|retainer|contract|call[-\s]?off`),
		},
		keywords: []string{"renew", "retainer", "contract", "call-off", "existing contract"},
		weight:   0.8,
	},
	// Services/SOW
	{
		intentType: models.IntentServicesSOW,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)sow|statement of work|consulting|implementation|services`),
		},
		keywords: []string{"sow", "statement of work", "consulting", "implementation", "professional services", "agency"},
		weight:   0.7,
	},
	// Catalog purchase (catch-all for buying physical items)
	{
		intentType: models.IntentCatalogPurchase,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(need|buy|purchase|order)\b.*\b\d+\b`),
			regexp.MustCompile(`(?i)laptop|monitor|keyboard|mouse|hardware|chair|desk|office`),
		},
		keywords: []string{"need", "buy", "purchase", "order", "laptop", "monitor", "hardware", "chair", "desk", "office"},
		weight:   0.6,
	},
}

func confidenceLevel(score float64) models.ConfidenceLevel {
	if score >= 0.7 {
		return models.ConfidenceHigh
	}
	if score >= 0.4 {
		return models.ConfidenceMedium
	}
	return models.ConfidenceLow
}

// Classify scores the message against every intent pattern and returns the
// best match. Regex hits count 0.5x the pattern weight, keyword substrings
// 0.1x. A strict greater-than comparison keeps the first (highest priority)
// pattern on ties; a message matching nothing comes back as unknown.
func Classify(message string) models.IntentClassification {
	messageLower := strings.ToLower(message)

	bestType := models.IntentUnknown
	bestScore := 0.0
	var bestMatches []string

	for _, ip := range intentPatterns {
		score := 0.0
		var matches []string

		for _, pattern := range ip.patterns {
			if pattern.MatchString(message) {
				score += 0.5 * ip.weight
				matches = append(matches, fmt.Sprintf("Matched pattern: %s", pattern.String()))
			}
		}

		for _, keyword := range ip.keywords {
			if strings.Contains(messageLower, strings.ToLower(keyword)) {
				score += 0.1 * ip.weight
				matches = append(matches, fmt.Sprintf("Found keyword: %q", keyword))
			}
		}

		if score > bestScore {
			bestType = ip.intentType
			bestScore = score
			bestMatches = matches
		}
	}

	var reasoning []string
	if len(bestMatches) > 0 {
		reasoning = append(reasoning, fmt.Sprintf("Detected as %s", strings.ReplaceAll(string(bestType), "_", " ")))
		if len(bestMatches) > 3 {
			bestMatches = bestMatches[:3]
		}
		reasoning = append(reasoning, bestMatches...)
	} else {
		reasoning = append(reasoning, "Could not determine intent from message")
	}

	level := confidenceLevel(bestScore)
	needsReview := level == models.ConfidenceLow || bestType == models.IntentUnknown
	if needsReview {
		reasoning = append(reasoning, "⚠️ Low confidence - human review recommended")
	}

	return models.IntentClassification{
		Type:             bestType,
		Confidence:       level,
		ConfidenceScore:  bestScore,
		NeedsHumanReview: needsReview,
		Reasoning:        reasoning,
	}
}

// IsQueryIntent reports whether the intent asks about existing requisitions
// rather than creating one.
func IsQueryIntent(intentType models.IntentType) bool {
	return intentType == models.IntentStatusQuery || intentType == models.IntentListQuery
}
