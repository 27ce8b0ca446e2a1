// internal/workers/intake/infer-context/inference.go
package infercontext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"guided-buying-workers/internal/models"
)

type categoryPattern struct {
	category models.Category
	keywords []string
	patterns []*regexp.Regexp
}

var categoryPatterns = []categoryPattern{
	{
		category: models.CategoryITHardware,
		keywords: []string{"laptop", "monitor", "keyboard", "mouse", "hardware", "computer", "desktop", "server"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)\d+\s*(laptop|monitor|computer|server)`)},
	},
	{
		category: models.CategoryITSoftware,
		keywords: []string{"license", "subscription", "saas", "software", "platform", "tool", "app"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)software|saas|license|subscription`)},
	},
	{
		category: models.CategoryMarketingServices,
		keywords: []string{"campaign", "retainer", "agency", "marketing", "advertising", "promotion", "brand"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)marketing|advertising|campaign|agency.*retainer`)},
	},
	{
		category: models.CategoryConsultingServices,
		keywords: []string{"sow", "consulting", "consultant", "implementation", "advisory", "professional services"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)consulting|consultant|sow|implementation|advisory`)},
	},
	{
		category: models.CategoryFacilitiesOffice,
		keywords: []string{"chair", "desk", "office supplies", "furniture", "office", "supplies"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\d+\s*(chair|desk|office|furniture)`),
			regexp.MustCompile(`(?i)office\s+supplies`),
		},
	},
	{
		category: models.CategoryLegalServices,
		keywords: []string{"legal", "law", "attorney", "counsel"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)legal|attorney|counsel`)},
	},
}

type urgencyPattern struct {
	level    models.UrgencyLevel
	keywords []string
	patterns []*regexp.Regexp
}

var urgencyPatterns = []urgencyPattern{
	{
		level:    models.UrgencyHigh,
		keywords: []string{"asap", "urgent", "immediately", "emergency", "critical"},
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)asap|urgent|immediately|emergency|critical`)},
	},
	{
		level:    models.UrgencyMedium,
		keywords: []string{"soon", "next month", "q2", "q3", "q4", "quarter", "end of"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)next\s+(month|quarter|week)`),
			regexp.MustCompile(`(?i)by\s+end\s+of`),
			regexp.MustCompile(`(?i)q[1-4]`),
			regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)`),
		},
	},
}

var quantityRe = regexp.MustCompile(`\b(\d+)\b`)

func inferCategory(message string) (models.Category, []string) {
	messageLower := strings.ToLower(message)
	var notes []string
	best := models.CategoryUnknown
	bestScore := 0

	for _, cp := range categoryPatterns {
		score := 0

		for _, re := range cp.patterns {
			if re.MatchString(message) {
				score += 2
				notes = append(notes, fmt.Sprintf("Category %q matched pattern", cp.category))
			}
		}

		for _, keyword := range cp.keywords {
			if strings.Contains(messageLower, keyword) {
				score++
				notes = append(notes, fmt.Sprintf("Found %q → %s", keyword, cp.category))
			}
		}

		if score > bestScore {
			best = cp.category
			bestScore = score
		}
	}

	if bestScore == 0 {
		notes = append(notes, "Could not determine category - marked as Unknown")
	}
	if len(notes) > 3 {
		notes = notes[:3]
	}
	return best, notes
}

func inferUrgency(message string) (models.UrgencyLevel, string, []string) {
	messageLower := strings.ToLower(message)
	var notes []string
	urgency := models.UrgencyLow
	neededBy := "Not specified"

	// Tiers are checked in priority order; keywords before regexes within
	// a tier so the normalized neededBy labels win over raw matches.
	for _, up := range urgencyPatterns {
		for _, keyword := range up.keywords {
			if strings.Contains(messageLower, keyword) {
				urgency = up.level
				notes = append(notes, fmt.Sprintf("Detected urgency %q from keyword %q", up.level, keyword))

				switch {
				case strings.Contains(messageLower, "asap"):
					neededBy = "ASAP"
				case strings.Contains(messageLower, "next month"):
					neededBy = "Next month"
				case strings.Contains(messageLower, "q2"):
					neededBy = "End of Q2"
				case strings.Contains(messageLower, "q3"):
					neededBy = "End of Q3"
				case strings.Contains(messageLower, "q4"):
					neededBy = "End of Q4"
				}
				break
			}
		}

		// The regex pass always runs; its raw match fills neededBy only
		// when the keyword pass produced no normalized label.
		for _, re := range up.patterns {
			if match := re.FindString(message); match != "" {
				urgency = up.level
				if neededBy == "Not specified" {
					neededBy = match
				}
				notes = append(notes, fmt.Sprintf("Extracted timing: %q", match))
				break
			}
		}

		if urgency != models.UrgencyLow {
			break
		}
	}

	if urgency == models.UrgencyLow {
		notes = append(notes, "No urgency indicators found - defaulting to low urgency")
	}
	return urgency, neededBy, notes
}

func extractQuantity(message string) (int, string) {
	if m := quantityRe.FindStringSubmatch(message); m != nil {
		qty, err := strconv.Atoi(m[1])
		if err == nil {
			return qty, fmt.Sprintf("Extracted quantity: %d", qty)
		}
	}
	return 1, "No quantity specified - defaulting to 1"
}

// Infer derives entity, region, location, category, urgency and timing for
// the message. Entity, region and location always come from the persona;
// only category and urgency are inferred from the text.
func Infer(message string, persona models.Persona) models.ContextInference {
	notes := []string{fmt.Sprintf("Using persona defaults: %s, %s", persona.Entity, persona.Location)}

	category, categoryNotes := inferCategory(message)
	notes = append(notes, categoryNotes...)

	urgency, neededBy, urgencyNotes := inferUrgency(message)
	notes = append(notes, urgencyNotes...)

	_, quantityNote := extractQuantity(message)
	notes = append(notes, quantityNote)

	return models.ContextInference{
		Entity:         persona.Entity,
		Region:         persona.Region,
		Location:       persona.Location,
		Category:       category,
		Urgency:        urgency,
		NeededBy:       neededBy,
		InferenceNotes: notes,
	}
}

// ExtractQuantity exposes the shared quantity heuristic for line-item
// derivation.
func ExtractQuantity(message string) int {
	qty, _ := extractQuantity(message)
	return qty
}
