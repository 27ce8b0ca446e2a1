// internal/workers/catalog/draft-free-text-item/draft.go
package draftfreetextitem

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"guided-buying-workers/internal/models"
)

var (
	quantityPrefixRe = regexp.MustCompile(`(?i)^(\d+|one|two|three|four|five|six|seven|eight|nine|ten)\s+`)
	verbPrefixRe     = regexp.MustCompile(`(?i)^(I need|I want|Need|Want|Buy|Purchase|Get me)\s+`)
	budgetRe         = regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
)

// datePhraseRes match common delivery-timeline phrasings; the whole match
// is kept as the delivery date text.
var datePhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)by\s+(end\s+of\s+)?(\w+\s+\d{1,2})`),
	regexp.MustCompile(`(?i)by\s+(\w+\s+\d{4})`),
	regexp.MustCompile(`(?i)in\s+(\d+\s+(?:days?|weeks?|months?))`),
	regexp.MustCompile(`(?i)next\s+(week|month|quarter)`),
}

// knownSuppliers is checked in order; the first brand mentioned in the
// query becomes the preferred supplier.
var knownSuppliers = []string{
	"Dell", "HP", "Lenovo", "Apple", "Microsoft", "Logitech", "LG", "Samsung",
	"Accenture", "Deloitte", "PWC", "KPMG", "EY", "SAP", "Oracle",
}

// Draft pre-fills a free-text item from the raw query: a short item name,
// optional budget, delivery phrase, and a recognized supplier brand.
func Draft(query string) models.FreeTextItemDraft {
	draft := models.FreeTextItemDraft{
		ItemName:          ExtractItemName(query),
		Description:       strings.TrimSpace(query),
		Currency:          "USD",
		PreferredSupplier: ExtractSupplierName(query),
	}

	if m := budgetRe.FindStringSubmatch(query); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			draft.EstimatedValue = &amount
		}
	}

	if phrase := extractDatePhrase(query); phrase != "" {
		draft.DesiredDeliveryDate = phrase
	}

	return draft
}

// ExtractItemName trims a leading quantity and imperative prefix, then
// keeps the first five words, capitalized.
func ExtractItemName(query string) string {
	cleaned := quantityPrefixRe.ReplaceAllString(query, "")
	cleaned = verbPrefixRe.ReplaceAllString(cleaned, "")

	words := strings.Fields(cleaned)
	if len(words) > 5 {
		words = words[:5]
	}
	name := strings.Join(words, " ")
	return capitalize(name)
}

// ExtractSupplierName finds the first known brand mentioned in the query.
func ExtractSupplierName(query string) string {
	queryLower := strings.ToLower(query)
	for _, supplier := range knownSuppliers {
		if strings.Contains(queryLower, strings.ToLower(supplier)) {
			return supplier
		}
	}
	return ""
}

func extractDatePhrase(query string) string {
	for _, re := range datePhraseRes {
		if m := re.FindString(query); m != "" {
			return m
		}
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
