// internal/workers/catalog/search-catalog/search.go
package searchcatalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"guided-buying-workers/internal/data"
	"guided-buying-workers/internal/models"
)

// serviceKeywords flag a query as a service request rather than a goods
// purchase. Service requests skip the catalog and go to free-text drafting.
var serviceKeywords = []string{
	"consulting", "consultation", "consultancy",
	"service", "services", "support", "maintenance",
	"training", "workshop", "implementation",
	"audit", "assessment", "analysis",
	"development", "project", "rollout",
	"sap", "oracle", "salesforce", "workday",
}

// stopWords are dropped from the query before per-word scoring.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true,
}

var writtenNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

var leadingQuantityRe = regexp.MustCompile(`^(\d+)\s`)

// ClassifyItemType decides whether a query asks for goods or a service.
func ClassifyItemType(query string) models.ItemType {
	queryLower := strings.ToLower(query)
	for _, keyword := range serviceKeywords {
		if strings.Contains(queryLower, keyword) {
			return models.ItemTypeService
		}
	}
	return models.ItemTypeGoods
}

// InferQuantity reads a leading numeral or written number from the query.
func InferQuantity(query string) int {
	if m := leadingQuantityRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	queryLower := strings.ToLower(query)
	for word, n := range writtenNumbers {
		if strings.HasPrefix(queryLower, word+" ") {
			return n
		}
	}
	return 1
}

// Search ranks the catalog against the query and returns the top maxResults
// scored matches. Scoring: exact name match 100, name substring 50,
// description substring 20, then per query word keyword/name/description
// hits, with a 1.1x boost for preferred suppliers. Zero-score items are
// dropped.
func Search(query string, maxResults int) []models.SearchResult {
	queryLower := strings.ToLower(query)
	queryWords := splitQueryWords(queryLower)

	var results []models.SearchResult
	for _, item := range data.CatalogItems {
		score := scoreItem(item, queryLower, queryWords)
		if score > 0 {
			results = append(results, models.SearchResult{Item: item, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// SimpleSearch is the unranked variant: it keeps catalog order and returns
// every item whose name, description, or keywords match the query, capped at
// five results.
func SimpleSearch(query string) []models.CatalogItem {
	queryLower := strings.ToLower(query)

	var words []string
	for _, word := range strings.Fields(queryLower) {
		if len(word) > 2 {
			words = append(words, word)
		}
	}

	var matches []models.CatalogItem
	for _, item := range data.CatalogItems {
		if simpleMatch(item, queryLower, words) {
			matches = append(matches, item)
			if len(matches) == 5 {
				break
			}
		}
	}
	return matches
}

func simpleMatch(item models.CatalogItem, queryLower string, words []string) bool {
	if strings.Contains(strings.ToLower(item.Name), queryLower) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), queryLower) {
		return true
	}
	for _, keyword := range item.Keywords {
		for _, word := range words {
			if strings.Contains(keyword, word) || strings.Contains(word, keyword) {
				return true
			}
		}
	}
	return false
}

func splitQueryWords(queryLower string) []string {
	var words []string
	for _, word := range strings.Fields(queryLower) {
		if len(word) > 2 && !stopWords[word] {
			words = append(words, word)
		}
	}
	return words
}

func scoreItem(item models.CatalogItem, queryLower string, queryWords []string) float64 {
	nameLower := strings.ToLower(item.Name)
	descLower := strings.ToLower(item.Description)

	score := 0.0
	if nameLower == queryLower {
		score += 100
	}
	if strings.Contains(nameLower, queryLower) {
		score += 50
	}
	if strings.Contains(descLower, queryLower) {
		score += 20
	}

	for _, word := range queryWords {
		for _, keyword := range item.Keywords {
			if strings.Contains(keyword, word) {
				score += 10
			}
			if strings.Contains(word, keyword) {
				score += 5
			}
		}
		if strings.Contains(nameLower, word) {
			score += 8
		}
		if strings.Contains(descLower, word) {
			score += 3
		}
	}

	if item.Preferred {
		score *= 1.1
	}
	return score
}
