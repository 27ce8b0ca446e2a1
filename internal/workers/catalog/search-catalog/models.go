// internal/workers/catalog/search-catalog/models.go
package searchcatalog

import "guided-buying-workers/internal/models"

type Input struct {
	Query string `json:"query"`
}

type Output struct {
	Metadata models.SearchMetadata `json:"searchMetadata"`
	Results  []models.SearchResult `json:"results"`
}
