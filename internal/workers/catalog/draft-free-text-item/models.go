// internal/workers/catalog/draft-free-text-item/models.go
package draftfreetextitem

import "guided-buying-workers/internal/models"

type Input struct {
	Query string `json:"query"`
}

type Output struct {
	Draft models.FreeTextItemDraft `json:"freeTextItemDraft"`
}
