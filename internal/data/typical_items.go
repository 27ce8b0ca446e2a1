// internal/data/typical_items.go
package data

import "guided-buying-workers/internal/models"

// TypicalItems maps categories to the default supplier and price used
// when a requisition line is derived without a concrete catalog pick.
var TypicalItems = []models.TypicalItem{
	{Category: models.CategoryITHardware, SupplierName: "ACME_LAPTOPS", TypicalUnitPrice: 900, UnitOfMeasure: "EA"},
	{Category: models.CategoryITSoftware, SupplierName: "CLOUD_SOFT", TypicalUnitPrice: 150, UnitOfMeasure: "LICENSE"},
	{Category: models.CategoryMarketingServices, SupplierName: "BRIGHT_ADS", TypicalUnitPrice: 3000, UnitOfMeasure: "MONTH"},
	{Category: models.CategoryConsultingServices, SupplierName: "GLOBEX_CONSULTING", TypicalUnitPrice: 1200, UnitOfMeasure: "DAY"},
	{Category: models.CategoryFacilitiesOffice, SupplierName: "OFFICE_DEPOT", TypicalUnitPrice: 200, UnitOfMeasure: "EA"},
}

// TypicalItemForCategory returns the default line-item defaults for a
// category, or ok=false when the category has no entry.
func TypicalItemForCategory(category models.Category) (models.TypicalItem, bool) {
	for _, item := range TypicalItems {
		if item.Category == category {
			return item, true
		}
	}
	return models.TypicalItem{}, false
}
