// internal/data/catalog.go
package data

import "guided-buying-workers/internal/models"

// CatalogItems is the static purchasable catalog. The slice is read-only;
// callers must not mutate rows.
var CatalogItems = []models.CatalogItem{
	{
		ID:            "cat-001",
		Name:          "ErgoChair Pro 3000",
		Description:   "Premium ergonomic office chair with lumbar support and adjustable armrests",
		Category:      models.CategoryFacilitiesOffice,
		UnitPrice:     450,
		Currency:      "USD",
		UnitOfMeasure: "EA",
		SupplierID:    "OFFICE_DEPOT",
		SupplierName:  "Office Depot",
		Preferred:     true,
		LeadTimeDays:  7,
		Keywords:      []string{"chair", "ergonomic", "office", "furniture", "seating"},
		Specs:         map[string]string{"Weight Capacity": "300 lbs", "Warranty": "5 years"},
	},
	{
		ID:            "cat-002",
		Name:          "Comfort Plus Office Chair",
		Description:   "Standard office chair with basic ergonomic features",
		Category:      models.CategoryFacilitiesOffice,
		UnitPrice:     250,
		Currency:      "USD",
		UnitOfMeasure: "EA",
		SupplierID:    "GENERIC_SUPPLIER",
		SupplierName:  "Generic Office Supplies",
		Preferred:     false,
		LeadTimeDays:  14,
		Keywords:      []string{"chair", "office", "furniture", "seating"},
		Specs:         map[string]string{"Warranty": "2 years"},
	},
	{
		ID:            "cat-003",
		Name:          "Dell Latitude 5430 Laptop",
		Description:   "14-inch business laptop, Intel i7, 16GB RAM, 512GB SSD",
		Category:      models.CategoryITHardware,
		UnitPrice:     1200,
		Currency:      "USD",
		UnitOfMeasure: "EA",
		SupplierID:    "ACME_LAPTOPS",
		SupplierName:  "Dell Direct",
		Preferred:     true,
		LeadTimeDays:  5,
		Keywords:      []string{"laptop", "computer", "dell", "latitude", "pc", "notebook", "5430"},
		Specs:         map[string]string{"Processor": "Intel i7", "RAM": "16GB", "Storage": "512GB SSD"},
	},
	{
		ID:            "cat-004",
		Name:          "HP EliteBook 840",
		Description:   "14-inch business laptop, Intel i7, 16GB RAM, 512GB SSD",
		Category:      models.CategoryITHardware,
		UnitPrice:     1350,
		Currency:      "USD",
		UnitOfMeasure: "EA",
		SupplierID:    "HP_DIRECT",
		SupplierName:  "HP Direct",
		Preferred:     false,
		LeadTimeDays:  10,
		Keywords:      []string{"laptop", "computer", "hp", "elitebook", "pc", "notebook"},
		Specs:         map[string]string{"Processor": "Intel i7", "RAM": "16GB", "Storage": "512GB SSD"},
	},
	{
		ID:            "cat-005",
		Name:          "LG 27-inch Monitor",
		Description:   "27-inch 4K UHD monitor with USB-C connectivity",
		Category:      models.CategoryITHardware,
		UnitPrice:     400,
		Currency:      "USD",
		UnitOfMeasure: "EA",
		SupplierID:    "ACME_LAPTOPS",
		SupplierName:  "LG Electronics",
		Preferred:     true,
		LeadTimeDays:  3,
		Keywords:      []string{"monitor", "display", "screen", "lg", "4k"},
		Specs:         map[string]string{"Resolution": "4K UHD", "Size": "27 inches", "Connectivity": "USB-C"},
	},
	{
		ID:            "cat-006",
		Name:          "Standing Desk Pro",
		Description:   "Electric height-adjustable standing desk, 60x30 inches",
		Category:      models.CategoryFacilitiesOffice,
		UnitPrice:     650,
		Currency:      "USD",
		UnitOfMeasure: "EA",
		SupplierID:    "OFFICE_DEPOT",
		SupplierName:  "Office Depot",
		Preferred:     true,
		LeadTimeDays:  10,
		Keywords:      []string{"desk", "standing", "adjustable", "furniture", "workstation"},
		Specs:         map[string]string{"Size": "60x30 inches", "Height Range": "25-50 inches"},
	},
	{
		ID:            "cat-007",
		Name:          "Wireless Keyboard & Mouse",
		Description:   "Logitech MX Keys and MX Master 3 bundle",
		Category:      models.CategoryITHardware,
		UnitPrice:     180,
		Currency:      "USD",
		UnitOfMeasure: "EA",
		SupplierID:    "ACME_LAPTOPS",
		SupplierName:  "Logitech",
		Preferred:     true,
		LeadTimeDays:  2,
		Keywords:      []string{"keyboard", "mouse", "logitech", "wireless", "accessories"},
		Specs:         map[string]string{"Type": "Wireless", "Battery Life": "5 months"},
	},
	{
		ID:            "cat-008",
		Name:          "Desk Lamp LED",
		Description:   "Adjustable LED desk lamp with USB charging port",
		Category:      models.CategoryFacilitiesOffice,
		UnitPrice:     65,
		Currency:      "USD",
		UnitOfMeasure: "EA",
		SupplierID:    "OFFICE_DEPOT",
		SupplierName:  "Office Depot",
		Preferred:     true,
		LeadTimeDays:  3,
		Keywords:      []string{"lamp", "light", "led", "desk", "lighting"},
		Specs:         map[string]string{"Brightness": "Adjustable", "Features": "USB charging port"},
	},
}
