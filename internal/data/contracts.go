// internal/data/contracts.go
package data

import "guided-buying-workers/internal/models"

// FrameworkContracts are existing callable agreements keyed by entity
// and category, surfaced alongside CLM suggestions for call-offs.
var FrameworkContracts = []models.FrameworkContract{
	{
		ID:           "contract-1",
		Type:         "hardware",
		SupplierName: "ACME_LAPTOPS",
		Entity:       "RO01",
		Category:     models.CategoryITHardware,
		Description:  "IT Hardware supply contract for Romanian entity",
	},
	{
		ID:           "contract-2",
		Type:         "marketing",
		SupplierName: "BRIGHT_ADS",
		Entity:       "US01",
		Category:     models.CategoryMarketingServices,
		Description:  "Marketing agency retainer for US operations",
	},
	{
		ID:           "contract-3",
		Type:         "services",
		SupplierName: "GLOBEX_CONSULTING",
		Entity:       "US01",
		Category:     models.CategoryConsultingServices,
		Description:  "Consulting services framework agreement",
	},
}

// FrameworkContractFor returns the agreement covering (entity, category),
// or ok=false when none exists.
func FrameworkContractFor(entity string, category models.Category) (models.FrameworkContract, bool) {
	for _, c := range FrameworkContracts {
		if c.Entity == entity && c.Category == category {
			return c, true
		}
	}
	return models.FrameworkContract{}, false
}

// CLMContracts are the contract-lifecycle records surfaced to service
// requests for call-off selection.
var CLMContracts = []models.CLMContract{
	{
		ID:            "CLM-2024-001",
		Name:          "Global IT Services Framework Agreement",
		Supplier:      "Accenture",
		SupplierID:    "SUP-ACC-001",
		ContractID:    "FWK-IT-2024-001",
		Category:      "IT Services",
		ValidFrom:     "2024-01-01",
		ValidUntil:    "2027-12-31",
		Region:        "EU",
		RelevanceHint: "Matches category: IT Services, Region: EU",
		Status:        models.ContractActive,
	},
	{
		ID:            "CLM-2023-045",
		Name:          "Professional Services Master Agreement",
		Supplier:      "Deloitte",
		SupplierID:    "SUP-DEL-001",
		ContractID:    "MSA-PS-2023-045",
		Category:      "Professional Services",
		ValidFrom:     "2023-03-15",
		ValidUntil:    "2026-03-14",
		Region:        "Global",
		RelevanceHint: "Matches category: Professional Services, Global coverage",
		Status:        models.ContractActive,
	},
	{
		ID:            "CLM-2024-012",
		Name:          "Consulting Services Framework",
		Supplier:      "PwC",
		SupplierID:    "SUP-PWC-001",
		ContractID:    "CSF-2024-012",
		Category:      "Consulting",
		ValidFrom:     "2024-06-01",
		ValidUntil:    "2025-12-31",
		Region:        "EMEA",
		RelevanceHint: "Matches category: Consulting, EMEA region",
		Status:        models.ContractExpiringSoon,
	},
}
