// internal/workers/workflow/suggest-contracts/suggest.go
package suggestcontracts

import (
	"strings"

	"guided-buying-workers/internal/data"
	"guided-buying-workers/internal/models"
)

// Suggest returns the callable contracts for a service request. Contracts
// whose supplier matches the mentioned supplier rank first; the rest keep
// their catalog order.
func Suggest(supplierName string) []models.CLMContract {
	var matched, rest []models.CLMContract
	for _, contract := range data.CLMContracts {
		if supplierMatches(supplierName, contract.Supplier) {
			matched = append(matched, contract)
		} else {
			rest = append(rest, contract)
		}
	}
	return append(matched, rest...)
}

// supplierMatches compares case-insensitively in both substring
// directions, so "PwC Advisory" matches the "PwC" contract and vice versa.
func supplierMatches(mentioned, contractSupplier string) bool {
	if mentioned == "" {
		return false
	}
	m := strings.ToLower(mentioned)
	c := strings.ToLower(contractSupplier)
	return strings.Contains(m, c) || strings.Contains(c, m)
}
