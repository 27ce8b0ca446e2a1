// internal/data/personas.go
package data

import "guided-buying-workers/internal/models"

// Personas is the fixed roster of demo requesters.
var Personas = []models.Persona{
	{
		ID:           "persona-1",
		Name:         "Ana Popescu",
		Role:         "IT Project Manager",
		Entity:       "RO01",
		Region:       models.RegionCEE,
		Location:     "Bucharest",
		BusinessUnit: "IT",
	},
	{
		ID:           "persona-2",
		Name:         "John Smith",
		Role:         "Marketing Manager",
		Entity:       "US01",
		Region:       models.RegionNA,
		Location:     "New York",
		BusinessUnit: "Marketing",
	},
}

// PersonaByID returns the roster entry for id, or ok=false.
func PersonaByID(id string) (models.Persona, bool) {
	for _, p := range Personas {
		if p.ID == id {
			return p, true
		}
	}
	return models.Persona{}, false
}
