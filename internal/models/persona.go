// internal/models/persona.go
package models

type Region string

const (
	RegionCEE   Region = "CEE"
	RegionNA    Region = "NA"
	RegionEMEA  Region = "EMEA"
	RegionAPAC  Region = "APAC"
	RegionLATAM Region = "LATAM"
)

// Persona is the acting user on whose behalf a request is interpreted.
// Personas come from a fixed roster and are never mutated.
type Persona struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Entity       string `json:"entity"`
	Region       Region `json:"region"`
	Location     string `json:"location"`
	BusinessUnit string `json:"businessUnit"`
}
