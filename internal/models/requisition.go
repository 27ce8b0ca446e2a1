// internal/models/requisition.go
package models

type IntentType string

const (
	IntentCatalogPurchase IntentType = "catalog_purchase"
	IntentContractCallOff IntentType = "contract_call_off"
	IntentServicesSOW     IntentType = "services_sow"
	IntentNeedsSourcing   IntentType = "needs_sourcing"
	IntentStatusQuery     IntentType = "status_query"
	IntentListQuery       IntentType = "list_query"
	IntentUnknown         IntentType = "unknown"
)

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

type IntentClassification struct {
	Type             IntentType      `json:"type"`
	Confidence       ConfidenceLevel `json:"confidence"`
	ConfidenceScore  float64         `json:"confidenceScore"`
	NeedsHumanReview bool            `json:"needsHumanReview"`
	Reasoning        []string        `json:"reasoning"`
}

type Category string

const (
	CategoryITHardware         Category = "IT Hardware"
	CategoryITSoftware         Category = "IT Software/SaaS"
	CategoryMarketingServices  Category = "Marketing Services"
	CategoryConsultingServices Category = "Consulting Services"
	CategoryFacilitiesOffice   Category = "Facilities & Office"
	CategoryLegalServices      Category = "Legal Services"
	CategoryFacilitiesMgmt     Category = "Facilities Management"
	CategoryUnknown            Category = "Unknown"
)

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

type ContextInference struct {
	Entity         string       `json:"entity"`
	Region         Region       `json:"region"`
	Location       string       `json:"location"`
	Category       Category     `json:"category"`
	Urgency        UrgencyLevel `json:"urgency"`
	NeededBy       string       `json:"neededBy"`
	InferenceNotes []string     `json:"inferenceNotes"`
}

type BackendSystem string

const (
	BackendSAPMM           BackendSystem = "SAP_MM"
	BackendCoupa           BackendSystem = "Coupa"
	BackendLocalERP        BackendSystem = "Local_ERP_X"
	BackendSourcingHandOff BackendSystem = "Sourcing_HandOff"
)

type BackendRouting struct {
	System    BackendSystem `json:"system"`
	Reasoning string        `json:"reasoning"`
}

type LineItem struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	Quantity      int      `json:"quantity"`
	UnitOfMeasure string   `json:"unitOfMeasure"`
	UnitPrice     *float64 `json:"unitPrice,omitempty"`
	TotalPrice    *float64 `json:"totalPrice,omitempty"`
	SupplierName  string   `json:"supplierName,omitempty"`
}

type PRStatus string

const (
	PRStatusDraft     PRStatus = "DRAFT"
	PRStatusSubmitted PRStatus = "SUBMITTED"
	PRStatusApproved  PRStatus = "APPROVED"
	PRStatusRejected  PRStatus = "REJECTED"
)

// PurchaseRequisition is the record assembled by the create-requisition
// worker. The core never mutates a stored requisition after creation;
// status transitions belong to downstream process steps.
type PurchaseRequisition struct {
	ID                   string               `json:"id"`
	PRNumber             string               `json:"prNumber"`
	Status               PRStatus             `json:"status"`
	RequestingPersona    Persona              `json:"requestingPersona"`
	OriginalMessage      string               `json:"originalMessage"`
	IntentClassification IntentClassification `json:"intentClassification"`
	ContextInference     ContextInference     `json:"contextInference"`
	BackendRouting       BackendRouting       `json:"backendRouting"`
	LineItems            []LineItem           `json:"lineItems"`
	CreatedAt            string               `json:"createdAt"`
	UpdatedAt            string               `json:"updatedAt"`
}
