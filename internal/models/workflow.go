// internal/models/workflow.go
package models

type ItemType string

const (
	ItemTypeGoods    ItemType = "goods"
	ItemTypeService  ItemType = "service"
	ItemTypeFreeText ItemType = "freeText"
	ItemTypeUnknown  ItemType = "unknown"
)

// DraftLineItem extends LineItem with the fields the free-text drafting
// flow fills in before a requisition is assembled.
type DraftLineItem struct {
	LineItem
	Type                ItemType `json:"type"`
	EstimatedValue      *float64 `json:"estimatedValue,omitempty"`
	Currency            string   `json:"currency,omitempty"`
	DesiredDeliveryDate string   `json:"desiredDeliveryDate,omitempty"`
	PreferredSupplier   string   `json:"preferredSupplier,omitempty"`
	PreferredFlag       bool     `json:"preferredFlag,omitempty"`
}

type IssueSeverity string

const (
	SeverityError      IssueSeverity = "error"
	SeverityWarning    IssueSeverity = "warning"
	SeveritySuggestion IssueSeverity = "suggestion"
)

type ValidationIssue struct {
	Severity  IssueSeverity `json:"severity"`
	Message   string        `json:"message"`
	CanFix    bool          `json:"canFix"`
	FixAction string        `json:"fixAction,omitempty"`
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type ApprovalStep struct {
	Role         string         `json:"role"`
	ApproverName string         `json:"approverName"`
	Status       ApprovalStatus `json:"status"`
	Order        int            `json:"order"`
}

type ContractStatus string

const (
	ContractActive       ContractStatus = "active"
	ContractExpiringSoon ContractStatus = "expiring_soon"
	ContractExpired      ContractStatus = "expired"
)

type CLMContract struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Supplier      string         `json:"supplier"`
	SupplierID    string         `json:"supplierId"`
	ContractID    string         `json:"contractId"`
	Category      string         `json:"category"`
	ValidFrom     string         `json:"validFrom"`
	ValidUntil    string         `json:"validUntil"`
	Region        string         `json:"region"`
	RelevanceHint string         `json:"relevanceHint"`
	Status        ContractStatus `json:"status"`
}

// CatalogItem is a row of the static catalog. Keywords drive the ranked
// search; Specs are free-form display attributes.
type CatalogItem struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Category      Category          `json:"category"`
	UnitPrice     float64           `json:"unitPrice"`
	Currency      string            `json:"currency"`
	UnitOfMeasure string            `json:"unitOfMeasure"`
	SupplierID    string            `json:"supplier"`
	SupplierName  string            `json:"supplierName"`
	Preferred     bool              `json:"preferred"`
	Keywords      []string          `json:"keywords"`
	LeadTimeDays  int               `json:"leadTimeDays"`
	Specs         map[string]string `json:"specs,omitempty"`
}

// TypicalItem maps a category to the supplier and price a single-line
// requisition defaults to when no catalog item was chosen.
type TypicalItem struct {
	Category         Category `json:"category"`
	SupplierName     string   `json:"supplierName"`
	TypicalUnitPrice float64  `json:"typicalUnitPrice"`
	UnitOfMeasure    string   `json:"unitOfMeasure"`
}

// FrameworkContract is a callable agreement keyed by entity and category.
type FrameworkContract struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	SupplierName string   `json:"supplierName"`
	Entity       string   `json:"entity"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
}

type FreeTextItemDraft struct {
	ItemName            string   `json:"itemName"`
	Description         string   `json:"description"`
	EstimatedValue      *float64 `json:"estimatedValue,omitempty"`
	Currency            string   `json:"currency"`
	DesiredDeliveryDate string   `json:"desiredDeliveryDate,omitempty"`
	PreferredSupplier   string   `json:"preferredSupplier,omitempty"`
}

type SearchResult struct {
	Item  CatalogItem `json:"item"`
	Score float64     `json:"score"`
}

// SearchMetadata summarizes a catalog search for downstream steps.
type SearchMetadata struct {
	Query       string   `json:"query"`
	ItemType    ItemType `json:"itemType"`
	Quantity    int      `json:"quantity"`
	ResultCount int      `json:"resultCount"`
}
