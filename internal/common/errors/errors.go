// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRequisitionNotFound     ErrorCode = "REQUISITION_NOT_FOUND"
	ErrCodeRequisitionCreateFailed ErrorCode = "REQUISITION_CREATE_FAILED"
	ErrCodePersonaNotFound         ErrorCode = "PERSONA_NOT_FOUND"

	ErrCodeIntentClassificationFailed ErrorCode = "INTENT_CLASSIFICATION_FAILED"
	ErrCodeContextInferenceFailed     ErrorCode = "CONTEXT_INFERENCE_FAILED"
	ErrCodeBackendRoutingFailed       ErrorCode = "BACKEND_ROUTING_FAILED"

	ErrCodeCatalogSearchFailed ErrorCode = "CATALOG_SEARCH_FAILED"
	ErrCodeItemDraftFailed     ErrorCode = "ITEM_DRAFT_FAILED"

	ErrCodeValidationFailed     ErrorCode = "REQUISITION_VALIDATION_FAILED"
	ErrCodeApprovalPathFailed   ErrorCode = "APPROVAL_PATH_FAILED"
	ErrCodeContractLookupFailed ErrorCode = "CONTRACT_LOOKUP_FAILED"

	ErrCodeInvalidJobVariables ErrorCode = "INVALID_JOB_VARIABLES"
	ErrCodeSchemaInvalid       ErrorCode = "OUTPUT_SCHEMA_INVALID"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewRequisitionNotFoundError creates a non-retryable lookup error. This is
// the single business error the pipeline can surface; everything else in
// the interpretation flow is total.
func NewRequisitionNotFoundError(prNumber string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequisitionNotFound,
		Message:   "Purchase requisition not found",
		Details:   fmt.Sprintf("prNumber: %s", prNumber),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequisitionCreateFailedError creates a retryable store error.
func NewRequisitionCreateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequisitionCreateFailed,
		Message:   "Failed to assemble purchase requisition",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPersonaNotFoundError creates a non-retryable roster error.
func NewPersonaNotFoundError(personaID string) *StandardError {
	return &StandardError{
		Code:      ErrCodePersonaNotFound,
		Message:   "Requesting persona not found in roster",
		Details:   fmt.Sprintf("personaId: %s", personaID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewIntentClassificationFailedError creates a retryable classification error.
func NewIntentClassificationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeIntentClassificationFailed,
		Message:   "Intent classification error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewContextInferenceFailedError creates a retryable inference error.
func NewContextInferenceFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeContextInferenceFailed,
		Message:   "Context inference error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBackendRoutingFailedError creates a retryable routing error.
func NewBackendRoutingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBackendRoutingFailed,
		Message:   "Backend routing error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogSearchFailedError creates a retryable search error.
func NewCatalogSearchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogSearchFailed,
		Message:   "Catalog search error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewItemDraftFailedError creates a retryable drafting error.
func NewItemDraftFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeItemDraftFailed,
		Message:   "Free-text item drafting error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a retryable policy-check error.
func NewValidationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Requisition validation error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewApprovalPathFailedError creates a retryable approval-derivation error.
func NewApprovalPathFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeApprovalPathFailed,
		Message:   "Approval path derivation error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewContractLookupFailedError creates a retryable contract lookup error.
func NewContractLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeContractLookupFailed,
		Message:   "Contract suggestion error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidJobVariablesError creates a non-retryable input error.
func NewInvalidJobVariablesError(taskType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJobVariables,
		Message:   "Malformed job variables",
		Details:   fmt.Sprintf("taskType: %s, error: %s", taskType, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaInvalidError creates a non-retryable output validation error.
func NewSchemaInvalidError(taskType, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaInvalid,
		Message:   "Worker output failed schema validation",
		Details:   fmt.Sprintf("taskType: %s, %s", taskType, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewAuthenticationError(details string) *StandardError {
	return &StandardError{
		Code:      "AUTHENTICATION_ERROR",
		Message:   "Authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes (same as internal).
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeRequisitionNotFound:        "REQUISITION_NOT_FOUND",
	ErrCodeRequisitionCreateFailed:    "REQUISITION_CREATE_FAILED",
	ErrCodePersonaNotFound:            "PERSONA_NOT_FOUND",
	ErrCodeIntentClassificationFailed: "INTENT_CLASSIFICATION_FAILED",
	ErrCodeContextInferenceFailed:     "CONTEXT_INFERENCE_FAILED",
	ErrCodeBackendRoutingFailed:       "BACKEND_ROUTING_FAILED",
	ErrCodeCatalogSearchFailed:        "CATALOG_SEARCH_FAILED",
	ErrCodeItemDraftFailed:            "ITEM_DRAFT_FAILED",
	ErrCodeValidationFailed:           "REQUISITION_VALIDATION_FAILED",
	ErrCodeApprovalPathFailed:         "APPROVAL_PATH_FAILED",
	ErrCodeContractLookupFailed:       "CONTRACT_LOOKUP_FAILED",
	ErrCodeInvalidJobVariables:        "INVALID_JOB_VARIABLES",
	ErrCodeSchemaInvalid:              "OUTPUT_SCHEMA_INVALID",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeRequisitionCreateFailed,
		ErrCodeIntentClassificationFailed,
		ErrCodeContextInferenceFailed,
		ErrCodeBackendRoutingFailed,
		ErrCodeCatalogSearchFailed,
		ErrCodeItemDraftFailed:
		return 3 // Retryable technical errors

	case ErrCodeValidationFailed,
		ErrCodeApprovalPathFailed,
		ErrCodeContractLookupFailed:
		return 2

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "REQUISITION") || strings.Contains(codeStr, "PERSONA"):
		return "REQUISITION"
	case strings.Contains(codeStr, "INTENT") || strings.Contains(codeStr, "CONTEXT") || strings.Contains(codeStr, "ROUTING"):
		return "INTERPRETATION"
	case strings.Contains(codeStr, "CATALOG") || strings.Contains(codeStr, "ITEM"):
		return "CATALOG"
	case strings.Contains(codeStr, "APPROVAL") || strings.Contains(codeStr, "CONTRACT") || strings.Contains(codeStr, "VALIDATION"):
		return "WORKFLOW"
	case strings.Contains(codeStr, "VARIABLES") || strings.Contains(codeStr, "SCHEMA"):
		return "INPUT"
	default:
		return "OTHER"
	}
}
