package pkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LerianStudio/license-gate/constant"
)

// FetchError indicates the license page could not be retrieved.
type FetchError struct {
	Title      string
	Message    string
	Code       string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e FetchError) Error() string {
	if strings.TrimSpace(e.Message) == "" && e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e FetchError) Unwrap() error {
	return e.Err
}

// ExtractionError indicates the license page did not carry a usable license block.
type ExtractionError struct {
	Title   string
	Message string
	Code    string
	Err     error
}

// Error implements the error interface.
func (e ExtractionError) Error() string {
	if strings.TrimSpace(e.Message) == "" && e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ExtractionError) Unwrap() error {
	return e.Err
}

// CredentialMismatchError indicates no license record matches the given credentials.
type CredentialMismatchError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
}

func (e CredentialMismatchError) Error() string {
	return e.Message
}

// ExpiredLicenseError indicates the matched record has no usable end date or is past it.
type ExpiredLicenseError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	EndDate    string
}

func (e ExpiredLicenseError) Error() string {
	return e.Message
}

// CacheIOError records a failed read, write or delete on one credential cache tier.
type CacheIOError struct {
	Tier    string
	Op      string
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e CacheIOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s cache %s: %v", e.Tier, e.Op, e.Err)
	}

	return fmt.Sprintf("%s cache %s: %s", e.Tier, e.Op, e.Message)
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e CacheIOError) Unwrap() error {
	return e.Err
}

// EntityNotFoundError records an error indicating an entity was not found.
// It is used when no launch candidate exists on disk.
type EntityNotFoundError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityNotFoundError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		if strings.TrimSpace(e.EntityType) != "" {
			return fmt.Sprintf("Entity %s not found", e.EntityType)
		}

		if e.Err != nil {
			return e.Err.Error()
		}

		return "entity not found"
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityNotFoundError) Unwrap() error {
	return e.Err
}

// LaunchStrategyExhaustedError indicates every launch strategy failed.
// Attempts keeps the individual failures for logging; Error shows only the aggregate.
type LaunchStrategyExhaustedError struct {
	Title    string
	Message  string
	Code     string
	Attempts []error
}

func (e LaunchStrategyExhaustedError) Error() string {
	return e.Message
}

// Unwrap exposes the individual strategy failures to errors.Is and errors.As.
func (e LaunchStrategyExhaustedError) Unwrap() []error {
	return e.Attempts
}

// FailedPreconditionError indicates a precondition failed during an operation.
type FailedPreconditionError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e FailedPreconditionError) Error() string {
	return e.Message
}

// ForbiddenError indicates an operation that requires a license was attempted without one.
type ForbiddenError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e ForbiddenError) Error() string {
	return e.Message
}

// InternalServerError indicates an unexpected failure in the command server.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// ValidationKnownFieldsError records an error that occurred during a validation of known fields.
type ValidationKnownFieldsError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Error returns the error message for a ValidationKnownFieldsError.
func (r ValidationKnownFieldsError) Error() string {
	return r.Message
}

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later.",
		Err:        err,
	}
}

// ValidateBusinessError validates the error and returns the appropriate business error code, title, and message.
// ErrLicenseExpired expects the end date as its only argument.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	switch {
	case errors.Is(err, constant.ErrCredentialMismatch):
		return CredentialMismatchError{
			EntityType: entityType,
			Code:       constant.ErrCredentialMismatch.Error(),
			Title:      "Credential mismatch",
			Message:    constant.MsgCredentialMismatch,
		}
	case errors.Is(err, constant.ErrLicenseEndDateMissing):
		return ExpiredLicenseError{
			EntityType: entityType,
			Code:       constant.ErrLicenseEndDateMissing.Error(),
			Title:      "License end date missing",
			Message:    constant.MsgEndDateMissing,
		}
	case errors.Is(err, constant.ErrLicenseExpired):
		endDate := firstString(args)

		return ExpiredLicenseError{
			EntityType: entityType,
			Code:       constant.ErrLicenseExpired.Error(),
			Title:      "License expired",
			Message:    fmt.Sprintf(constant.MsgLicenseExpiredFmt, endDate),
			EndDate:    endDate,
		}
	case errors.Is(err, constant.ErrLicenseSourceNotSet):
		return FailedPreconditionError{
			EntityType: entityType,
			Code:       constant.ErrLicenseSourceNotSet.Error(),
			Title:      "License source not configured",
			Message:    constant.MsgSourceNotConfigured,
		}
	case errors.Is(err, constant.ErrExecutableNotFound):
		return EntityNotFoundError{
			EntityType: entityType,
			Code:       constant.ErrExecutableNotFound.Error(),
			Title:      "Executable not found",
			Message:    constant.MsgExecutableNotFound,
		}
	case errors.Is(err, constant.ErrLaunchStrategiesExhausted):
		return LaunchStrategyExhaustedError{
			Code:    constant.ErrLaunchStrategiesExhausted.Error(),
			Title:   "Launch failed",
			Message: constant.MsgAllStrategiesFailed,
		}
	case errors.Is(err, constant.ErrLicenseRequired):
		return ForbiddenError{
			EntityType: entityType,
			Code:       constant.ErrLicenseRequired.Error(),
			Title:      "License required",
			Message:    "A valid license is required for this operation. Validate your credentials and try again.",
		}
	case errors.Is(err, constant.ErrInvalidRequestBody):
		return ValidationKnownFieldsError{
			EntityType: entityType,
			Code:       constant.ErrInvalidRequestBody.Error(),
			Title:      "Invalid request body",
			Message:    "The request body could not be parsed. Please send a valid JSON object.",
		}
	case errors.Is(err, constant.ErrJSONContentTypeRequired):
		return ValidationKnownFieldsError{
			EntityType: entityType,
			Code:       constant.ErrJSONContentTypeRequired.Error(),
			Title:      "JSON content type required",
			Message:    "Commands that change state must be sent with Content-Type: application/json.",
		}
	}

	return err
}

func firstString(args []any) string {
	if len(args) == 0 {
		return ""
	}

	return fmt.Sprint(args[0])
}
