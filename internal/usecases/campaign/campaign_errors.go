package campaign

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData = errors.New("accountId, campaignId and campaignName are required")
	ErrInvalidStatus       = errors.New("invalid campaign status")
	ErrInvalidBudget       = errors.New("invalid campaign budget")
	ErrInvalidDateRange    = errors.New("invalid date range")

	ErrCampaignNotFound = errors.New("campaign not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrCampaignExists   = errors.New("campaign already exists")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// CampaignError carrega o código da API junto do erro base
type CampaignError struct {
	Err     error
	Code    string
	Details string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
