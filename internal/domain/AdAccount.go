package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "active"
	AdAccountStatusInactive AdAccountStatus = "inactive"
)

const DefaultAccountCurrency = "USD"

// AdAccount é a linha persistida em ad_accounts. Config guarda o JSON serializado.
type AdAccount struct {
	ID          string          `db:"id"`
	Platform    string          `db:"platform"`
	AccountID   string          `db:"account_id"`
	AccountName string          `db:"account_name"`
	Currency    string          `db:"currency"`
	Status      AdAccountStatus `db:"status"`
	Config      *string         `db:"config"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type AdAccountResponse struct {
	ID          string          `json:"id"`
	Platform    string          `json:"platform"`
	AccountID   string          `json:"accountId"`
	AccountName string          `json:"accountName"`
	Currency    string          `json:"currency"`
	Status      AdAccountStatus `json:"status"`
	Config      any             `json:"config"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type AdAccountFilter struct {
	Platform string
	Status   []AdAccountStatus
	IDs      []string
}

type CreateAdAccountRequest struct {
	Platform    string `json:"platform"`
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
	Currency    string `json:"currency,omitempty"`
	Status      string `json:"status,omitempty"`
	Config      any    `json:"config,omitempty"`
}

// UpdateAdAccountRequest aplica atualização parcial: campos nulos ou vazios mantêm o valor atual
type UpdateAdAccountRequest struct {
	ID          string  `json:"-"`
	AccountName *string `json:"accountName,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	Status      *string `json:"status,omitempty"`
	Config      any     `json:"config,omitempty"`
}
