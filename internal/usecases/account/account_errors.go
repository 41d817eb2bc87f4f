package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("platform, accountId and accountName are required")
	ErrInvalidStatus       = errors.New("invalid account status")
	ErrInvalidConfig       = errors.New("invalid account config")

	// Erros de estado
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchAccounts     = errors.New("error fetching accounts from database")

	ErrGenerateID = errors.New("error generating ID")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Mensagem exibida ao cliente
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
