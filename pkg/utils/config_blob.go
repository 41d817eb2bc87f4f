package utils

import (
	"github.com/pkg/errors"
)

// ParseConfigBlob converte o texto armazenado em valor JSON. Texto inválido vira erro e o chamador decide o fallback.
func ParseConfigBlob(raw *string) (any, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	var value any
	if err := json.UnmarshalFromString(*raw, &value); err != nil {
		return nil, errors.Wrap(err, "config inválida")
	}

	return value, nil
}

// MarshalConfigBlob serializa o valor recebido para armazenamento; nil vira NULL
func MarshalConfigBlob(value any) (*string, error) {
	if value == nil {
		return nil, nil
	}

	raw, err := json.MarshalToString(value)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao serializar config")
	}

	return &raw, nil
}
