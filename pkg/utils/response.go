package utils

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// Response é o envelope de sucesso das rotas da API
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteJSON serializa v com o status informado
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess escreve {success: true, data, message}
func WriteSuccess(w http.ResponseWriter, status int, data any, message string) {
	WriteJSON(w, status, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// DecodeJSON lê o corpo da requisição em v
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
}
