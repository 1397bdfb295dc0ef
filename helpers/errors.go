package helpers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// AppError representa um erro controlado com código HTTP e mensagem funcional.
type AppError struct {
	Status  int
	Message string
	Err     error
}

// Error implementa a interface error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extrair o erro original quando existir.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError constrói um AppError com mensagem e status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// BadRequest é o atalho para falhas de validação detectadas antes de qualquer requisição.
func BadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// AsAppError converte qualquer erro em AppError.
// Erros HTTP do backend preservam 401/403/404; os demais viram 502.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := defaultMessage
	if msg == "" {
		msg = "erro inesperado"
	}
	var he *HTTPError
	if errors.As(err, &he) {
		switch he.Status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusBadRequest, http.StatusConflict:
			return &AppError{Status: he.Status, Message: msg, Err: err}
		default:
			return &AppError{Status: http.StatusBadGateway, Message: msg, Err: err}
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Status: http.StatusBadGateway, Message: msg, Err: err}
	}
	return &AppError{Status: http.StatusInternalServerError, Message: msg, Err: err}
}
