package client

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindTransport - сервис недоступен или запрос не ушел
	KindTransport ErrorKind = iota + 1
	// KindDecode - ответ не совпал с ожидаемой формой
	KindDecode
	// KindRejected - сервис ответил статусом >= 400
	KindRejected
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// APIError - ошибка любой операции клиента учета
type APIError struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsKind сообщает, что err - это APIError заданного вида
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

func transportError(op string, err error) *APIError {
	return &APIError{Kind: KindTransport, Op: op, Message: err.Error(), Err: err}
}

func decodeError(op string, err error) *APIError {
	return &APIError{Kind: KindDecode, Op: op, Message: err.Error(), Err: err}
}

func rejectedError(op string, status int, message string) *APIError {
	return &APIError{Kind: KindRejected, Op: op, StatusCode: status, Message: message}
}
