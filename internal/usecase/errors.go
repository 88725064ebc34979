package usecase

import (
	"errors"

	"go.uber.org/zap"
)

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicateKey      = "DUPLICATE_KEY"
	CodeAuthFailed        = "AUTH_FAILED"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeSendInProgress    = "SEND_IN_PROGRESS"

	CodeDeliveryFailed = "DELIVERY_FAILED"
	CodeStoreError     = "STORE_ERROR"
)

// DomainError é erro de quem chamou: entrada inválida, registro inexistente etc.
type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError é falha de infraestrutura (fila, SMTP, store).
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// ErrorCode devolve o código do erro de domínio ou técnico, ou "" se for outro erro.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

func validationFailed(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for i, e := range errs {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return &DomainError{Code: CodeValidation, Message: msg, Fields: errs}
}

// storeFailure classifica o erro vindo de um Apply. NotFound vira DomainError e
// é só registrado em log; o resto é técnico.
func storeFailure(log *zap.Logger, op, key string, err error, notFound ...error) error {
	if IsDomainError(err) || IsTechnicalError(err) {
		return err
	}
	for _, nf := range notFound {
		if errors.Is(err, nf) {
			log.Warn("record not found", zap.String("op", op), zap.String("key", key))
			return &DomainError{Code: CodeNotFound, Message: err.Error() + ": " + key, Err: err}
		}
	}
	log.Error("store operation failed", zap.String("op", op), zap.String("key", key), zap.Error(err))
	return &TechnicalError{Code: CodeStoreError, Message: op + " failed: " + err.Error(), Err: err}
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
