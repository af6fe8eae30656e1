package errors

import (
	"errors"
	"fmt"

	"bookshop/domain/catalog"
	"bookshop/domain/order"
	"bookshop/domain/shared"
)

// ErrorCode 错误码
type ErrorCode string

const (
	// 通用错误码
	CodeInternal   ErrorCode = "INTERNAL_ERROR"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeConflict   ErrorCode = "CONFLICT"
	CodeValidation ErrorCode = "VALIDATION_ERROR"

	// 业务错误码
	CodeItemNotFound        ErrorCode = "ITEM_NOT_FOUND"
	CodeDuplicateISBN       ErrorCode = "DUPLICATE_ISBN"
	CodeOrderNotFound       ErrorCode = "ORDER_NOT_FOUND"
	CodeInvalidQuantity     ErrorCode = "INVALID_QUANTITY"
	CodeInvalidSubscription ErrorCode = "INVALID_SUBSCRIPTION"
	CodeNotificationFailed  ErrorCode = "NOTIFICATION_FAILED"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotificationFailed 订单已下达，但事件处理器执行失败
func NotificationFailed(err error) *AppError {
	return Wrap(err, CodeNotificationFailed, "order placed but notification failed")
}

// Is 检查是否为特定错误码
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// domainMappings 领域哨兵错误到错误码的映射，按顺序匹配（先具体后通用）
var domainMappings = []struct {
	sentinel error
	code     ErrorCode
}{
	{catalog.ErrItemNotFound, CodeItemNotFound},
	{catalog.ErrDuplicateISBN, CodeDuplicateISBN},
	{order.ErrOrderNotFound, CodeOrderNotFound},
	{order.ErrInvalidQuantity, CodeInvalidQuantity},
	{order.ErrInvalidSubscription, CodeInvalidSubscription},
	{shared.ErrNotFound, CodeNotFound},
	{shared.ErrConflict, CodeConflict},
	{shared.ErrInvalidInput, CodeValidation},
}

// FromDomainError 将领域错误映射为应用错误
// 已经是 AppError 的直接返回；无法识别的错误包装为内部错误
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, m := range domainMappings {
		if errors.Is(err, m.sentinel) {
			return Wrap(err, m.code, err.Error())
		}
	}

	return Wrap(err, CodeInternal, "internal error")
}
