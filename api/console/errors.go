package console

import (
	stdErrors "errors"

	"bookshop/domain/shared"
	"bookshop/pkg/errors"

	"go.uber.org/zap"
)

// userMessages 面向用户的错误提示，未列出的错误码使用 AppError.Message
var userMessages = map[errors.ErrorCode]string{
	errors.CodeInternal:            "Something went wrong, please try again.",
	errors.CodeItemNotFound:        "Item not found in the catalog.",
	errors.CodeDuplicateISBN:       "An item with this ISBN already exists.",
	errors.CodeInvalidQuantity:     "Invalid quantity.",
	errors.CodeInvalidSubscription: "Invalid subscription length.",
	errors.CodeNotificationFailed:  "Order placed, but the confirmation could not be delivered.",
}

// renderError 记录错误并返回可显示给用户的一行文字
func (s *Shell) renderError(command string, err error) string {
	appErr := errors.FromDomainError(err)

	fields := []zap.Field{
		zap.String("command", command),
		zap.String("error_code", string(appErr.Code)),
	}
	if stack := extractStack(err); len(stack) > 0 {
		fields = append(fields, zap.Strings("stack", stack))
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	s.log.Error(appErr.Message, fields...)

	if msg, ok := userMessages[appErr.Code]; ok {
		return msg
	}
	return appErr.Message
}

func extractStack(err error) []string {
	var stacker shared.Stacker
	if stdErrors.As(err, &stacker) {
		return stacker.Stack()
	}
	return nil
}
