/*
Package order - 订单领域错误定义

设计原则:
 1. 使用哨兵错误(sentinel errors)支持 errors.Is() 类型安全判断
 2. 错误构造函数在创建时捕获堆栈，便于定位错误发生点
 3. 定价与通知（Place）本身不会失败，错误只出现在创建订单和查找订单时

堆栈捕获:
  - NewXxxError 构造函数内部调用 shared.CaptureStack(3)
  - skip=3 跳过：runtime.Callers, CaptureStack, NewXxxError
*/
package order

import (
	"fmt"
	"strconv"

	"bookshop/domain/shared"
)

var (
	// ErrOrderNotFound 订单未找到
	ErrOrderNotFound = fmt.Errorf("order %w", shared.ErrNotFound)

	// ErrInvalidQuantity 数量必须在 1..MaxQuantity 之间
	ErrInvalidQuantity = fmt.Errorf("quantity must be between 1 and %d: %w", MaxQuantity, shared.ErrInvalidInput)

	// ErrInvalidSubscription 订阅月数必须在 1..MaxSubscriptionMonths 之间
	ErrInvalidSubscription = fmt.Errorf("subscription months must be between 1 and %d: %w", MaxSubscriptionMonths, shared.ErrInvalidInput)

	// ErrMissingItem 订单必须引用一个目录条目
	ErrMissingItem = fmt.Errorf("order must reference a catalog item: %w", shared.ErrInvalidInput)

	// ErrMissingSequence 未注入订单号序列（装配错误）
	ErrMissingSequence = fmt.Errorf("order id sequence is required")
)

// NewOrderNotFoundError 创建订单未找到错误（带堆栈）
func NewOrderNotFoundError(orderID int64) error {
	return &orderDomainError{
		sentinel: ErrOrderNotFound,
		message:  "order not found: " + strconv.FormatInt(orderID, 10),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidQuantityError 创建数量无效错误
func NewInvalidQuantityError(quantity int) error {
	return &orderDomainError{
		sentinel: ErrInvalidQuantity,
		field:    "quantity",
		message:  fmt.Sprintf("invalid quantity %d: must be between 1 and %d", quantity, MaxQuantity),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidSubscriptionError 创建订阅月数无效错误
func NewInvalidSubscriptionError(months int) error {
	return &orderDomainError{
		sentinel: ErrInvalidSubscription,
		field:    "subscription_months",
		message:  fmt.Sprintf("invalid subscription of %d months: must be between 1 and %d", months, MaxSubscriptionMonths),
		stack:    shared.CaptureStack(3),
	}
}

// NewMissingItemError 创建缺少目录条目错误
func NewMissingItemError() error {
	return &orderDomainError{
		sentinel: ErrMissingItem,
		field:    "item",
		message:  "order must reference a catalog item",
		stack:    shared.CaptureStack(3),
	}
}

// orderDomainError 订单领域错误（带堆栈）
type orderDomainError struct {
	sentinel error     // 哨兵错误，用于 errors.Is()
	field    string    // 字段名（可选）
	message  string    // 错误消息
	stack    []uintptr // 调用栈
}

func (e *orderDomainError) Error() string {
	return e.message
}

func (e *orderDomainError) Unwrap() error {
	return e.sentinel
}

// Field 出错字段，没有时为空
func (e *orderDomainError) Field() string {
	return e.field
}

// Stack 实现 shared.Stacker 接口
func (e *orderDomainError) Stack() []string {
	if len(e.stack) == 0 {
		return nil
	}
	return shared.FormatStack(e.stack)
}
