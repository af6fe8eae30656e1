/*
Package catalog - 目录领域错误定义

哨兵错误包装 shared 层的通用分类，因此既可以
errors.Is(err, ErrItemNotFound) 也可以 errors.Is(err, shared.ErrNotFound)
*/
package catalog

import (
	"fmt"

	"bookshop/domain/shared"
)

var (
	// ErrItemNotFound 目录条目不存在
	ErrItemNotFound = fmt.Errorf("catalog item %w", shared.ErrNotFound)

	// ErrDuplicateISBN ISBN 已存在于目录中
	ErrDuplicateISBN = fmt.Errorf("isbn already in catalog: %w", shared.ErrConflict)

	// ErrNilItem 传入了空条目
	ErrNilItem = fmt.Errorf("catalog item is nil: %w", shared.ErrInvalidInput)
)

// NewItemNotFoundError 创建条目未找到错误（带堆栈）
func NewItemNotFoundError(isbn string) error {
	return shared.NewDomainError(ErrItemNotFound, "catalog_item", "isbn", "catalog item not found: "+isbn)
}

// NewDuplicateISBNError 创建 ISBN 重复错误（带堆栈）
func NewDuplicateISBNError(isbn string) error {
	return shared.NewDomainError(ErrDuplicateISBN, "catalog_item", "isbn", "isbn already in catalog: "+isbn)
}
