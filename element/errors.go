package element

import "github.com/pkg/errors"

// 元件错误
var (
	ErrUnknownType   = errors.New("未知的元件类型")
	ErrValueCount    = errors.New("元件参数数量错误")
	ErrNegativeValue = errors.New("元件参数为负数")
	ErrEmptyParallel = errors.New("并联组合没有元件")
	ErrNotParallel   = errors.New("组合元件只能包装并联组合")
	ErrCycle         = errors.New("元件组合存在循环引用")
)
