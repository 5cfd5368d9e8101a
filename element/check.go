package element

import (
	"strconv"

	"github.com/pkg/errors"
)

// Validate 检查元件树是否存在退化结构
// 返回遇到的第一个负参数、空并联或循环引用错误，错误中包含元件路径
// 零电阻子元件不视为错误，按计算规则得到 0
func Validate(e ElementFace) error {
	return validate(e, "root", map[ElementFace]bool{})
}

func validate(e ElementFace, path string, visiting map[ElementFace]bool) error {
	switch v := e.(type) {
	case LeafFace:
		for i, value := range v.Values() {
			if value < 0 {
				return errors.Wrapf(ErrNegativeValue, "路径 %s 参数 %d: %g", path, i, value)
			}
		}
		return nil
	case *ParallelConnections:
		if v.Len() == 0 {
			return errors.Wrapf(ErrEmptyParallel, "路径 %s", path)
		}
	case *Combined:
		if v.Len() == 0 {
			return errors.Wrapf(ErrEmptyParallel, "路径 %s", path)
		}
	case *SequentialConnections:
	default:
		return nil
	}
	if visiting[e] {
		return errors.Wrapf(ErrCycle, "路径 %s", path)
	}
	visiting[e] = true
	defer delete(visiting, e)
	for i, child := range Children(e) {
		if err := validate(child, path+"/"+strconv.Itoa(i), visiting); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate 检查后计算等效电阻
func Evaluate(e ElementFace, p Power) (float64, error) {
	if err := Validate(e); err != nil {
		return 0, err
	}
	return e.CalculateResistance(p), nil
}

// Walk 深度优先遍历元件树，fn 返回 false 时不再进入该元件的子元件
// 调用方需保证元件树无循环引用
func Walk(e ElementFace, fn func(e ElementFace, depth int) bool) {
	walk(e, 0, fn)
}

func walk(e ElementFace, depth int, fn func(e ElementFace, depth int) bool) {
	if !fn(e, depth) {
		return
	}
	for _, child := range Children(e) {
		walk(child, depth+1, fn)
	}
}
