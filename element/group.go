package element

import "slices"

// groupConnections 组合元件基础，保存有序的子元件列表
// 子元件只是引用，同一元件可以出现在多个组合中
type groupConnections struct {
	elements []ElementFace
}

// AddElements 按顺序追加子元件，不去重、不限数量
func (g *groupConnections) AddElements(element ...ElementFace) {
	g.elements = append(g.elements, element...)
}

// Elements 子元件列表副本
func (g *groupConnections) Elements() []ElementFace {
	return slices.Clone(g.elements)
}

// Len 子元件数量
func (g *groupConnections) Len() int { return len(g.elements) }

// SequentialConnections 串联组合
type SequentialConnections struct{ groupConnections }

// NewSequential 创建串联组合
func NewSequential(element ...ElementFace) *SequentialConnections {
	s := &SequentialConnections{}
	s.AddElements(element...)
	return s
}

// CalculateResistance 子元件电阻之和，没有子元件时为 0
func (s *SequentialConnections) CalculateResistance(p Power) float64 {
	var sum float64
	for _, element := range s.elements {
		sum += element.CalculateResistance(p)
	}
	return sum
}

// ParallelConnections 并联组合
type ParallelConnections struct{ groupConnections }

// NewParallel 创建并联组合
func NewParallel(element ...ElementFace) *ParallelConnections {
	pc := &ParallelConnections{}
	pc.AddElements(element...)
	return pc
}

// CalculateResistance 子元件电阻倒数和的倒数
// 没有子元件时结果为 +Inf，存在零电阻子元件时结果为 0，不返回错误
func (pc *ParallelConnections) CalculateResistance(p Power) float64 {
	var invertedSum float64
	for _, element := range pc.elements {
		invertedSum += 1 / element.CalculateResistance(p)
	}
	return 1 / invertedSum
}

// Combined 将并联组合包装为单个元件，用于嵌套到其他组合中
type Combined struct {
	pc ParallelConnections
}

// NewCombined 取得并联组合当前子元件列表的独占副本
// 之后对 pc 追加的元件不会影响 Combined
func NewCombined(pc *ParallelConnections) *Combined {
	return &Combined{pc: ParallelConnections{groupConnections{elements: slices.Clone(pc.elements)}}}
}

// CalculateResistance 委托给内部并联组合
func (c *Combined) CalculateResistance(p Power) float64 {
	return c.pc.CalculateResistance(p)
}

// Elements 内部并联组合的子元件列表副本
func (c *Combined) Elements() []ElementFace { return c.pc.Elements() }

// Len 内部并联组合的子元件数量
func (c *Combined) Len() int { return c.pc.Len() }

// Children 得到组合元件的子元件，叶子元件返回 nil
func Children(e ElementFace) []ElementFace {
	switch v := e.(type) {
	case *SequentialConnections:
		return v.Elements()
	case *ParallelConnections:
		return v.Elements()
	case *Combined:
		return v.Elements()
	}
	return nil
}
