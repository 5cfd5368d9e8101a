package ast

import "fmt"

// Value 表示一个值，可以是数字、变量名或元件名称
type Value struct {
	Value string // 原始值
	IsVar bool   // 是否为变量
	Line  int    // 行号
}

// newValue 由标识符创建值，% 开头表示变量
func newValue(tok token) *Value {
	if len(tok.text) > 1 && tok.text[0] == '%' {
		return &Value{Value: tok.text[1:], IsVar: true, Line: tok.line}
	}
	return &Value{Value: tok.text, Line: tok.line}
}

// Resolve 得到变量替换后的字符串
func (value Value) Resolve(vars map[string]string) (string, error) {
	if !value.IsVar {
		return value.Value, nil
	}
	if v, ok := vars[value.Value]; ok {
		return v, nil
	}
	return "", errorAtLine(value.Line, "未定义的变量 '%s'", value.Value)
}

// String 原始文本
func (value Value) String() string {
	if value.IsVar {
		return fmt.Sprintf("%%%s", value.Value)
	}
	return value.Value
}
