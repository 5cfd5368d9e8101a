package base

import "impedance/element"

// ResistorType 定义元件
var ResistorType element.NodeType = element.AddElement(1, &resistorConfig{
	&element.Config{
		Name:      "r",              // 元件名称，网表文件中使用的标识符
		ValueInit: []float64{10000}, // 初始化数据：默认电阻值为10kΩ
		ValueName: []string{"R"},
	},
})

// resistorConfig 电阻配置
type resistorConfig struct{ *element.Config }

// New 根据参数创建电阻
func (resistorConfig) New(values []float64) element.ElementFace { return NewResistor(values[0]) }

// Resistor 电阻元件，等效电阻与工作条件无关
type Resistor struct {
	Resistance float64 // 电阻值(Ω)
}

// NewResistor 创建电阻
func NewResistor(resistance float64) *Resistor {
	return &Resistor{Resistance: resistance}
}

// CalculateResistance 返回电阻值
func (r *Resistor) CalculateResistance(element.Power) float64 { return r.Resistance }

// Type 类型
func (r *Resistor) Type() element.NodeType { return ResistorType }

// Values 元件参数
func (r *Resistor) Values() []float64 { return []float64{r.Resistance} }
