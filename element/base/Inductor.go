package base

import "impedance/element"

// InductorType 定义元件
var InductorType element.NodeType = element.AddElement(3, &inductorConfig{
	&element.Config{
		Name:      "l",
		ValueInit: []float64{1e-3}, // 电感值(Henry)，默认1mH
		ValueName: []string{"L"},
	},
})

// inductorConfig 电感配置
type inductorConfig struct{ *element.Config }

// New 根据参数创建电感
func (inductorConfig) New(values []float64) element.ElementFace { return NewInductor(values[0]) }

// Inductor 电感器
type Inductor struct {
	Inductance float64 // 电感值(H)
}

// NewInductor 创建电感
func NewInductor(inductance float64) *Inductor {
	return &Inductor{Inductance: inductance}
}

// CalculateResistance 感抗 p·L
func (l *Inductor) CalculateResistance(p element.Power) float64 {
	return float64(p) * l.Inductance
}

// Type 类型
func (l *Inductor) Type() element.NodeType { return InductorType }

// Values 元件参数
func (l *Inductor) Values() []float64 { return []float64{l.Inductance} }
