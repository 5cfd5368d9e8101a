package base

import "impedance/element"

// CapacitorPi 容抗计算使用的圆周率近似值
// 与既有计算结果保持一致，不使用 math.Pi
const CapacitorPi = 3.14

// CapacitorType 定义元件
var CapacitorType element.NodeType = element.AddElement(2, &capacitorConfig{
	&element.Config{
		Name:      "c",
		ValueInit: []float64{1e-5}, // 电容值(Farad)，默认10μF
		ValueName: []string{"C"},
	},
})

// capacitorConfig 电容配置
type capacitorConfig struct{ *element.Config }

// New 根据参数创建电容
func (capacitorConfig) New(values []float64) element.ElementFace { return NewCapacitor(values[0]) }

// Capacitor 电容器
type Capacitor struct {
	Capacitance float64 // 电容值(F)
}

// NewCapacitor 创建电容
func NewCapacitor(capacitance float64) *Capacitor {
	return &Capacitor{Capacitance: capacitance}
}

// CalculateResistance 容抗 1/(2·π·p·C)
// 工作条件或电容为 0 时得到 +Inf
func (c *Capacitor) CalculateResistance(p element.Power) float64 {
	return 1 / (2 * CapacitorPi * float64(p) * c.Capacitance)
}

// Type 类型
func (c *Capacitor) Type() element.NodeType { return CapacitorType }

// Values 元件参数
func (c *Capacitor) Values() []float64 { return []float64{c.Capacitance} }
