package base

import (
	"impedance/element"
	"testing"
)

func TestResistor(t *testing.T) {
	resistance := 27.0
	r := NewResistor(resistance)
	if got := r.CalculateResistance(element.DefaultPower); got != resistance {
		t.Errorf("电阻值不正确: 期望 %v, 实际 %v", resistance, got)
	}
	// 电阻与工作条件无关
	for _, p := range []element.Power{0, 1, 50, 1e6, -3} {
		if got := r.CalculateResistance(p); got != resistance {
			t.Errorf("工作条件 %v 下电阻值不正确: 期望 %v, 实际 %v", p, resistance, got)
		}
	}
}

func TestResistorRegister(t *testing.T) {
	ele, err := element.NewElement("R1", []string{"4.7k"})
	if err != nil {
		t.Fatalf("创建电阻失败 %s", err)
	}
	r, ok := ele.(*Resistor)
	if !ok {
		t.Fatalf("元件类型不正确: %T", ele)
	}
	if r.Resistance != 4700 {
		t.Errorf("电阻值不正确: 期望 %v, 实际 %v", 4700, r.Resistance)
	}
	if r.Type() != ResistorType || r.Type().String() != "r" {
		t.Errorf("元件类型不正确: %v", r.Type())
	}
	// 缺省参数
	ele, err = element.NewElement("r", nil)
	if err != nil {
		t.Fatalf("创建电阻失败 %s", err)
	}
	if got := ele.CalculateResistance(element.DefaultPower); got != 10000 {
		t.Errorf("默认电阻值不正确: 期望 %v, 实际 %v", 10000, got)
	}
}
