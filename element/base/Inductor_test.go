package base

import (
	"impedance/element"
	"testing"
)

func TestInductor(t *testing.T) {
	induction := 27.0
	l := NewInductor(induction)
	if got := l.CalculateResistance(element.DefaultPower); got != 1620 {
		t.Errorf("感抗不正确: 期望 %v, 实际 %v", 1620, got)
	}
	for _, p := range []element.Power{0, 1, 2.5, 1000} {
		if got := l.CalculateResistance(p); got != float64(p)*induction {
			t.Errorf("工作条件 %v 下感抗不正确: 期望 %v, 实际 %v", p, float64(p)*induction, got)
		}
	}
}

func TestInductorValues(t *testing.T) {
	ele, err := element.NewElement("l3", []string{"2k"})
	if err != nil {
		t.Fatalf("创建电感失败 %s", err)
	}
	leaf := ele.(element.LeafFace)
	if leaf.Type() != InductorType {
		t.Errorf("元件类型不正确: %v", leaf.Type())
	}
	if v := leaf.Values(); len(v) != 1 || v[0] != 2000 {
		t.Errorf("电感参数不正确: %v", v)
	}
	if _, err := element.NewElement("l3", []string{"1", "2"}); err == nil {
		t.Errorf("多余参数应返回错误")
	}
	if _, err := element.NewElement("q1", nil); err == nil {
		t.Errorf("未知元件类型应返回错误")
	}
}
