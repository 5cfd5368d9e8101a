package element_test

import (
	"impedance/element"
	"impedance/element/base"
	"math"
	"testing"
)

func TestSequentialConnection(t *testing.T) {
	r1 := base.NewResistor(27)
	r2 := base.NewResistor(33)

	var c element.SequentialConnections
	c.AddElements(r1)
	c.AddElements(r2)

	if got := c.CalculateResistance(element.DefaultPower); math.Abs(got-60) > 1e-9 {
		t.Errorf("串联电阻不正确: 期望 %v, 实际 %v", 60, got)
	}
	// 空串联为 0
	if got := element.NewSequential().CalculateResistance(element.DefaultPower); got != 0 {
		t.Errorf("空串联电阻应为 0, 实际 %v", got)
	}
}

func TestParallelConnection(t *testing.T) {
	r1 := base.NewResistor(27)
	r2 := base.NewResistor(33)

	var c element.ParallelConnections
	c.AddElements(r1, r2)

	if got := c.CalculateResistance(element.DefaultPower); math.Abs(got-14.85) > 1e-4 {
		t.Errorf("并联电阻不正确: 期望 %v, 实际 %v", 14.85, got)
	}
}

func TestParallelDegenerate(t *testing.T) {
	// 空并联得到 +Inf
	if got := element.NewParallel().CalculateResistance(element.DefaultPower); !math.IsInf(got, 1) {
		t.Errorf("空并联电阻应为 +Inf, 实际 %v", got)
	}
	// 零电阻支路短路
	got := element.NewParallel(base.NewResistor(0), base.NewResistor(5)).CalculateResistance(element.DefaultPower)
	if got != 0 {
		t.Errorf("含零电阻支路的并联应为 0, 实际 %v", got)
	}
	// 开路支路不影响结果
	got = element.NewParallel(base.NewCapacitor(0), base.NewResistor(5)).CalculateResistance(element.DefaultPower)
	if got != 5 {
		t.Errorf("含开路支路的并联应为 5, 实际 %v", got)
	}
}

func TestGroupOrder(t *testing.T) {
	ele := []element.ElementFace{
		base.NewResistor(27),
		base.NewCapacitor(1e-4),
		base.NewInductor(0.3),
		base.NewResistor(1.5),
	}
	reversed := []element.ElementFace{ele[3], ele[2], ele[1], ele[0]}
	p := element.Power(50)

	s1, s2 := element.NewSequential(ele...), element.NewSequential(reversed...)
	if a, b := s1.CalculateResistance(p), s2.CalculateResistance(p); math.Abs(a-b) > 1e-9 {
		t.Errorf("串联结果与顺序有关: %v != %v", a, b)
	}
	p1, p2 := element.NewParallel(ele...), element.NewParallel(reversed...)
	if a, b := p1.CalculateResistance(p), p2.CalculateResistance(p); math.Abs(a-b) > 1e-9 {
		t.Errorf("并联结果与顺序有关: %v != %v", a, b)
	}
	// 插入顺序保持不变
	for i, e := range s1.Elements() {
		if e != ele[i] {
			t.Errorf("第 %d 个子元件顺序不正确", i)
		}
	}
}

func TestSharedElement(t *testing.T) {
	r := base.NewResistor(10)
	s := element.NewSequential(r, r, r)
	p := element.NewParallel(r, s)
	if got := s.CalculateResistance(element.DefaultPower); got != 30 {
		t.Errorf("共享元件串联不正确: 期望 30, 实际 %v", got)
	}
	if got := p.CalculateResistance(element.DefaultPower); math.Abs(got-7.5) > 1e-9 {
		t.Errorf("共享元件并联不正确: 期望 7.5, 实际 %v", got)
	}
}

func TestCombined(t *testing.T) {
	pc := element.NewParallel(base.NewResistor(27), base.NewInductor(0.5))
	all := element.NewCombined(pc)
	for _, p := range []element.Power{1, 60, 400} {
		if a, b := all.CalculateResistance(p), pc.CalculateResistance(p); a != b {
			t.Errorf("工作条件 %v 下组合元件与并联结果不同: %v != %v", p, a, b)
		}
	}
	// 组合元件持有独立副本
	pc.AddElements(base.NewResistor(1))
	if all.Len() != 2 || pc.Len() != 3 {
		t.Errorf("组合元件不应受原并联追加影响: %d %d", all.Len(), pc.Len())
	}
}

func TestCombination(t *testing.T) {
	c1 := base.NewCapacitor(12)
	r1 := base.NewResistor(27)
	i1 := base.NewInductor(7)

	var sc element.SequentialConnections
	sc.AddElements(c1)
	sc.AddElements(r1)

	var pc element.ParallelConnections
	pc.AddElements(i1)
	all := element.NewCombined(&pc)
	pc.AddElements(all)

	if got := pc.CalculateResistance(element.DefaultPower); math.Abs(got-209.99998) > 1e-3 {
		t.Errorf("组合电路电阻不正确: 期望 %v, 实际 %v", 209.99998, got)
	}
	if got := sc.CalculateResistance(element.DefaultPower); math.Abs(got-(27+1/(2*3.14*60*12))) > 1e-9 {
		t.Errorf("串联电阻不正确: %v", got)
	}
}

func TestNestedCombined(t *testing.T) {
	// (R1 || R2) + R3，再与 R4 并联
	inner := element.NewParallel(base.NewResistor(20), base.NewResistor(20))
	s := element.NewSequential(element.NewCombined(inner), base.NewResistor(10))
	root := element.NewParallel(s, base.NewResistor(20))
	if got := root.CalculateResistance(element.DefaultPower); math.Abs(got-10) > 1e-9 {
		t.Errorf("嵌套电路电阻不正确: 期望 10, 实际 %v", got)
	}
}
