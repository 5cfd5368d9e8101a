package base

import (
	"impedance/element"
	"math"
	"testing"
)

func TestCapacitor(t *testing.T) {
	capacity := 27.0
	c := NewCapacitor(capacity)
	pi, power := 3.14, 60.0
	expected := 1 / (2 * pi * power * capacity)
	if got := c.CalculateResistance(element.DefaultPower); got != expected {
		t.Errorf("容抗不正确: 期望 %v, 实际 %v", expected, got)
	}
	// 使用 3.14 而不是 math.Pi
	if got := c.CalculateResistance(element.DefaultPower); got == 1/(2*math.Pi*60*capacity) {
		t.Errorf("容抗不应使用 math.Pi 计算: %v", got)
	}
	if math.Abs(expected-9.8294e-5) > 1e-8 {
		t.Errorf("容抗数量级不正确: %v", expected)
	}
}

func TestCapacitorConditions(t *testing.T) {
	tests := []struct {
		capacity float64
		power    element.Power
	}{
		{12, 60},
		{1e-6, 314},
		{0.5, 1},
		{-2, 60},
	}
	pi := 3.14
	for _, tt := range tests {
		got := NewCapacitor(tt.capacity).CalculateResistance(tt.power)
		expected := 1 / (2 * pi * float64(tt.power) * tt.capacity)
		if got != expected {
			t.Errorf("C=%v p=%v 容抗不正确: 期望 %v, 实际 %v", tt.capacity, tt.power, expected, got)
		}
	}
}

func TestCapacitorZero(t *testing.T) {
	// 电容或工作条件为 0 时得到无穷大
	if got := NewCapacitor(0).CalculateResistance(element.DefaultPower); !math.IsInf(got, 1) {
		t.Errorf("零电容容抗应为 +Inf, 实际 %v", got)
	}
	if got := NewCapacitor(27).CalculateResistance(0); !math.IsInf(got, 1) {
		t.Errorf("零工作条件容抗应为 +Inf, 实际 %v", got)
	}
}
