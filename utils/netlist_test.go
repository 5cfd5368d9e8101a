package utils

import (
	"math"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := map[string]float64{
		"27":    27,
		"1e-5":  1e-5,
		" 4.7 ": 4.7,
		"2k":    2000,
		"2K":    2000,
		"3meg":  3e6,
		"1G":    1e9,
		"1t":    1e12,
		"-1.5":  -1.5,
	}
	for s, expected := range tests {
		got, err := ParseValue(s)
		if err != nil {
			t.Errorf("%q 解析失败: %v", s, err)
			continue
		}
		if got != expected {
			t.Errorf("%q 解析错误: 期望 %g, 实际 %g", s, expected, got)
		}
	}
	// 小数单位存在舍入
	for s, expected := range map[string]float64{"10m": 1e-2, "1u": 1e-6, "47n": 47e-9, "22p": 22e-12, "5f": 5e-15} {
		got, err := ParseValue(s)
		if err != nil || math.Abs(got-expected) > expected*1e-12 {
			t.Errorf("%q 解析错误: 期望 %g, 实际 %g (%v)", s, expected, got, err)
		}
	}
	for _, s := range []string{"", "abc", "k", "1x", "1..2k"} {
		if _, err := ParseValue(s); err == nil {
			t.Errorf("%q 应返回错误", s)
		}
	}
}

func TestNetList(t *testing.T) {
	list := NetList{"R12", "1k", "x"}
	if typeName, id := list.SeparationPrick(0); typeName != "R" || id != 12 {
		t.Errorf("分离错误: %s %d", typeName, id)
	}
	if typeName, id := (NetList{"p"}).SeparationPrick(0); typeName != "P" || id != 0 {
		t.Errorf("无编号分离错误: %s %d", typeName, id)
	}
	if v := list.ParseFloat64(1, 0); v != 1000 {
		t.Errorf("参数解析错误: %g", v)
	}
	if v := list.ParseFloat64(2, 5); v != 5 {
		t.Errorf("无效参数应返回默认值: %g", v)
	}
	if _, err := list.Float64(3); err == nil {
		t.Error("越界参数应返回错误")
	}
	if s := list.ParseString(3, "def"); s != "def" {
		t.Errorf("越界字符串应返回默认值: %s", s)
	}
	got := FromFloat64Slice([]float64{1, 2.5, 1e-5})
	for i, s := range []string{"1", "2.5", "1e-05"} {
		if got[i] != s {
			t.Errorf("第 %d 个数值转换错误: %s", i, got[i])
		}
	}
	if FromFloat64Slice(nil) == nil {
		t.Error("nil 应转换为空列表")
	}
}

func TestAnyToString(t *testing.T) {
	tests := []struct {
		v        any
		expected string
	}{
		{nil, ""},
		{"4.7k", "4.7k"},
		{27, "27"},
		{int64(-3), "-3"},
		{uint64(8), "8"},
		{1e-5, "1e-05"},
		{2.5, "2.5"},
		{true, "true"},
	}
	for _, tt := range tests {
		if s := AnyToString(tt.v); s != tt.expected {
			t.Errorf("%#v 转换错误: 期望 %q, 实际 %q", tt.v, tt.expected, s)
		}
	}
}
