package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NetList 网表定义
type NetList []string

// unitMap 数值单位后缀
var unitMap = map[string]float64{
	"T":   1e12,  // 太
	"G":   1e9,   // 吉
	"MEG": 1e6,   // 兆
	"K":   1e3,   // 千
	"M":   1e-3,  // 毫
	"U":   1e-6,  // 微
	"N":   1e-9,  // 纳
	"P":   1e-12, // 皮
	"F":   1e-15, // 飞
}

// FromFloat64Slice 将 []float64 转换为 NetList 类型
func FromFloat64Slice(slice []float64) NetList {
	if slice == nil {
		return NetList{}
	}
	result := make(NetList, len(slice))
	for i, v := range slice {
		result[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return result
}

// SeparationPrick 分离元件名称的类型前缀与编号
// "R12" 得到 ("R", 12)，没有数字时整体作为类型名
func (value NetList) SeparationPrick(i int) (typeName string, id int) {
	nameStr := strings.ToUpper(value[i])
	for i, char := range nameStr {
		if char >= '0' && char <= '9' {
			typeName = nameStr[:i]
			id, _ = strconv.Atoi(nameStr[i:])
			break
		}
	}
	if typeName == "" {
		typeName = nameStr
	}
	return typeName, id
}

// ParseFloat64 解析64位浮点数
func (value NetList) ParseFloat64(i int, defaultValue float64) float64 {
	if val, err := value.Float64(i); err == nil {
		return val
	}
	return defaultValue
}

// Float64 解析带单位后缀的浮点数，如 "4.7k"、"10u"、"1meg"
func (value NetList) Float64(i int) (float64, error) {
	if i >= len(value) {
		return 0, fmt.Errorf("缺少第 %d 个参数", i+1)
	}
	return ParseValue(value[i])
}

// ParseString 安全获取字符串
func (value NetList) ParseString(i int, defaultValue string) string {
	if i < len(value) {
		return value[i]
	}
	return defaultValue
}

// ParseValue 解析数值与单位 1k -> 1000
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, nil
	}
	upper := strings.ToUpper(s)
	for _, suffix := range []string{"MEG", "T", "G", "K", "M", "U", "N", "P", "F"} {
		if !strings.HasSuffix(upper, suffix) {
			continue
		}
		val, err := strconv.ParseFloat(s[:len(s)-len(suffix)], 64)
		if err != nil {
			break
		}
		return val * unitMap[suffix], nil
	}
	return 0, fmt.Errorf("无效的数值 '%s'", s)
}
