package utils

import (
	"fmt"
	"strconv"
)

// AnyToString 将 YAML 等解码得到的标量转换为字符串
// 浮点数使用最短表示，保证再次解析得到相同的值
func AnyToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}
