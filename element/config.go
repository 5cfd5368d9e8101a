package element

import "strings"

// Config 元件配置结构体，存储元件的静态配置信息。
// 这些配置在元件注册时初始化，之后保持不变。
type Config struct {
	Name      string    // 元件名称（如 "r" 表示电阻），网表文件中使用的前缀。
	ValueInit []float64 // 初始化数据，缺省参数取该值。
	ValueName []string  // 参数名称。
}

// GetConfig 获取元件配置结构体指针。
func (config *Config) GetConfig() *Config { return config }

// GetName 元件名称。
func (config *Config) GetName() string {
	return strings.ToUpper(config.Name)
}

// ValueNum 获取元件的参数数量。
func (config *Config) ValueNum() int { return len(config.ValueInit) }
