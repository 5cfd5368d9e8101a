package element

import (
	"impedance/utils"
	"log"
	"strings"

	"github.com/pkg/errors"
)

// Power 工作条件（角频率等效参数）
type Power float64

// DefaultPower 未指定时的工作条件
const DefaultPower Power = 60

// ElementFace 元件接口
// 叶子元件与组合元件都通过该接口计算等效电阻
type ElementFace interface {
	CalculateResistance(p Power) float64 // 计算给定工作条件下的等效电阻
}

// LeafFace 叶子元件接口，提供元件类型与参数
type LeafFace interface {
	ElementFace
	Type() NodeType    // 元件类型标识
	Values() []float64 // 元件参数
}

// ConfigFace 元件配置接口，提供元件的静态配置信息
type ConfigFace interface {
	GetConfig() *Config               // 获取元件配置结构体指针
	New(values []float64) ElementFace // 根据参数创建元件
}

// ElementList 元件类型注册表
var ElementList = map[NodeType]ConfigFace{}

// ElementListName 元件名称注册表，键为大写名称
var ElementListName = map[string]NodeType{}

// AddElement 注册元件类型到全局元件列表
// 如果元件类型或名称已注册，会触发致命错误并终止程序
func AddElement(eleType NodeType, face ConfigFace) NodeType {
	if _, ok := ElementList[eleType]; ok {
		log.Fatalf("元件重复注册: %d", eleType)
	}
	name := face.GetConfig().GetName()
	if _, ok := ElementListName[name]; ok {
		log.Fatalf("元件名称重复注册: %s", name)
	}
	ElementList[eleType] = face
	ElementListName[name] = eleType
	return eleType
}

// NewElement 根据元件名称（如 "r"、"C12"）与参数创建叶子元件
// 缺省参数取配置中的初始值，多余参数视为错误
func NewElement(name string, values utils.NetList) (ElementFace, error) {
	typeName, _ := utils.NetList{name}.SeparationPrick(0)
	nodeType, ok := ElementListName[strings.ToUpper(typeName)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "'%s'", name)
	}
	face := ElementList[nodeType]
	config := face.GetConfig()
	if len(values) > config.ValueNum() {
		return nil, errors.Wrapf(ErrValueCount, "元件 '%s' 需要 %d 个参数，得到 %d", name, config.ValueNum(), len(values))
	}
	params := make([]float64, config.ValueNum())
	copy(params, config.ValueInit)
	for i := range values {
		v, err := values.Float64(i)
		if err != nil {
			return nil, errors.Wrapf(err, "元件 '%s'", name)
		}
		params[i] = v
	}
	return face.New(params), nil
}

// NodeType 元件类型标识
type NodeType uint

// Config 获取指定元件类型的配置信息
// 返回：指向元件配置结构体的指针，如果类型未注册则返回nil
func (t NodeType) Config() *Config {
	if face, ok := ElementList[t]; ok {
		return face.GetConfig()
	}
	return nil
}

// String 元件名称
func (t NodeType) String() string {
	if config := t.Config(); config != nil {
		return config.Name
	}
	return "?"
}
