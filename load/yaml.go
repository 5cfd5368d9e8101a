package load

import (
	"impedance/element"
	"impedance/utils"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Document YAML 格式的元件树
//
//	power: 60
//	root:
//	  type: p
//	  children:
//	    - {name: L1, type: l, value: 7}
//	    - type: x
//	      children: [{ref: L1}]
type Document struct {
	Power any   `yaml:"power,omitempty"` // 工作条件，支持单位后缀
	Root  *Node `yaml:"root"`            // 根元件
}

// Node YAML 元件节点
type Node struct {
	Name     string  `yaml:"name,omitempty"`     // 名称，供 ref 引用
	Type     string  `yaml:"type,omitempty"`     // r c l s p x
	Value    any     `yaml:"value,omitempty"`    // 叶子元件参数
	Ref      string  `yaml:"ref,omitempty"`      // 引用已定义的命名元件
	Children []*Node `yaml:"children,omitempty"` // 组合元件的子元件
}

// LoadYAML 加载 YAML 格式的元件树
func LoadYAML(r io.Reader) (*Circuit, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "解析 YAML 失败")
	}
	if doc.Root == nil {
		return nil, errors.New("YAML 缺少 root 元件")
	}
	cir := newCircuit()
	if doc.Power != nil {
		p, err := utils.ParseValue(utils.AnyToString(doc.Power))
		if err != nil {
			return nil, errors.Wrap(err, "工作条件")
		}
		cir.Power, cir.PowerSet = element.Power(p), true
	}
	root, err := buildNode(cir, doc.Root, "root")
	if err != nil {
		return nil, err
	}
	cir.Root = root
	return cir, nil
}

// buildNode 递归创建元件
func buildNode(cir *Circuit, node *Node, path string) (element.ElementFace, error) {
	if node == nil {
		return nil, errors.Errorf("%s: 空元件", path)
	}
	if node.Ref != "" {
		if node.Type != "" || node.Value != nil || len(node.Children) > 0 || node.Name != "" {
			return nil, errors.Errorf("%s: ref 节点不能包含其他字段", path)
		}
		e, ok := cir.Lookup(node.Ref)
		if !ok {
			return nil, errors.Errorf("%s: 引用的元件 '%s' 未定义", path, node.Ref)
		}
		return e, nil
	}
	e, err := createElementFromNode(cir, node, path)
	if err != nil {
		return nil, err
	}
	if node.Name != "" {
		if err := cir.add(node.Name, e); err != nil {
			return nil, errors.Wrap(err, path)
		}
	}
	zap.S().Debugw("加载元件", "path", path, "type", node.Type, "name", node.Name)
	return e, nil
}

func createElementFromNode(cir *Circuit, node *Node, path string) (element.ElementFace, error) {
	typeName := strings.ToUpper(node.Type)
	switch typeName {
	case TypeSequential, TypeParallel, TypeCombined:
	default:
		if len(node.Children) > 0 {
			return nil, errors.Errorf("%s: 叶子元件 '%s' 不能包含子元件", path, node.Type)
		}
		var values utils.NetList
		if node.Value != nil {
			values = utils.NetList{utils.AnyToString(node.Value)}
		}
		e, err := element.NewElement(typeName, values)
		if err != nil {
			return nil, errors.Wrap(err, path)
		}
		return e, nil
	}
	if node.Value != nil {
		return nil, errors.Errorf("%s: 组合元件不能包含 value", path)
	}
	children := make([]element.ElementFace, len(node.Children))
	for i, child := range node.Children {
		e, err := buildNode(cir, child, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		children[i] = e
	}
	switch typeName {
	case TypeSequential:
		return element.NewSequential(children...), nil
	case TypeParallel:
		return element.NewParallel(children...), nil
	}
	// 单个并联子元件直接包装，否则子元件组成新的并联组合
	if len(children) == 1 {
		if pc, ok := children[0].(*element.ParallelConnections); ok {
			return element.NewCombined(pc), nil
		}
	}
	return element.NewCombined(element.NewParallel(children...)), nil
}
