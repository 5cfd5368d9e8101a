package load

import (
	"impedance/element"
	"impedance/load/ast"
	"impedance/utils"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	_ "impedance/element/base"
)

// 组合元件名称前缀
const (
	TypeSequential = "S" // 串联组合
	TypeParallel   = "P" // 并联组合
	TypeCombined   = "X" // 组合元件
)

// Circuit 加载得到的元件树
type Circuit struct {
	Root     element.ElementFace            // 根元件
	Power    element.Power                  // 工作条件
	PowerSet bool                           // 文件中指定了工作条件
	Elements map[string]element.ElementFace // 命名元件，键为大写名称
	Names    []string                       // 命名元件的定义顺序
}

// newCircuit 初始化
func newCircuit() *Circuit {
	return &Circuit{
		Power:    element.DefaultPower,
		Elements: map[string]element.ElementFace{},
	}
}

// add 登记命名元件
func (cir *Circuit) add(name string, e element.ElementFace) error {
	key := strings.ToUpper(name)
	if _, ok := cir.Elements[key]; ok {
		return errors.Errorf("元件 '%s' 重复定义", name)
	}
	cir.Elements[key] = e
	cir.Names = append(cir.Names, key)
	return nil
}

// Lookup 按名称查找元件，名称不区分大小写
func (cir *Circuit) Lookup(name string) (element.ElementFace, bool) {
	e, ok := cir.Elements[strings.ToUpper(name)]
	return e, ok
}

// Export 导出为网表
func (cir *Circuit) Export(w io.Writer) error {
	return Export(w, cir.Root, cir.Power)
}

// LoadFile 加载文件，.yaml/.yml 使用 YAML 格式，其余按网表解析
func LoadFile(filename string) (*Circuit, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "无法打开文件 %s", filename)
	}
	defer file.Close()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return LoadYAML(file)
	}
	return LoadReader(file)
}

// LoadString 加载网表字符串
func LoadString(s string) (*Circuit, error) {
	return LoadReader(strings.NewReader(s))
}

// LoadReader 加载网表
func LoadReader(r io.Reader) (*Circuit, error) {
	// 解析网表
	parseTree, err := ast.NewParseTree(r)
	if err != nil {
		return nil, err
	}
	cir := newCircuit()
	// 工作条件
	if parseTree.Power != nil {
		s, err := parseTree.Power.Resolve(parseTree.ValueNodes)
		if err != nil {
			return nil, err
		}
		p, err := utils.ParseValue(s)
		if err != nil {
			return nil, errors.Wrapf(err, "第 %d 行: 工作条件", parseTree.Power.Line)
		}
		cir.Power, cir.PowerSet = element.Power(p), true
	}
	// 按定义顺序创建元件，子元件必须先定义
	for _, elemNode := range parseTree.ElementNodes {
		e, err := createElementFromAST(cir, elemNode, parseTree.ValueNodes)
		if err != nil {
			return nil, errors.Wrapf(err, "第 %d 行", elemNode.Line)
		}
		if err := cir.add(elemNode.Name, e); err != nil {
			return nil, errors.Wrapf(err, "第 %d 行", elemNode.Line)
		}
		zap.S().Debugw("加载元件", "name", elemNode.Name, "line", elemNode.Line, "values", len(elemNode.Values))
	}
	if len(cir.Names) == 0 {
		return nil, errors.New("网表没有元件")
	}
	// 根元件，默认最后定义的元件
	if parseTree.Root != nil {
		root, ok := cir.Lookup(parseTree.Root.Value)
		if !ok {
			return nil, errors.Errorf("第 %d 行: 根元件 '%s' 未定义", parseTree.Root.Line, parseTree.Root.Value)
		}
		cir.Root = root
	} else {
		cir.Root = cir.Elements[cir.Names[len(cir.Names)-1]]
	}
	return cir, nil
}

// createElementFromAST 根据AST元素节点创建元件实例
func createElementFromAST(cir *Circuit, elemNode *ast.ElementNode, vars map[string]string) (element.ElementFace, error) {
	values := make(utils.NetList, len(elemNode.Values))
	for i, val := range elemNode.Values {
		s, err := val.Resolve(vars)
		if err != nil {
			return nil, err
		}
		values[i] = s
	}
	typeName, _ := utils.NetList{elemNode.Name}.SeparationPrick(0)
	switch typeName {
	case TypeSequential, TypeParallel, TypeCombined:
	default:
		return element.NewElement(elemNode.Name, values)
	}
	// 组合元件，列表为已定义元件名称
	children := make([]element.ElementFace, len(values))
	for i, name := range values {
		child, ok := cir.Lookup(name)
		if !ok {
			return nil, errors.Errorf("子元件 '%s' 未定义", name)
		}
		children[i] = child
	}
	switch typeName {
	case TypeSequential:
		return element.NewSequential(children...), nil
	case TypeParallel:
		return element.NewParallel(children...), nil
	}
	if len(children) != 1 {
		return nil, errors.Wrapf(element.ErrNotParallel, "'%s' 需要 1 个并联组合，得到 %d 个元件", elemNode.Name, len(children))
	}
	pc, ok := children[0].(*element.ParallelConnections)
	if !ok {
		return nil, errors.Wrapf(element.ErrNotParallel, "'%s' 的子元件 '%s'", elemNode.Name, values[0])
	}
	return element.NewCombined(pc), nil
}
