package load

import (
	"bufio"
	"fmt"
	"impedance/element"
	"impedance/utils"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// exporter 网表导出状态
type exporter struct {
	writer  *bufio.Writer
	names   map[element.ElementFace]string // 已导出元件
	working map[element.ElementFace]bool   // 正在导出的组合元件
	counter map[string]int                 // 各前缀编号
}

// Export 导出网表格式数据
// 子元件先于组合元件输出，同一元件只输出一次并按名称引用
func Export(w io.Writer, root element.ElementFace, p element.Power) error {
	exp := &exporter{
		writer:  bufio.NewWriter(w),
		names:   map[element.ElementFace]string{},
		working: map[element.ElementFace]bool{},
		counter: map[string]int{},
	}
	fmt.Fprintf(exp.writer, ".power %s\n", strconv.FormatFloat(float64(p), 'g', -1, 64))
	name, err := exp.export(root)
	if err != nil {
		return err
	}
	fmt.Fprintf(exp.writer, ".root %s\n", name)
	return exp.writer.Flush()
}

// newName 分配元件名称
func (exp *exporter) newName(prefix string) string {
	prefix = strings.ToUpper(prefix)
	exp.counter[prefix]++
	return prefix + strconv.Itoa(exp.counter[prefix])
}

// line 输出元件定义
func (exp *exporter) line(name string, values []string) {
	fmt.Fprintf(exp.writer, "%s [%s]\n", name, strings.Join(values, ", "))
}

// children 导出子元件并返回名称
func (exp *exporter) children(list []element.ElementFace) ([]string, error) {
	names := make([]string, len(list))
	for i, child := range list {
		name, err := exp.export(child)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

func (exp *exporter) export(e element.ElementFace) (string, error) {
	if name, ok := exp.names[e]; ok {
		return name, nil
	}
	var name string
	switch v := e.(type) {
	case element.LeafFace:
		name = exp.newName(v.Type().String())
		exp.line(name, utils.FromFloat64Slice(v.Values()))
	case *element.SequentialConnections, *element.ParallelConnections, *element.Combined:
		if exp.working[e] {
			return "", element.ErrCycle
		}
		exp.working[e] = true
		children, err := exp.children(element.Children(e))
		if err != nil {
			return "", err
		}
		delete(exp.working, e)
		switch e.(type) {
		case *element.SequentialConnections:
			name = exp.newName(TypeSequential)
		case *element.ParallelConnections:
			name = exp.newName(TypeParallel)
		default:
			// 先输出内部并联组合
			inner := exp.newName(TypeParallel)
			exp.line(inner, children)
			children = []string{inner}
			name = exp.newName(TypeCombined)
		}
		exp.line(name, children)
	default:
		return "", errors.Errorf("无法导出的元件类型 %T", e)
	}
	exp.names[e] = name
	return name, nil
}
