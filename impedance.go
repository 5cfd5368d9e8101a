// Package impedance 计算由电阻、电容、电感经串联、并联组合而成的元件树的等效电阻。
//
// 元件树可以从网表或 YAML 文件加载，也可以通过 element 包直接构建。
package impedance

import (
	"context"
	"impedance/element"
	"io"
	"impedance/load"
	"impedance/sweep"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	_ "impedance/element/base"
)

// ErrNotLoaded 尚未加载元件树
var ErrNotLoaded = errors.New("尚未加载元件树")

// Circuit 已加载的元件树
type Circuit struct {
	*load.Circuit
}

// NewCircuit 初始化
func NewCircuit() *Circuit {
	return &Circuit{}
}

// Load 加载网表或 YAML 文件
func (cir *Circuit) Load(filename string) error {
	c, err := load.LoadFile(filename)
	if err != nil {
		return err
	}
	cir.Circuit = c
	zap.S().Debugw("加载完成", "file", filename, "elements", len(c.Names), "power", c.Power)
	return nil
}

// LoadString 加载网表文本
func (cir *Circuit) LoadString(s string) error {
	c, err := load.LoadString(s)
	if err != nil {
		return err
	}
	cir.Circuit = c
	return nil
}

// SetPower 修改工作条件
func (cir *Circuit) SetPower(p element.Power) {
	if cir.Circuit != nil {
		cir.Power = p
	}
}

// Calculate 计算根元件在当前工作条件下的等效电阻
// 结果可能为 +Inf 或 NaN，未加载时返回 NaN
func (cir *Circuit) Calculate() float64 {
	if cir.Circuit == nil {
		return math.NaN()
	}
	return cir.Root.CalculateResistance(cir.Power)
}

// Evaluate 校验元件树后计算等效电阻
func (cir *Circuit) Evaluate() (float64, error) {
	if cir.Circuit == nil {
		return 0, ErrNotLoaded
	}
	return element.Evaluate(cir.Root, cir.Power)
}

// Sweep 在一组工作条件下计算等效电阻
func (cir *Circuit) Sweep(ctx context.Context, opts sweep.Options) ([]sweep.Point, error) {
	if cir.Circuit == nil {
		return nil, ErrNotLoaded
	}
	points, err := sweep.RunContext(ctx, cir.Root, opts)
	if err != nil {
		return nil, err
	}
	zap.S().Debugw("扫描完成", "points", len(points), "scale", opts.Scale)
	return points, nil
}

// Export 导出为网表
func (cir *Circuit) Export(w io.Writer) error {
	if cir.Circuit == nil {
		return ErrNotLoaded
	}
	return cir.Circuit.Export(w)
}
