// Package sweep 在一组工作条件下计算元件树的等效电阻，
// 并提供曲线绘制与表格导出。
package sweep

import (
	"context"
	"impedance/element"
	"math"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Scale 扫描刻度
type Scale string

// 扫描刻度
const (
	ScaleLinear Scale = "linear" // 线性刻度
	ScaleLog    Scale = "log"    // 对数刻度
)

// ParseScale 解析扫描刻度
func ParseScale(s string) (Scale, error) {
	switch Scale(strings.ToLower(s)) {
	case ScaleLinear, "lin":
		return ScaleLinear, nil
	case ScaleLog, "dec":
		return ScaleLog, nil
	}
	return "", errors.Errorf("未知的扫描刻度 '%s'", s)
}

// Options 扫描参数
type Options struct {
	From   element.Power // 起始工作条件
	To     element.Power // 结束工作条件
	Points int           // 点数，至少为 2
	Scale  Scale         // 刻度，默认线性

	Workers int // 并发计算数，0 使用 CPU 数量
}

// Point 扫描结果
type Point struct {
	Power      element.Power // 工作条件
	Resistance float64       // 等效电阻
}

// Powers 生成工作条件序列
func (opts Options) Powers() ([]element.Power, error) {
	if opts.Points < 2 {
		return nil, errors.Errorf("扫描点数至少为 2，得到 %d", opts.Points)
	}
	dst := make([]float64, opts.Points)
	switch opts.Scale {
	case ScaleLog:
		if opts.From <= 0 || opts.To <= 0 {
			return nil, errors.Errorf("对数扫描范围必须为正数: %g ~ %g", opts.From, opts.To)
		}
		floats.LogSpan(dst, float64(opts.From), float64(opts.To))
	case ScaleLinear, "":
		floats.Span(dst, float64(opts.From), float64(opts.To))
	default:
		return nil, errors.Errorf("未知的扫描刻度 '%s'", opts.Scale)
	}
	powers := make([]element.Power, len(dst))
	for i, v := range dst {
		powers[i] = element.Power(v)
	}
	return powers, nil
}

// Run 按扫描参数计算等效电阻
func Run(e element.ElementFace, opts Options) ([]Point, error) {
	return RunContext(context.Background(), e, opts)
}

// RunContext 并发计算各工作条件下的等效电阻，结果按工作条件顺序排列
// 计算期间元件树不能被修改
func RunContext(ctx context.Context, e element.ElementFace, opts Options) ([]Point, error) {
	powers, err := opts.Powers()
	if err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	points := make([]Point, len(powers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range powers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			points[i] = Point{Power: p, Resistance: e.CalculateResistance(p)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// Summary 扫描结果统计
type Summary struct {
	Min Point // 最小等效电阻
	Max Point // 最大等效电阻
}

// Summarize 统计最小与最大等效电阻，NaN 不参与比较
func Summarize(points []Point) (Summary, error) {
	values := make([]float64, 0, len(points))
	index := make([]int, 0, len(points))
	for i, pt := range points {
		if math.IsNaN(pt.Resistance) {
			continue
		}
		values = append(values, pt.Resistance)
		index = append(index, i)
	}
	if len(values) == 0 {
		return Summary{}, errors.New("没有有效的扫描结果")
	}
	return Summary{
		Min: points[index[floats.MinIdx(values)]],
		Max: points[index[floats.MaxIdx(values)]],
	}, nil
}

// Resistances 等效电阻序列
func Resistances(points []Point) []float64 {
	values := make([]float64, len(points))
	for i, pt := range points {
		values[i] = pt.Resistance
	}
	return values
}
