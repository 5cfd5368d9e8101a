package sweep

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotOptions 曲线绘制参数
type PlotOptions struct {
	Title    string    // 标题
	LogScale bool      // 横轴使用对数刻度
	Width    vg.Length // 宽度，默认 6 英寸
	Height   vg.Length // 高度，默认 4 英寸
	Format   string    // png svg pdf html 等，默认 png
}

// NewPlot 绘制等效电阻随工作条件变化的曲线
// 非有限值的点被跳过，对数刻度时跳过非正工作条件
func NewPlot(points []Point, opts PlotOptions) (*plot.Plot, error) {
	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if math.IsInf(pt.Resistance, 0) || math.IsNaN(pt.Resistance) {
			continue
		}
		if opts.LogScale && pt.Power <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(pt.Power), Y: pt.Resistance})
	}
	if len(xys) == 0 {
		return nil, errors.New("没有可绘制的扫描结果")
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Power"
	p.Y.Label.Text = "Resistance"
	if opts.LogScale {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.Wrap(err, "创建曲线失败")
	}
	p.Add(plotter.NewGrid(), line)
	return p, nil
}

// WritePlot 绘制曲线并按格式写出
func WritePlot(w io.Writer, points []Point, opts PlotOptions) error {
	if opts.Width == 0 {
		opts.Width = 6 * vg.Inch
	}
	if opts.Height == 0 {
		opts.Height = 4 * vg.Inch
	}
	switch opts.Format {
	case "":
		opts.Format = "png"
	case "html":
		return WriteHTML(w, points, opts)
	}
	p, err := NewPlot(points, opts)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return errors.Wrapf(err, "不支持的格式 '%s'", opts.Format)
	}
	_, err = writer.WriteTo(w)
	return err
}
