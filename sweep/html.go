package sweep

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/pkg/errors"
)

// WriteHTML 将扫描结果绘制为可交互的网页曲线
func WriteHTML(w io.Writer, points []Point, plotOpts PlotOptions) error {
	data := make([]opts.LineData, 0, len(points))
	for _, pt := range points {
		if math.IsInf(pt.Resistance, 0) || math.IsNaN(pt.Resistance) {
			continue
		}
		if plotOpts.LogScale && pt.Power <= 0 {
			continue
		}
		data = append(data, opts.LineData{Value: []float64{float64(pt.Power), pt.Resistance}})
	}
	if len(data) == 0 {
		return errors.New("没有可绘制的扫描结果")
	}
	axisType := "value"
	if plotOpts.LogScale {
		axisType = "log"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    plotOpts.Title,
			Subtitle: "等效电阻随工作条件变化曲线",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Power",
			Type: axisType,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Resistance",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)
	line.AddSeries("Resistance", data)

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}
