package main

import (
	"impedance/sweep"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type PlotOptions struct {
	*GlobalOptions
	sweepFlags
	Output string
	Format string
	Title  string
}

func NewCmdPlot(g *GlobalOptions) *cobra.Command {
	o := &PlotOptions{GlobalOptions: g, sweepFlags: defaultSweepFlags(g.cfg.SweepOptions())}
	cmd := &cobra.Command{
		Use:   "plot FILE -o OUT",
		Short: "绘制等效电阻随工作条件变化的曲线",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd, args[0])
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (o *PlotOptions) Bind(fs *pflag.FlagSet) {
	o.sweepFlags.Bind(fs)
	fs.StringVarP(&o.Output, "output", "o", "", "输出文件")
	fs.StringVar(&o.Format, "format", "", "图片格式 png|svg|pdf|jpg，默认取输出文件扩展名")
	fs.StringVar(&o.Title, "title", "", "标题，默认为文件名")
}

func (o *PlotOptions) Run(cmd *cobra.Command, filename string) error {
	opts, err := o.Options()
	if err != nil {
		return err
	}
	cir, err := o.Load(filename)
	if err != nil {
		return err
	}
	points, err := cir.Sweep(cmd.Context(), opts)
	if err != nil {
		return err
	}

	plotOpts := sweep.PlotOptions{
		Title:    o.Title,
		LogScale: opts.Scale == sweep.ScaleLog,
		Format:   o.Format,
	}
	if plotOpts.Title == "" {
		plotOpts.Title = filepath.Base(filename)
	}
	if plotOpts.Format == "" {
		plotOpts.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.Output)), ".")
	}
	file, err := os.Create(o.Output)
	if err != nil {
		return errors.Wrapf(err, "无法创建文件 %s", o.Output)
	}
	defer file.Close()
	if err := sweep.WritePlot(file, points, plotOpts); err != nil {
		return err
	}
	zap.S().Infow("已绘制曲线", "file", o.Output, "points", len(points))
	return nil
}
