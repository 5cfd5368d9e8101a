package main

import (
	"fmt"
	"impedance/element"
	"impedance/sweep"
	"impedance/utils"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// sweepFlags 扫描范围参数，sweep 与 plot 共用
type sweepFlags struct {
	From    string
	To      string
	Points  int
	Scale   string
	Workers int
}

func defaultSweepFlags(opts sweep.Options) sweepFlags {
	return sweepFlags{
		From:    utils.FromFloat64Slice([]float64{float64(opts.From)})[0],
		To:      utils.FromFloat64Slice([]float64{float64(opts.To)})[0],
		Points:  opts.Points,
		Scale:   string(opts.Scale),
		Workers: opts.Workers,
	}
}

func (f *sweepFlags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.From, "from", f.From, "起始工作条件")
	fs.StringVar(&f.To, "to", f.To, "结束工作条件")
	fs.IntVarP(&f.Points, "points", "n", f.Points, "扫描点数")
	fs.StringVar(&f.Scale, "scale", f.Scale, "扫描刻度 log|linear")
	fs.IntVar(&f.Workers, "workers", f.Workers, "并发计算数，0 使用 CPU 数量")
}

func (f *sweepFlags) Options() (sweep.Options, error) {
	values := utils.NetList{f.From, f.To}
	from, err := values.Float64(0)
	if err != nil {
		return sweep.Options{}, errors.Wrap(err, "--from")
	}
	to, err := values.Float64(1)
	if err != nil {
		return sweep.Options{}, errors.Wrap(err, "--to")
	}
	scale, err := sweep.ParseScale(f.Scale)
	if err != nil {
		return sweep.Options{}, err
	}
	return sweep.Options{
		From:    element.Power(from),
		To:      element.Power(to),
		Points:  f.Points,
		Scale:   scale,
		Workers: f.Workers,
	}, nil
}

type SweepOptions struct {
	*GlobalOptions
	sweepFlags
	XLSX string
}

func NewCmdSweep(g *GlobalOptions) *cobra.Command {
	o := &SweepOptions{GlobalOptions: g, sweepFlags: defaultSweepFlags(g.cfg.SweepOptions())}
	cmd := &cobra.Command{
		Use:   "sweep FILE",
		Short: "在一组工作条件下计算等效电阻",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd, args[0])
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *SweepOptions) Bind(fs *pflag.FlagSet) {
	o.sweepFlags.Bind(fs)
	fs.StringVar(&o.XLSX, "xlsx", "", "同时导出 xlsx 表格")
}

func (o *SweepOptions) Run(cmd *cobra.Command, filename string) error {
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

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "POWER\tRESISTANCE")
	for _, pt := range points {
		fmt.Fprintf(w, "%g\t%g\n", pt.Power, pt.Resistance)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if summary, err := sweep.Summarize(points); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "min %g @ %g\nmax %g @ %g\n",
			summary.Min.Resistance, summary.Min.Power, summary.Max.Resistance, summary.Max.Power)
	}

	if o.XLSX == "" {
		return nil
	}
	file, err := os.Create(o.XLSX)
	if err != nil {
		return errors.Wrapf(err, "无法创建文件 %s", o.XLSX)
	}
	defer file.Close()
	if err := sweep.WriteXLSX(file, points); err != nil {
		return err
	}
	zap.S().Infow("已导出表格", "file", o.XLSX, "points", len(points))
	return nil
}
