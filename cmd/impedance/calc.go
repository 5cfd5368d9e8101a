package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CalcOptions struct {
	*GlobalOptions
	Checked bool
}

func NewCmdCalc(g *GlobalOptions) *cobra.Command {
	o := &CalcOptions{GlobalOptions: g}
	cmd := &cobra.Command{
		Use:   "calc FILE",
		Short: "计算根元件的等效电阻",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd, args[0])
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CalcOptions) Bind(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Checked, "checked", false, "计算前校验元件树，负参数、空并联和循环引用返回错误")
}

func (o *CalcOptions) Run(cmd *cobra.Command, filename string) error {
	cir, err := o.Load(filename)
	if err != nil {
		return err
	}
	value := cir.Calculate()
	if o.Checked {
		if value, err = cir.Evaluate(); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", value)
	return nil
}
