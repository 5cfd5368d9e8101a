package main

import (
	"github.com/spf13/cobra"
)

func NewCmdConvert(g *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert FILE",
		Short: "将网表或 YAML 文件重新输出为网表",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, err := g.Load(args[0])
			if err != nil {
				return err
			}
			return cir.Export(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
}
