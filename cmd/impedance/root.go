package main

import (
	"impedance"
	"impedance/config"
	"impedance/element"
	"impedance/log"
	"impedance/utils"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// GlobalOptions 所有子命令共用的参数
type GlobalOptions struct {
	Power    string
	LogLevel string

	cfg    *config.Config
	logger *zap.Logger
	undo   func()
}

func DefaultGlobalOptions(cfg *config.Config) *GlobalOptions {
	return &GlobalOptions{
		LogLevel: cfg.LogLevel,
		cfg:      cfg,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Power, "power", "p", o.Power, "工作条件，覆盖文件中的 .power，支持单位后缀")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "日志级别 debug|info|warn|error")
}

// Complete 初始化日志
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.logger = log.InitLog(log.ParseLevel(o.LogLevel))
	o.undo = zap.ReplaceGlobals(o.logger)
	return nil
}

func (o *GlobalOptions) Close() {
	if o.logger == nil {
		return
	}
	_ = o.logger.Sync()
	o.undo()
	o.logger = nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if o.Power == "" {
		return nil
	}
	if _, err := utils.ParseValue(o.Power); err != nil {
		return errors.Wrap(err, "--power")
	}
	return nil
}

// Load 加载文件并确定工作条件
// 优先级: --power 参数, 文件中的 .power, 环境变量 IMPEDANCE_POWER
func (o *GlobalOptions) Load(filename string) (*impedance.Circuit, error) {
	cir := impedance.NewCircuit()
	if err := cir.Load(filename); err != nil {
		return nil, err
	}
	switch {
	case o.Power != "":
		p, err := utils.ParseValue(o.Power)
		if err != nil {
			return nil, errors.Wrap(err, "--power")
		}
		cir.SetPower(element.Power(p))
	case !cir.PowerSet:
		cir.SetPower(o.cfg.DefaultPower())
	}
	zap.S().Debugw("工作条件", "power", cir.Power)
	return cir, nil
}

// NewImpedanceCommand 创建命令行入口
func NewImpedanceCommand(cfg *config.Config) *cobra.Command {
	o := DefaultGlobalOptions(cfg)
	cmd := &cobra.Command{
		Use:   "impedance",
		Short: "计算串并联元件树的等效电阻",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			return o.Validate(args)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			o.Close()
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.PersistentFlags())

	cmd.AddCommand(NewCmdCalc(o))
	cmd.AddCommand(NewCmdSweep(o))
	cmd.AddCommand(NewCmdPlot(o))
	cmd.AddCommand(NewCmdTree(o))
	cmd.AddCommand(NewCmdConvert(o))
	return cmd
}
