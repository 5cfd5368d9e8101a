// Package config 从环境变量读取默认工作条件与扫描参数。
package config

import (
	"impedance/element"
	"impedance/sweep"
	"impedance/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Value 支持单位后缀的数值，如 1k 4.7u
type Value float64

// Decode 实现 envconfig.Decoder
func (v *Value) Decode(value string) error {
	f, err := utils.ParseValue(value)
	if err != nil {
		return err
	}
	*v = Value(f)
	return nil
}

type Config struct {
	Power        Value  `envconfig:"IMPEDANCE_POWER" default:"60" validate:"gte=0"`
	LogLevel     string `envconfig:"IMPEDANCE_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	SweepFrom    Value  `envconfig:"IMPEDANCE_SWEEP_FROM" default:"1"`
	SweepTo      Value  `envconfig:"IMPEDANCE_SWEEP_TO" default:"1000"`
	SweepPoints  int    `envconfig:"IMPEDANCE_SWEEP_POINTS" default:"50" validate:"gte=2"`
	SweepScale   string `envconfig:"IMPEDANCE_SWEEP_SCALE" default:"log" validate:"scale"`
	SweepWorkers int    `envconfig:"IMPEDANCE_SWEEP_WORKERS" default:"0" validate:"gte=0"`
}

// scaleValidator 扫描刻度必须能被 sweep.ParseScale 识别
func scaleValidator(fl validator.FieldLevel) bool {
	_, err := sweep.ParseScale(fl.Field().String())
	return err == nil
}

// New 读取环境变量，未设置的使用默认值
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	v := validator.New()
	if err := v.RegisterValidation("scale", scaleValidator); err != nil {
		return nil, err
	}
	if err := v.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "配置无效")
	}
	return cfg, nil
}

// DefaultPower 默认工作条件
func (c *Config) DefaultPower() element.Power {
	return element.Power(c.Power)
}

// SweepOptions 默认扫描参数
func (c *Config) SweepOptions() sweep.Options {
	scale, _ := sweep.ParseScale(c.SweepScale)
	return sweep.Options{
		From:    element.Power(c.SweepFrom),
		To:      element.Power(c.SweepTo),
		Points:  c.SweepPoints,
		Scale:   scale,
		Workers: c.SweepWorkers,
	}
}
