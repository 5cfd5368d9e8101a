package config

import (
	"impedance/element"
	"impedance/sweep"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, element.DefaultPower, cfg.DefaultPower())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, sweep.Options{From: 1, To: 1000, Points: 50, Scale: sweep.ScaleLog}, cfg.SweepOptions())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("IMPEDANCE_POWER", "1k")
	t.Setenv("IMPEDANCE_LOG_LEVEL", "debug")
	t.Setenv("IMPEDANCE_SWEEP_FROM", "10")
	t.Setenv("IMPEDANCE_SWEEP_TO", "2meg")
	t.Setenv("IMPEDANCE_SWEEP_POINTS", "7")
	t.Setenv("IMPEDANCE_SWEEP_SCALE", "linear")
	t.Setenv("IMPEDANCE_SWEEP_WORKERS", "4")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, element.Power(1000), cfg.DefaultPower())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, sweep.Options{From: 10, To: 2e6, Points: 7, Scale: sweep.ScaleLinear, Workers: 4}, cfg.SweepOptions())
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"IMPEDANCE_POWER", "abc"},
		{"IMPEDANCE_POWER", "-1"},
		{"IMPEDANCE_LOG_LEVEL", "verbose"},
		{"IMPEDANCE_SWEEP_POINTS", "many"},
		{"IMPEDANCE_SWEEP_POINTS", "1"},
		{"IMPEDANCE_SWEEP_SCALE", "oct"},
		{"IMPEDANCE_SWEEP_WORKERS", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := New()
			assert.Error(t, err)
		})
	}
}
