package main

import (
	"context"
	"fmt"
	"impedance/config"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取配置失败: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := NewImpedanceCommand(cfg).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
