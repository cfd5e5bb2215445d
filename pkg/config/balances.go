package config

import (
	cli "github.com/urfave/cli/v2"
)

type BalancesConfig struct {
	LogLevel         string  `json:"log-level"`
	Input            string  `json:"input"`
	DropThresholdEth float64 `json:"drop-threshold"`
	JumpThresholdEth float64 `json:"jump-threshold"`
}

func NewBalancesConfig() *BalancesConfig {
	// Return default values for the balance analysis
	return &BalancesConfig{
		LogLevel:         DefaultLogLevel,
		Input:            DefaultInput,
		DropThresholdEth: DefaultDropThresholdEth,
		JumpThresholdEth: DefaultJumpThresholdEth,
	}
}

func (c *BalancesConfig) Apply(ctx *cli.Context) {
	// apply to the existing default configuration the set flags
	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("input") {
		c.Input = ctx.String("input")
	}
	if ctx.IsSet("drop-threshold") {
		c.DropThresholdEth = ctx.Float64("drop-threshold")
	}
	if ctx.IsSet("jump-threshold") {
		c.JumpThresholdEth = ctx.Float64("jump-threshold")
	}
}
