package config

import (
	cli "github.com/urfave/cli/v2"
)

type AprConfig struct {
	LogLevel string  `json:"log-level"`
	Input    string  `json:"input"`
	StakeEth float64 `json:"stake"`
}

func NewAprConfig() *AprConfig {
	// Return default values for the APR calculation
	return &AprConfig{
		LogLevel: DefaultLogLevel,
		Input:    DefaultInput,
		StakeEth: DefaultStakeEth,
	}
}

func (c *AprConfig) Apply(ctx *cli.Context) {
	// apply to the existing default configuration the set flags
	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("input") {
		c.Input = ctx.String("input")
	}
	if ctx.IsSet("stake") {
		c.StakeEth = ctx.Float64("stake")
	}
}
