package config

import (
	cli "github.com/urfave/cli/v2"
)

type RewardsConfig struct {
	LogLevel   string `json:"log-level"`
	Input      string `json:"input"`
	EpochRange string `json:"epoch-range"`
}

func NewRewardsConfig() *RewardsConfig {
	// Return default values for the rewards analysis
	return &RewardsConfig{
		LogLevel: DefaultLogLevel,
		Input:    DefaultInput,
	}
}

func (c *RewardsConfig) Apply(ctx *cli.Context) {
	// apply to the existing default configuration the set flags
	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("input") {
		c.Input = ctx.String("input")
	}
	if ctx.IsSet("epoch-range") {
		c.EpochRange = ctx.String("epoch-range")
	}
}
