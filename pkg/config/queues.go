package config

import (
	cli "github.com/urfave/cli/v2"
)

type QueuesConfig struct {
	LogLevel string `json:"log-level"`
	Input    string `json:"input"`
}

func NewQueuesConfig() *QueuesConfig {
	return &QueuesConfig{
		LogLevel: DefaultLogLevel,
		Input:    DefaultInput,
	}
}

func (c *QueuesConfig) Apply(ctx *cli.Context) {
	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("input") {
		c.Input = ctx.String("input")
	}
}
