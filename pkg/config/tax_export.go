package config

import (
	cli "github.com/urfave/cli/v2"
)

type TaxExportConfig struct {
	LogLevel string `json:"log-level"`
	Input    string `json:"input"`
	Timezone string `json:"timezone"`
	CsvPath  string `json:"csv"`
}

func NewTaxExportConfig() *TaxExportConfig {
	// Return default values for the tax export
	return &TaxExportConfig{
		LogLevel: DefaultLogLevel,
		Input:    DefaultInput,
		Timezone: DefaultTimezone,
		CsvPath:  DefaultCsvPath,
	}
}

func (c *TaxExportConfig) Apply(ctx *cli.Context) {
	// apply to the existing default configuration the set flags
	if ctx.IsSet("log-level") {
		c.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("input") {
		c.Input = ctx.String("input")
	}
	if ctx.IsSet("timezone") {
		c.Timezone = ctx.String("timezone")
	}
	if ctx.IsSet("csv") {
		c.CsvPath = ctx.String("csv")
	}
}
