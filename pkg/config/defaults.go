package config

var (
	DefaultLogLevel         string  = "info"
	DefaultInput            string  = "-" // stdin
	DefaultStakeEth         float64 = 32.0
	DefaultDropThresholdEth float64 = 0.01
	DefaultJumpThresholdEth float64 = 1.0
	DefaultTimezone         string  = "UTC"
	DefaultCsvPath          string  = ""
)
