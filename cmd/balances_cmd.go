package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Buttaa/beaconwatch/pkg/analyzer"
	"github.com/Buttaa/beaconwatch/pkg/config"
	"github.com/Buttaa/beaconwatch/pkg/model"
	"github.com/Buttaa/beaconwatch/pkg/report"
	"github.com/Buttaa/beaconwatch/pkg/utils"
)

var BalancesCommand = &cli.Command{
	Name:   "balances",
	Usage:  "Summarize balance history per validator and flag drops/jumps",
	Action: LaunchBalancesAnalyzer,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Balance-history JSON file, or - for stdin",
			DefaultText: "-",
		},
		&cli.Float64Flag{
			Name:        "drop-threshold",
			Usage:       "Report balance drops larger than this many ETH",
			DefaultText: "0.01",
		},
		&cli.Float64Flag{
			Name:        "jump-threshold",
			Usage:       "Report balance jumps larger than this many ETH",
			DefaultText: "1",
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level: debug, warn, info, error",
			EnvVars:     []string{"BEACONWATCH_LOG_LEVEL"},
			DefaultText: "info",
		},
	},
}

var logBalances = logrus.WithField(
	"module", "BalancesCommand",
)

func LaunchBalancesAnalyzer(c *cli.Context) error {
	conf := config.NewBalancesConfig()
	conf.Apply(c)

	logrus.SetLevel(utils.ParseLogLevel(conf.LogLevel))

	input, err := openInput(conf.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	series, err := model.DecodeBalanceHistory(input)
	if err != nil {
		return err
	}
	logBalances.Infof("loaded balance history for %d validators", len(series))

	dropThreshold := analyzer.EthToWei(decimal.NewFromFloat(conf.DropThresholdEth))
	jumpThreshold := analyzer.EthToWei(decimal.NewFromFloat(conf.JumpThresholdEth))

	for idx, samples := range series {
		trend, err := analyzer.SummarizeBalances(samples)
		if err != nil {
			return err
		}
		anomalies, err := analyzer.DetectAnomalies(samples, dropThreshold, jumpThreshold)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "=== Validator %d ===\n", idx)
		report.WriteBalanceTrend(c.App.Writer, trend, anomalies)
		fmt.Fprintf(c.App.Writer, "\n")
	}
	return nil
}
