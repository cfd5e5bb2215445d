package cmd

import (
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Buttaa/beaconwatch/pkg/analyzer"
	"github.com/Buttaa/beaconwatch/pkg/config"
	"github.com/Buttaa/beaconwatch/pkg/model"
	"github.com/Buttaa/beaconwatch/pkg/report"
	"github.com/Buttaa/beaconwatch/pkg/utils"
)

var RewardsCommand = &cli.Command{
	Name:   "rewards",
	Usage:  "Summarize a rewards-list JSON response with CL/EL split and efficiency",
	Action: LaunchRewardsAnalyzer,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Rewards-list JSON file, or - for stdin",
			DefaultText: "-",
		},
		&cli.StringFlag{
			Name:  "epoch-range",
			Usage: "Restrict the aggregation to an inclusive START:END epoch range",
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level: debug, warn, info, error",
			EnvVars:     []string{"BEACONWATCH_LOG_LEVEL"},
			DefaultText: "info",
		},
	},
}

var logRewards = logrus.WithField(
	"module", "RewardsCommand",
)

func LaunchRewardsAnalyzer(c *cli.Context) error {
	conf := config.NewRewardsConfig()
	conf.Apply(c)

	logrus.SetLevel(utils.ParseLogLevel(conf.LogLevel))

	input, err := openInput(conf.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	records, _, err := model.DecodeRewardsList(input)
	if err != nil {
		return err
	}
	logRewards.Infof("loaded %d reward records", len(records))

	window := analyzer.EpochRange{}
	if conf.EpochRange != "" {
		parsed, err := utils.NewEpochRangeFromString(conf.EpochRange)
		if err != nil {
			return err
		}
		window = analyzer.NewEpochRange(parsed.Start, parsed.End)
	}

	aggregated, err := analyzer.Aggregate(records, window)
	if err != nil {
		return err
	}
	report.WriteAggregate(c.App.Writer, aggregated)
	return nil
}
