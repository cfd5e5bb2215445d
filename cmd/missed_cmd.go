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

var MissedCommand = &cli.Command{
	Name:   "missed",
	Usage:  "Break down missed rewards by duty type with actionable diagnostics",
	Action: LaunchMissedAnalyzer,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Rewards-list JSON file, or - for stdin",
			DefaultText: "-",
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level: debug, warn, info, error",
			EnvVars:     []string{"BEACONWATCH_LOG_LEVEL"},
			DefaultText: "info",
		},
	},
}

var logMissed = logrus.WithField(
	"module", "MissedCommand",
)

func LaunchMissedAnalyzer(c *cli.Context) error {
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

	aggregated, err := analyzer.Aggregate(records, analyzer.EpochRange{})
	if err != nil {
		return err
	}
	findings := analyzer.Diagnose(aggregated)
	logMissed.Debugf("produced %d findings", len(findings))

	report.WriteMissedBreakdown(c.App.Writer, aggregated, findings)
	return nil
}
