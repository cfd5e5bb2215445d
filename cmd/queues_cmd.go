package cmd

import (
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Buttaa/beaconwatch/pkg/config"
	"github.com/Buttaa/beaconwatch/pkg/model"
	"github.com/Buttaa/beaconwatch/pkg/report"
	"github.com/Buttaa/beaconwatch/pkg/utils"
)

var QueuesCommand = &cli.Command{
	Name:   "queues",
	Usage:  "Estimate activation and exit queue waits from a network-overview JSON",
	Action: LaunchQueuesReport,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Network-overview JSON file, or - for stdin",
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

func LaunchQueuesReport(c *cli.Context) error {
	conf := config.NewQueuesConfig()
	conf.Apply(c)

	logrus.SetLevel(utils.ParseLogLevel(conf.LogLevel))

	input, err := openInput(conf.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	overview, err := model.DecodeNetworkOverview(input)
	if err != nil {
		return err
	}

	report.WriteQueues(c.App.Writer, overview)
	return nil
}
