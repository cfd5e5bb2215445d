package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Buttaa/beaconwatch/cmd"
	"github.com/Buttaa/beaconwatch/pkg/utils"
)

var (
	log = logrus.WithField(
		"cli", utils.CliName,
	)
)

func main() {
	fmt.Println(utils.CliName, utils.Version)

	customFormatter := new(logrus.TextFormatter)
	customFormatter.FullTimestamp = true

	// Set the general log configurations for the entire tool
	logrus.SetFormatter(customFormatter)
	logrus.SetOutput(utils.ParseLogOutput("stderr"))
	logrus.SetLevel(utils.ParseLogLevel("info"))

	app := &cli.App{
		Name:      utils.CliName,
		Usage:     "Formats beaconcha.in staking data into human-readable reports and converts beacon chain time units.",
		UsageText: "beaconwatch [commands] [arguments...]",
		Authors: []*cli.Author{
			{
				Name: "Buttaa",
			},
		},
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			cmd.ConvertCommand,
			cmd.RewardsCommand,
			cmd.MissedCommand,
			cmd.AprCommand,
			cmd.BalancesCommand,
			cmd.QueuesCommand,
			cmd.TaxExportCommand,
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.Errorf("error: %v\n", err)
		os.Exit(1)
	}
}
