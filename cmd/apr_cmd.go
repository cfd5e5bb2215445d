package cmd

import (
	"math/big"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Buttaa/beaconwatch/pkg/analyzer"
	"github.com/Buttaa/beaconwatch/pkg/config"
	"github.com/Buttaa/beaconwatch/pkg/model"
	"github.com/Buttaa/beaconwatch/pkg/report"
	"github.com/Buttaa/beaconwatch/pkg/utils"
)

var AprCommand = &cli.Command{
	Name:   "apr",
	Usage:  "Annualize rewards-list data into APR/APY with CL/EL breakdown",
	Action: LaunchAprCalculator,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Rewards-list JSON file, or - for stdin",
			DefaultText: "-",
		},
		&cli.Float64Flag{
			Name:        "stake",
			Usage:       "Assumed stake per validator in ETH",
			DefaultText: "32",
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level: debug, warn, info, error",
			EnvVars:     []string{"BEACONWATCH_LOG_LEVEL"},
			DefaultText: "info",
		},
	},
}

var logApr = logrus.WithField(
	"module", "AprCommand",
)

func LaunchAprCalculator(c *cli.Context) error {
	conf := config.NewAprConfig()
	conf.Apply(c)

	logrus.SetLevel(utils.ParseLogLevel(conf.LogLevel))

	input, err := openInput(conf.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	records, rng, err := model.DecodeRewardsList(input)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errors.New("no reward data found")
	}

	totals := analyzer.NewRewardTotals()
	for _, rec := range records {
		if err := totals.Aggregate(rec); err != nil {
			return err
		}
	}

	// prefer the epoch range the API reports; the records themselves
	// may cover only a sample of it
	epochs := uint64(totals.EndEpoch-totals.StartEpoch) + 1
	if rng.Epoch.End >= rng.Epoch.Start && rng.Epoch.End > 0 {
		epochs = uint64(rng.Epoch.End-rng.Epoch.Start) + 1
		totals.StartEpoch = phase0.Epoch(rng.Epoch.Start)
		totals.EndEpoch = phase0.Epoch(rng.Epoch.End)
	}
	logApr.Infof("annualizing %d records over %d epochs", totals.Records, epochs)

	assumedBalance := analyzer.EthToWei(
		decimal.NewFromFloat(conf.StakeEth).Mul(decimal.NewFromInt(int64(totals.Validators()))))

	netReward := new(big.Int).Sub(totals.Reward, totals.Penalty)
	totalApr, err := analyzer.ComputeApr(netReward, assumedBalance, epochs)
	if err != nil {
		return err
	}
	clApr, err := analyzer.ComputeApr(totals.Cl, assumedBalance, epochs)
	if err != nil {
		return err
	}
	elApr, err := analyzer.ComputeApr(totals.El, assumedBalance, epochs)
	if err != nil {
		return err
	}

	report.WriteApr(c.App.Writer, totals.Report(analyzer.EpochRange{}), totalApr, clApr, elApr)
	return nil
}
