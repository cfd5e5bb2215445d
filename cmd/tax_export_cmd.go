package cmd

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Buttaa/beaconwatch/pkg/config"
	"github.com/Buttaa/beaconwatch/pkg/model"
	"github.com/Buttaa/beaconwatch/pkg/report"
	"github.com/Buttaa/beaconwatch/pkg/utils"
)

var TaxExportCommand = &cli.Command{
	Name:   "tax-export",
	Usage:  "Export per-epoch rewards as CSV rows for tax reporting",
	Action: LaunchTaxExport,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Rewards-list JSON file, or - for stdin",
			DefaultText: "-",
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "Fixed timezone offset for the date column (e.g. UTC+1, UTC-5)",
			DefaultText: "UTC",
		},
		&cli.StringFlag{
			Name:  "csv",
			Usage: "Write the CSV to this file instead of stdout",
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level: debug, warn, info, error",
			EnvVars:     []string{"BEACONWATCH_LOG_LEVEL"},
			DefaultText: "info",
		},
	},
}

var logTaxExport = logrus.WithField(
	"module", "TaxExportCommand",
)

func LaunchTaxExport(c *cli.Context) error {
	conf := config.NewTaxExportConfig()
	conf.Apply(c)

	logrus.SetLevel(utils.ParseLogLevel(conf.LogLevel))

	tzOffset, err := parseTimezoneOffset(conf.Timezone)
	if err != nil {
		return err
	}

	input, err := openInput(conf.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	records, _, err := model.DecodeRewardsList(input)
	if err != nil {
		return err
	}

	out := c.App.Writer
	if conf.CsvPath != "" {
		f, err := os.Create(conf.CsvPath)
		if err != nil {
			return errors.Wrapf(err, "unable to create %s", conf.CsvPath)
		}
		defer f.Close()
		out = f
		logTaxExport.Infof("exporting %d rows to %s", len(records), conf.CsvPath)
	}

	return report.WriteTaxExportCSV(out, records, tzOffset)
}

// parseTimezoneOffset reads offsets in the "UTC+N" / "UTC-N" / "+N"
// convention, fractional hours included (e.g. UTC+5.5).
func parseTimezoneOffset(tz string) (time.Duration, error) {
	trimmed := strings.TrimSpace(strings.ToUpper(tz))
	trimmed = strings.TrimPrefix(trimmed, "UTC")
	if trimmed == "" {
		return 0, nil
	}
	hours, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to parse timezone offset %s", tz)
	}
	return time.Duration(hours * float64(time.Hour)), nil
}
