package cmd

import (
	"fmt"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Buttaa/beaconwatch/pkg/spec"
	"github.com/Buttaa/beaconwatch/pkg/utils"
)

var ConvertCommand = &cli.Command{
	Name:   "convert",
	Usage:  "Convert between beacon chain epochs, slots, timestamps and calendar dates",
	Action: LaunchConverter,
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:  "epoch",
			Usage: "Epoch number to describe",
		},
		&cli.Uint64Flag{
			Name:  "slot",
			Usage: "Slot number to describe",
		},
		&cli.Int64Flag{
			Name:  "timestamp",
			Usage: "Unix timestamp to convert to epoch and slot",
		},
		&cli.StringFlag{
			Name:  "date",
			Usage: "Date string (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS, UTC) to convert",
		},
		&cli.StringSliceFlag{
			Name:  "date-range",
			Usage: "Two dates delimiting the epoch range to compute (repeat the flag)",
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level: debug, warn, info, error",
			EnvVars:     []string{"BEACONWATCH_LOG_LEVEL"},
			DefaultText: "info",
		},
	},
}

var logConvert = logrus.WithField(
	"module", "ConvertCommand",
)

func LaunchConverter(c *cli.Context) error {
	if c.IsSet("log-level") {
		logrus.SetLevel(utils.ParseLogLevel(c.String("log-level")))
	}

	switch {
	case c.IsSet("epoch"):
		printEpochInfo(c, phase0.Epoch(c.Uint64("epoch")))

	case c.IsSet("slot"):
		slot := phase0.Slot(c.Uint64("slot"))
		epoch := spec.EpochAtSlot(slot)
		fmt.Fprintf(c.App.Writer, "Slot:      %d (slot %d of %d in epoch %d)\n",
			slot, slot%spec.SlotsPerEpoch, spec.SlotsPerEpoch, epoch)
		fmt.Fprintf(c.App.Writer, "Timestamp: %d\n", spec.SlotToTimestamp(slot))
		printEpochInfo(c, epoch)

	case c.IsSet("timestamp"):
		ts := c.Int64("timestamp")
		epoch, err := spec.TimestampToEpoch(ts)
		if err != nil {
			return err
		}
		slot, err := spec.TimestampToSlot(ts)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Slot:      %d\n", slot)
		printEpochInfo(c, epoch)

	case c.IsSet("date"):
		parsed, err := spec.ParseDate(c.String("date"))
		if err != nil {
			return err
		}
		epoch, err := spec.TimestampToEpoch(parsed.Unix())
		if err != nil {
			return err
		}
		printEpochInfo(c, epoch)

	case c.IsSet("date-range"):
		dates := c.StringSlice("date-range")
		if len(dates) != 2 {
			return errors.New("date-range needs exactly two dates")
		}
		startEpoch, endEpoch, err := spec.DateRangeToEpochs(dates[0], dates[1])
		if err != nil {
			return err
		}
		totalEpochs := uint64(endEpoch-startEpoch) + 1
		fmt.Fprintf(c.App.Writer, "Epoch range:  %d -> %d\n", startEpoch, endEpoch)
		fmt.Fprintf(c.App.Writer, "Total epochs: %d (%d slots)\n", totalEpochs, totalEpochs*spec.SlotsPerEpoch)
		fmt.Fprintf(c.App.Writer, "From: %s\n", spec.NewEpochTime(startEpoch))
		fmt.Fprintf(c.App.Writer, "To:   %s\n", spec.NewEpochTime(endEpoch))

	default:
		return errors.New("one of --epoch, --slot, --timestamp, --date or --date-range is required")
	}

	logConvert.Debug("conversion done")
	return nil
}

func printEpochInfo(c *cli.Context, epoch phase0.Epoch) {
	et := spec.NewEpochTime(epoch)
	startSlot, endSlot := spec.EpochSlotRange(epoch)
	fmt.Fprintf(c.App.Writer, "Epoch:     %d\n", epoch)
	fmt.Fprintf(c.App.Writer, "Slots:     %d - %d\n", startSlot, endSlot)
	fmt.Fprintf(c.App.Writer, "Time:      %s (unix %d)\n", et.Time().Format("2006-01-02 15:04:05 UTC"), et.Unix)
}
