package utils

import (
	"strconv"
	"strings"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"
)

type EpochRange struct {
	Start phase0.Epoch
	End   phase0.Epoch
}

// NewEpochRangeFromString parses a "START:END" epoch range flag.
func NewEpochRangeFromString(strRange string) (*EpochRange, error) {
	parts := strings.Split(strRange, ":")
	if len(parts) != 2 {
		return nil, errors.Errorf("unable to parse range, no START:END format - %s", strRange)
	}

	start, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse START value, non numerical - %s", parts[0])
	}
	end, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse END value, non numerical - %s", parts[1])
	}
	if end < start {
		return nil, errors.Errorf("unable to parse range, END %d below START %d", end, start)
	}

	return &EpochRange{
		Start: phase0.Epoch(start),
		End:   phase0.Epoch(end),
	}, nil
}
