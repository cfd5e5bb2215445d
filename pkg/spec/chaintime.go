package spec

import (
	"time"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"
)

// Accepted calendar layouts, interpreted in UTC unless the string
// carries an explicit offset.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func EpochToTimestamp(epoch phase0.Epoch) int64 {
	return GenesisTimestamp + int64(epoch)*SecondsPerEpoch
}

func TimestampToEpoch(ts int64) (phase0.Epoch, error) {
	if ts < GenesisTimestamp {
		return 0, errors.Wrapf(ErrInvalidInput, "timestamp %d before genesis %d", ts, GenesisTimestamp)
	}
	return phase0.Epoch((ts - GenesisTimestamp) / SecondsPerEpoch), nil
}

func SlotToTimestamp(slot phase0.Slot) int64 {
	return GenesisTimestamp + int64(slot)*SecondsPerSlot
}

func TimestampToSlot(ts int64) (phase0.Slot, error) {
	if ts < GenesisTimestamp {
		return 0, errors.Wrapf(ErrInvalidInput, "timestamp %d before genesis %d", ts, GenesisTimestamp)
	}
	return phase0.Slot((ts - GenesisTimestamp) / SecondsPerSlot), nil
}

func EpochAtSlot(slot phase0.Slot) phase0.Epoch {
	return phase0.Epoch(slot / SlotsPerEpoch)
}

func FirstSlotInEpoch(slot phase0.Slot) phase0.Slot {
	return slot / SlotsPerEpoch * SlotsPerEpoch
}

// EpochSlotRange returns the first and last slot of the given epoch,
// both inclusive.
func EpochSlotRange(epoch phase0.Epoch) (phase0.Slot, phase0.Slot) {
	start := phase0.Slot(epoch) * SlotsPerEpoch
	return start, start + SlotsPerEpoch - 1
}

func ParseDate(input string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, input, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidInput, "cannot parse date %q, use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS", input)
}

// DateRangeToEpochs converts a calendar date range into the inclusive
// epoch range covering it.
func DateRangeToEpochs(startDate string, endDate string) (phase0.Epoch, phase0.Epoch, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, 0, err
	}
	if end.Before(start) {
		return 0, 0, errors.Wrapf(ErrInvalidInput, "end date %s before start date %s", endDate, startDate)
	}
	startEpoch, err := TimestampToEpoch(start.Unix())
	if err != nil {
		return 0, 0, err
	}
	endEpoch, err := TimestampToEpoch(end.Unix())
	if err != nil {
		return 0, 0, err
	}
	return startEpoch, endEpoch, nil
}

// ChurnLimit returns how many validators may enter or exit the active
// set per epoch. Never zero: floored at MinPerEpochChurnLimit.
func ChurnLimit(activeValidators uint64) uint64 {
	churn := activeValidators / ChurnLimitQuotient
	if churn < MinPerEpochChurnLimit {
		return MinPerEpochChurnLimit
	}
	return churn
}

// EstimatedQueueWait estimates how long a queue of the given length
// takes to drain at the current churn limit.
func EstimatedQueueWait(queueLength uint64, activeValidators uint64) time.Duration {
	churn := ChurnLimit(activeValidators)
	waitEpochs := (queueLength + churn - 1) / churn
	return time.Duration(waitEpochs*SecondsPerEpoch) * time.Second
}
