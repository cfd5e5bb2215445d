package spec_test

import (
	"testing"
	"time"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

func TestEpochAtSlot(t *testing.T) {
	tests := []struct {
		name  string
		slot  phase0.Slot
		epoch phase0.Epoch
	}{
		{
			name:  "Genesis",
			slot:  0,
			epoch: 0,
		},
		{
			name:  "Slot 1",
			slot:  1,
			epoch: 0,
		},
		{
			name:  "Slot 31",
			slot:  31,
			epoch: 0,
		},
		{
			name:  "Slot 32",
			slot:  32,
			epoch: 1,
		},
		{
			name:  "Slot 33",
			slot:  33,
			epoch: 1,
		},
		{
			name:  "Slot 64",
			slot:  64,
			epoch: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			epoch := spec.EpochAtSlot(test.slot)
			if epoch != test.epoch {
				t.Errorf("EpochAtSlot() returned %d, expected %d", epoch, test.epoch)
			}
		})
	}

}

func TestFirstSlotInEpoch(t *testing.T) {
	tests := []struct {
		name  string
		slot  phase0.Slot
		first phase0.Slot
	}{
		{
			name:  "Genesis",
			slot:  0,
			first: 0,
		},
		{
			name:  "Slot 1",
			slot:  1,
			first: 0,
		},
		{
			name:  "Slot 32",
			slot:  32,
			first: 32,
		},
		{
			name:  "Slot 33",
			slot:  33,
			first: 32,
		},
		{
			name:  "Slot 65",
			slot:  65,
			first: 64,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			first := spec.FirstSlotInEpoch(test.slot)
			if first != test.first {
				t.Errorf("FirstSlotInEpoch() returned %d, expected %d", first, test.first)
			}
		})
	}

}

func TestEpochTimestampRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		epoch phase0.Epoch
		ts    int64
	}{
		{
			name:  "Genesis",
			epoch: 0,
			ts:    1606824023,
		},
		{
			name:  "Epoch 1",
			epoch: 1,
			ts:    1606824023 + 384,
		},
		{
			name:  "Epoch 347566",
			epoch: 347566,
			ts:    1740289367,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ts := spec.EpochToTimestamp(test.epoch)
			if ts != test.ts {
				t.Errorf("EpochToTimestamp() returned %d, expected %d", ts, test.ts)
			}
			epoch, err := spec.TimestampToEpoch(ts)
			if err != nil {
				t.Fatalf("TimestampToEpoch() returned error: %v", err)
			}
			if epoch != test.epoch {
				t.Errorf("TimestampToEpoch() returned %d, expected %d", epoch, test.epoch)
			}
		})
	}
}

func TestTimestampBeforeGenesis(t *testing.T) {
	_, err := spec.TimestampToEpoch(1606824022)
	if !errors.Is(err, spec.ErrInvalidInput) {
		t.Errorf("TimestampToEpoch() returned %v, expected ErrInvalidInput", err)
	}
	_, err = spec.TimestampToSlot(0)
	if !errors.Is(err, spec.ErrInvalidInput) {
		t.Errorf("TimestampToSlot() returned %v, expected ErrInvalidInput", err)
	}
}

func TestEpochSlotRange(t *testing.T) {
	tests := []struct {
		name  string
		epoch phase0.Epoch
		start phase0.Slot
		end   phase0.Slot
	}{
		{
			name:  "Genesis",
			epoch: 0,
			start: 0,
			end:   31,
		},
		{
			name:  "Epoch 1",
			epoch: 1,
			start: 32,
			end:   63,
		},
		{
			name:  "Epoch 347566",
			epoch: 347566,
			start: 11122112,
			end:   11122143,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			start, end := spec.EpochSlotRange(test.epoch)
			if start != test.start || end != test.end {
				t.Errorf("EpochSlotRange() returned (%d, %d), expected (%d, %d)",
					start, end, test.start, test.end)
			}
			// every slot of the epoch maps back to it
			if spec.EpochAtSlot(start) != test.epoch || spec.EpochAtSlot(end) != test.epoch {
				t.Errorf("slot range (%d, %d) does not map back to epoch %d", start, end, test.epoch)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		fails bool
	}{
		{
			name:  "Date only",
			input: "2025-01-01",
			want:  1735689600,
		},
		{
			name:  "Date and time",
			input: "2025-01-01 12:00:00",
			want:  1735732800,
		},
		{
			name:  "RFC3339-ish",
			input: "2025-01-01T12:00:00",
			want:  1735732800,
		},
		{
			name:  "With offset",
			input: "2025-01-01T12:00:00+02:00",
			want:  1735725600,
		},
		{
			name:  "Garbage",
			input: "yesterday",
			fails: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed, err := spec.ParseDate(test.input)
			if test.fails {
				if !errors.Is(err, spec.ErrInvalidInput) {
					t.Errorf("ParseDate() returned %v, expected ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate() returned error: %v", err)
			}
			if parsed.Unix() != test.want {
				t.Errorf("ParseDate() returned %d, expected %d", parsed.Unix(), test.want)
			}
		})
	}
}

func TestDateRangeToEpochs(t *testing.T) {
	start, end, err := spec.DateRangeToEpochs("2025-01-01", "2025-12-31")
	if err != nil {
		t.Fatalf("DateRangeToEpochs() returned error: %v", err)
	}
	if start > end {
		t.Errorf("epoch range inverted: %d > %d", start, end)
	}
	if ts := spec.EpochToTimestamp(start); ts > 1735689600 {
		t.Errorf("start epoch %d begins at %d, after the start date", start, ts)
	}

	_, _, err = spec.DateRangeToEpochs("2025-12-31", "2025-01-01")
	if !errors.Is(err, spec.ErrInvalidInput) {
		t.Errorf("inverted range returned %v, expected ErrInvalidInput", err)
	}
}

func TestChurnLimit(t *testing.T) {
	tests := []struct {
		name   string
		active uint64
		churn  uint64
	}{
		{
			name:   "Empty set",
			active: 0,
			churn:  4,
		},
		{
			name:   "Below quotient floor",
			active: 200000,
			churn:  4,
		},
		{
			name:   "One million validators",
			active: 1000000,
			churn:  15,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			churn := spec.ChurnLimit(test.active)
			if churn != test.churn {
				t.Errorf("ChurnLimit() returned %d, expected %d", churn, test.churn)
			}
		})
	}
}

func TestEstimatedQueueWait(t *testing.T) {
	// churn = 15, ceil(1000/15) = 67 epochs, 67*384s
	wait := spec.EstimatedQueueWait(1000, 1000000)
	if wait != 25728*time.Second {
		t.Errorf("EstimatedQueueWait() returned %s, expected %s", wait, 25728*time.Second)
	}

	// empty queue drains immediately
	if wait := spec.EstimatedQueueWait(0, 1000000); wait != 0 {
		t.Errorf("EstimatedQueueWait() returned %s for empty queue, expected 0", wait)
	}
}

func TestEpochTime(t *testing.T) {
	et := spec.NewEpochTime(347566)
	if et.Unix != 1740289367 {
		t.Errorf("NewEpochTime() timestamp %d, expected 1740289367", et.Unix)
	}
	if et.Slot != 11122112 {
		t.Errorf("NewEpochTime() slot %d, expected 11122112", et.Slot)
	}
	if et.Time().Location() != time.UTC {
		t.Errorf("EpochTime.Time() not in UTC")
	}
}
