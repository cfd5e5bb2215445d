package spec

import (
	"fmt"
	"time"

	"github.com/attestantio/go-eth2-client/spec/phase0"
)

// EpochTime is a point in beacon chain time, derived once from an
// epoch number and never mutated.
type EpochTime struct {
	Epoch phase0.Epoch `json:"epoch"`
	Slot  phase0.Slot  `json:"slot"` // first slot of the epoch
	Unix  int64        `json:"timestamp"`
}

func NewEpochTime(epoch phase0.Epoch) EpochTime {
	return EpochTime{
		Epoch: epoch,
		Slot:  phase0.Slot(epoch) * SlotsPerEpoch,
		Unix:  EpochToTimestamp(epoch),
	}
}

func (t EpochTime) Time() time.Time {
	return time.Unix(t.Unix, 0).UTC()
}

func (t EpochTime) String() string {
	return fmt.Sprintf("epoch %d (%s)", t.Epoch, t.Time().Format("2006-01-02 15:04:05 UTC"))
}
