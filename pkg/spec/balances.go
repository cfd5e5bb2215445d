package spec

import (
	"math/big"

	"github.com/attestantio/go-eth2-client/spec/phase0"
)

// BalanceSample is one snapshot of a validator's balance. A slice of
// samples ordered by epoch forms the time series consumed by the
// balance analysis.
type BalanceSample struct {
	Epoch            phase0.Epoch
	CurrentBalance   *big.Int // wei
	EffectiveBalance *big.Int // wei
}
