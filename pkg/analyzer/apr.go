package analyzer

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

var epochsPerYear = decimal.NewFromInt(spec.EpochsPerYear)

// ComputeApr annualizes the rewards earned over a period:
// (rewards / balanceAtStart) * (EpochsPerYear / epochsInPeriod) * 100.
// A zero starting balance makes the rate undefined and yields nil, not
// an error.
func ComputeApr(rewardsInPeriod *big.Int, balanceAtStart *big.Int, epochsInPeriod uint64) (*decimal.Decimal, error) {
	if epochsInPeriod == 0 {
		return nil, errors.Wrap(spec.ErrInvalidInput, "period of zero epochs")
	}
	if balanceAtStart == nil || balanceAtStart.Sign() == 0 {
		return nil, nil
	}
	apr := decimal.NewFromBigInt(weiOrZero(rewardsInPeriod), 0).
		Div(decimal.NewFromBigInt(balanceAtStart, 0)).
		Mul(epochsPerYear).
		Div(decimal.NewFromInt(int64(epochsInPeriod))).
		Mul(hundred)
	return &apr, nil
}

// AprToApy converts an APR percentage to APY assuming continuous
// compounding.
func AprToApy(aprPct decimal.Decimal) decimal.Decimal {
	apr, _ := aprPct.Float64()
	return decimal.NewFromFloat((math.Exp(apr/100) - 1) * 100)
}

func weiOrZero(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}
