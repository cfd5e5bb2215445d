package analyzer

import (
	"math/big"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

type AnomalyKind string

const (
	AnomalyDrop AnomalyKind = "drop"
	AnomalyJump AnomalyKind = "jump"
)

// BalanceAnomaly is one epoch-to-epoch balance move whose magnitude
// exceeded the configured threshold. Delta keeps its sign.
type BalanceAnomaly struct {
	Epoch phase0.Epoch `json:"epoch"`
	Kind  AnomalyKind  `json:"kind"`
	Delta *big.Int     `json:"delta_wei"`
}

// DetectAnomalies scans a balance series for moves exceeding the
// thresholds (wei magnitudes, nil disables a direction). The series
// must be strictly ascending by epoch: a duplicated or reordered epoch
// is surfaced as a data bug rather than silently re-sorted.
func DetectAnomalies(samples []spec.BalanceSample, dropThreshold *big.Int, jumpThreshold *big.Int) ([]BalanceAnomaly, error) {
	if err := checkAscending(samples); err != nil {
		return nil, err
	}

	var anomalies []BalanceAnomaly
	for i := 1; i < len(samples); i++ {
		delta := new(big.Int).Sub(
			weiOrZero(samples[i].CurrentBalance),
			weiOrZero(samples[i-1].CurrentBalance),
		)
		switch {
		case delta.Sign() < 0 && dropThreshold != nil && new(big.Int).Neg(delta).Cmp(dropThreshold) > 0:
			anomalies = append(anomalies, BalanceAnomaly{
				Epoch: samples[i].Epoch,
				Kind:  AnomalyDrop,
				Delta: delta,
			})
		case delta.Sign() > 0 && jumpThreshold != nil && delta.Cmp(jumpThreshold) > 0:
			anomalies = append(anomalies, BalanceAnomaly{
				Epoch: samples[i].Epoch,
				Kind:  AnomalyJump,
				Delta: delta,
			})
		}
	}
	return anomalies, nil
}

// BalanceTrend summarizes a balance series in ETH display units.
type BalanceTrend struct {
	Samples   int
	First     decimal.Decimal
	Last      decimal.Decimal
	Peak      decimal.Decimal
	Trough    decimal.Decimal
	NetChange decimal.Decimal
	// MaxDrop is the largest single epoch-to-epoch decrease, zero or
	// negative.
	MaxDrop decimal.Decimal
}

// SummarizeBalances computes the trend stats of a strictly ascending
// balance series.
func SummarizeBalances(samples []spec.BalanceSample) (BalanceTrend, error) {
	if err := checkAscending(samples); err != nil {
		return BalanceTrend{}, err
	}
	trend := BalanceTrend{Samples: len(samples)}
	if len(samples) == 0 {
		return trend, nil
	}

	first := weiOrZero(samples[0].CurrentBalance)
	last := weiOrZero(samples[len(samples)-1].CurrentBalance)
	peak := new(big.Int).Set(first)
	trough := new(big.Int).Set(first)
	maxDrop := new(big.Int)

	for i, sample := range samples {
		balance := weiOrZero(sample.CurrentBalance)
		if balance.Cmp(peak) > 0 {
			peak.Set(balance)
		}
		if balance.Cmp(trough) < 0 {
			trough.Set(balance)
		}
		if i > 0 {
			delta := new(big.Int).Sub(balance, weiOrZero(samples[i-1].CurrentBalance))
			if delta.Cmp(maxDrop) < 0 {
				maxDrop.Set(delta)
			}
		}
	}

	trend.First = WeiToEth(first)
	trend.Last = WeiToEth(last)
	trend.Peak = WeiToEth(peak)
	trend.Trough = WeiToEth(trough)
	trend.NetChange = WeiToEth(new(big.Int).Sub(last, first))
	trend.MaxDrop = WeiToEth(maxDrop)
	return trend, nil
}

func checkAscending(samples []spec.BalanceSample) error {
	for i := 1; i < len(samples); i++ {
		if samples[i].Epoch <= samples[i-1].Epoch {
			return errors.Wrapf(spec.ErrInvalidInput,
				"balance samples not sorted ascending at index %d (epoch %d after %d)",
				i, samples[i].Epoch, samples[i-1].Epoch)
		}
	}
	return nil
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

var trendBand = decimal.NewFromInt(5)

// TrendIndicator compares a short-period average against a long-period
// baseline. Within a 5% band the trend counts as stable; a zero
// baseline gives no signal.
func TrendIndicator(shortAvg decimal.Decimal, longAvg decimal.Decimal) (Trend, decimal.Decimal) {
	if longAvg.IsZero() {
		return TrendStable, decimal.Zero
	}
	pctDiff := shortAvg.Sub(longAvg).Div(longAvg).Mul(hundred)
	switch {
	case pctDiff.GreaterThan(trendBand):
		return TrendImproving, pctDiff
	case pctDiff.LessThan(trendBand.Neg()):
		return TrendDeclining, pctDiff
	default:
		return TrendStable, pctDiff
	}
}
