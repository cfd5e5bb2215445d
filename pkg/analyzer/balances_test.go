package analyzer

import (
	"math/big"
	"testing"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

func balanceSeries(startEpoch phase0.Epoch, balances ...*big.Int) []spec.BalanceSample {
	samples := make([]spec.BalanceSample, 0, len(balances))
	for i, balance := range balances {
		samples = append(samples, spec.BalanceSample{
			Epoch:            startEpoch + phase0.Epoch(i),
			CurrentBalance:   balance,
			EffectiveBalance: eth(32),
		})
	}
	return samples
}

func TestDetectAnomaliesQuietSeries(t *testing.T) {
	// +1 ETH per epoch with generous thresholds: nothing to report
	samples := balanceSeries(100, eth(32), eth(33), eth(34), eth(35))

	anomalies, err := DetectAnomalies(samples, eth(2), eth(2))
	require.NoError(t, err)
	require.Empty(t, anomalies)
}

func TestDetectAnomaliesSingleDrop(t *testing.T) {
	samples := balanceSeries(200, eth(32), eth(32.01), eth(27.01), eth(27.02))

	anomalies, err := DetectAnomalies(samples, eth(1), eth(1))
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	require.Equal(t, phase0.Epoch(202), anomalies[0].Epoch)
	require.Equal(t, AnomalyDrop, anomalies[0].Kind)
	require.Equal(t, eth(-5), anomalies[0].Delta)
}

func TestDetectAnomaliesJump(t *testing.T) {
	samples := balanceSeries(10, eth(32), eth(64.5))

	anomalies, err := DetectAnomalies(samples, eth(1), eth(1))
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	require.Equal(t, AnomalyJump, anomalies[0].Kind)
	require.Equal(t, eth(32.5), anomalies[0].Delta)
}

func TestDetectAnomaliesUnsorted(t *testing.T) {
	samples := []spec.BalanceSample{
		{Epoch: 5, CurrentBalance: eth(32)},
		{Epoch: 4, CurrentBalance: eth(32)},
	}
	_, err := DetectAnomalies(samples, eth(1), eth(1))
	require.ErrorIs(t, err, spec.ErrInvalidInput)

	// a duplicate epoch is a data bug too
	samples[1].Epoch = 5
	_, err = DetectAnomalies(samples, eth(1), eth(1))
	require.ErrorIs(t, err, spec.ErrInvalidInput)
}

func TestDetectAnomaliesDisabledDirection(t *testing.T) {
	samples := balanceSeries(10, eth(32), eth(20), eth(40))

	anomalies, err := DetectAnomalies(samples, nil, eth(1))
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	require.Equal(t, AnomalyJump, anomalies[0].Kind)
}

func TestSummarizeBalances(t *testing.T) {
	samples := balanceSeries(100, eth(32), eth(33), eth(30), eth(34))

	trend, err := SummarizeBalances(samples)
	require.NoError(t, err)
	require.Equal(t, 4, trend.Samples)
	require.Equal(t, "32", trend.First.String())
	require.Equal(t, "34", trend.Last.String())
	require.Equal(t, "34", trend.Peak.String())
	require.Equal(t, "30", trend.Trough.String())
	require.Equal(t, "2", trend.NetChange.String())
	require.Equal(t, "-3", trend.MaxDrop.String())
}

func TestSummarizeBalancesEmpty(t *testing.T) {
	trend, err := SummarizeBalances(nil)
	require.NoError(t, err)
	require.Equal(t, 0, trend.Samples)
}

func TestTrendIndicator(t *testing.T) {
	tests := []struct {
		name     string
		shortAvg decimal.Decimal
		longAvg  decimal.Decimal
		trend    Trend
	}{
		{
			name:     "Improving",
			shortAvg: decimal.NewFromFloat(1.2),
			longAvg:  decimal.NewFromInt(1),
			trend:    TrendImproving,
		},
		{
			name:     "Declining",
			shortAvg: decimal.NewFromFloat(0.8),
			longAvg:  decimal.NewFromInt(1),
			trend:    TrendDeclining,
		},
		{
			name:     "Within band",
			shortAvg: decimal.NewFromFloat(1.03),
			longAvg:  decimal.NewFromInt(1),
			trend:    TrendStable,
		},
		{
			name:     "Zero baseline",
			shortAvg: decimal.NewFromInt(1),
			longAvg:  decimal.Zero,
			trend:    TrendStable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			trend, _ := TrendIndicator(test.shortAvg, test.longAvg)
			require.Equal(t, test.trend, trend)
		})
	}
}
