package analyzer

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

func TestDiagnoseCleanPeriod(t *testing.T) {
	records := []spec.RewardRecord{
		attRecord(10, eth(0.001), nil),
		attRecord(11, eth(0.001), nil),
	}
	report, err := Aggregate(records, EpochRange{})
	require.NoError(t, err)

	findings := Diagnose(report)
	require.Len(t, findings, 1)
	require.Equal(t, SeverityInfo, findings[0].Severity)
	require.Equal(t, "exceptional performance", findings[0].Summary)
}

func TestDiagnoseMissedDuties(t *testing.T) {
	records := []spec.RewardRecord{
		{
			Epoch:            10,
			AttTargetReward:  eth(0.001),
			AttTargetMissed:  eth(0.01),
			ProposalMissedEl: eth(0.05),
		},
	}
	report, err := Aggregate(records, EpochRange{})
	require.NoError(t, err)

	findings := Diagnose(report)
	summaries := make(map[string]Severity)
	for _, finding := range findings {
		summaries[finding.Summary] = finding.Severity
	}

	require.Contains(t, summaries, "missed target votes")
	require.Equal(t, SeverityCritical, summaries["missed target votes"])
	require.Contains(t, summaries, "poor performance")
	require.NotContains(t, summaries, "missed head votes")

	foundProposal := false
	for summary := range summaries {
		if len(summary) > len("missed block proposal") && summary[:21] == "missed block proposal" {
			foundProposal = true
		}
	}
	require.True(t, foundProposal, "expected a missed proposal finding, got %v", summaries)
}

func TestDiagnoseUndefinedCapture(t *testing.T) {
	report, err := Aggregate(nil, EpochRange{})
	require.NoError(t, err)

	findings := Diagnose(report)
	require.Len(t, findings, 1)
	require.Equal(t, "no duties in period", findings[0].Summary)
}

func TestDiagnoseInactivityLeak(t *testing.T) {
	records := []spec.RewardRecord{
		{
			Epoch:                 10,
			AttTargetReward:       eth(0.001),
			InactivityLeakPenalty: big.NewInt(1e12),
		},
	}
	report, err := Aggregate(records, EpochRange{})
	require.NoError(t, err)

	var leak bool
	for _, finding := range Diagnose(report) {
		if finding.Summary == "inactivity leak penalty" {
			leak = true
			require.Equal(t, SeverityCritical, finding.Severity)
		}
	}
	require.True(t, leak)
}
