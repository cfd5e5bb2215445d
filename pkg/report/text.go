// Package report renders analyzer output as human-readable text and
// CSV. It replaces the external formatting scripts with direct
// in-process calls from the CLI layer.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/Buttaa/beaconwatch/pkg/analyzer"
	"github.com/Buttaa/beaconwatch/pkg/model"
	"github.com/Buttaa/beaconwatch/pkg/spec"
)

func formatEth(v decimal.Decimal) string {
	return v.StringFixed(6) + " ETH"
}

func formatPct(v *decimal.Decimal) string {
	if v == nil {
		return "n/a"
	}
	return v.StringFixed(2) + "%"
}

// WriteAggregate prints the period summary with CL/EL split and
// efficiency.
func WriteAggregate(w io.Writer, r analyzer.AggregateReport) {
	fmt.Fprintf(w, "Period:        %s -> %s\n", r.PeriodStart, r.PeriodEnd)
	fmt.Fprintf(w, "Records:       %d (%d validators)\n", r.Records, r.Validators)
	fmt.Fprintf(w, "Total reward:  %s\n", formatEth(r.TotalReward))
	fmt.Fprintf(w, "Total penalty: %s\n", formatEth(r.TotalPenalty))
	fmt.Fprintf(w, "Total missed:  %s\n", formatEth(r.TotalMissed))
	fmt.Fprintf(w, "Efficiency:    %s\n", formatPct(r.EfficiencyPct))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "CL rewards:    %s\n", formatEth(r.ClTotal))
	fmt.Fprintf(w, "EL rewards:    %s\n", formatEth(r.ElTotal))
}

// WriteMissedBreakdown prints the per-duty missed amounts and the
// derived diagnostics.
func WriteMissedBreakdown(w io.Writer, r analyzer.AggregateReport, findings []analyzer.Diagnostic) {
	fmt.Fprintf(w, "Missed rewards by duty:\n")
	for _, duty := range spec.DutyKinds {
		fmt.Fprintf(w, "  %-12s %s\n", duty, formatEth(r.MissedByDuty[duty]))
	}
	fmt.Fprintf(w, "\nDiagnostics:\n")
	for _, finding := range findings {
		fmt.Fprintf(w, "  [%s] %s: %s\n", finding.Severity, finding.Summary, finding.Advice)
	}
}

// WriteBalanceTrend prints the series stats and any anomalies. The
// largest single drop gets a callout since it usually means penalties
// or slashing.
func WriteBalanceTrend(w io.Writer, trend analyzer.BalanceTrend, anomalies []analyzer.BalanceAnomaly) {
	fmt.Fprintf(w, "Samples:        %d\n", trend.Samples)
	if trend.Samples == 0 {
		return
	}
	fmt.Fprintf(w, "First balance:  %s\n", formatEth(trend.First))
	fmt.Fprintf(w, "Latest balance: %s\n", formatEth(trend.Last))
	fmt.Fprintf(w, "Net change:     %s\n", formatEth(trend.NetChange))
	fmt.Fprintf(w, "Peak:           %s\n", formatEth(trend.Peak))
	fmt.Fprintf(w, "Trough:         %s\n", formatEth(trend.Trough))
	if trend.MaxDrop.IsNegative() {
		fmt.Fprintf(w, "Largest single drop: %s (check for penalties/slashing)\n", formatEth(trend.MaxDrop))
	}
	for _, anomaly := range anomalies {
		fmt.Fprintf(w, "  anomaly: %s of %s at %s\n",
			anomaly.Kind, formatEth(analyzer.WeiToEth(anomaly.Delta)), spec.NewEpochTime(anomaly.Epoch))
	}
}

// WriteQueues prints activation/exit queue estimates from a network
// overview.
func WriteQueues(w io.Writer, overview model.NetworkOverview) {
	churn := spec.ChurnLimit(overview.ActiveValidators)
	fmt.Fprintf(w, "Active validators: %d\n", overview.ActiveValidators)
	fmt.Fprintf(w, "Churn limit:       %d per epoch (%d per day)\n", churn, churn*spec.EpochsPerDay)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Activation queue:  %d validators, est. wait %s\n",
		overview.BeaconchainEntering,
		spec.EstimatedQueueWait(overview.BeaconchainEntering, overview.ActiveValidators))
	fmt.Fprintf(w, "Exit queue:        %d validators, est. wait %s\n",
		overview.BeaconchainExiting,
		spec.EstimatedQueueWait(overview.BeaconchainExiting, overview.ActiveValidators))
	if overview.WithdrawalQueue > 0 {
		fmt.Fprintf(w, "Withdrawal queue:  %d\n", overview.WithdrawalQueue)
	}
	if overview.ParticipationRate != nil {
		fmt.Fprintf(w, "Participation:     %.2f%%\n", *overview.ParticipationRate*100)
	}
}

// WriteApr prints annualized return rates for a period.
func WriteApr(w io.Writer, r analyzer.AggregateReport, totalApr *decimal.Decimal, clApr *decimal.Decimal, elApr *decimal.Decimal) {
	epochs := int64(r.PeriodEnd.Epoch-r.PeriodStart.Epoch) + 1
	fmt.Fprintf(w, "Period:        %d epochs (~%.1f days)\n", epochs,
		float64(epochs*spec.SecondsPerEpoch)/86400)
	fmt.Fprintf(w, "Validators:    %d\n", r.Validators)
	fmt.Fprintf(w, "Net reward:    %s\n", formatEth(r.TotalReward.Sub(r.TotalPenalty)))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Total APR:     %s\n", formatPct(totalApr))
	if totalApr != nil {
		apy := analyzer.AprToApy(*totalApr)
		fmt.Fprintf(w, "Total APY:     %s\n", formatPct(&apy))
	}
	fmt.Fprintf(w, "CL APR:        %s\n", formatPct(clApr))
	fmt.Fprintf(w, "EL APR:        %s\n", formatPct(elApr))
}
