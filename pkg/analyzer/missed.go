package analyzer

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

// MissedBreakdown sums missed rewards per duty kind. The result always
// carries all six duty keys so callers never special-case absence.
func MissedBreakdown(records []spec.RewardRecord) (map[spec.DutyKind]*big.Int, error) {
	totals := NewRewardTotals()
	for _, rec := range records {
		if err := totals.Aggregate(rec); err != nil {
			return nil, err
		}
	}
	return totals.MissedByDuty, nil
}

type Severity int8

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityCritical:
		return "critical"
	default:
		return "info"
	}
}

// Diagnostic is one actionable finding derived from a period report.
type Diagnostic struct {
	Severity Severity
	Summary  string
	Advice   string
}

// Capture rate bands for the overall verdict.
var (
	captureExceptional = decimal.NewFromFloat(99.5)
	captureGood        = decimal.NewFromInt(99)
	captureTarget      = decimal.NewFromInt(95)
)

// Diagnose turns a period report into operator-facing findings: one
// per duty kind with missed value, plus an overall capture-rate
// verdict.
func Diagnose(report AggregateReport) []Diagnostic {
	var out []Diagnostic

	if report.MissedByDuty[spec.DutyHead].IsPositive() {
		out = append(out, Diagnostic{
			Severity: SeverityWarn,
			Summary:  "missed head votes",
			Advice:   "check network latency and peer count; ensure the beacon node has good connectivity",
		})
	}
	if report.MissedByDuty[spec.DutySource].IsPositive() {
		out = append(out, Diagnostic{
			Severity: SeverityWarn,
			Summary:  "missed source votes",
			Advice:   "verify the beacon node is synced and not falling behind",
		})
	}
	if report.MissedByDuty[spec.DutyTarget].IsPositive() {
		out = append(out, Diagnostic{
			Severity: SeverityCritical,
			Summary:  "missed target votes",
			Advice:   "most costly miss; check node sync status and attestation timing, may indicate extended downtime",
		})
	}
	if report.MissedByDuty[spec.DutySync].IsPositive() {
		out = append(out, Diagnostic{
			Severity: SeverityWarn,
			Summary:  "missed sync committee duties",
			Advice:   "validator was selected for a sync committee but missed participation; check uptime during the sync period",
		})
	}
	if missedProposal := report.MissedByDuty[spec.DutyProposalCl].Add(report.MissedByDuty[spec.DutyProposalEl]); missedProposal.IsPositive() {
		out = append(out, Diagnostic{
			Severity: SeverityCritical,
			Summary:  "missed block proposal (" + missedProposal.StringFixed(6) + " ETH)",
			Advice:   "validator was offline or slow when assigned to propose; check the node was running and the MEV relay configured",
		})
	}
	if report.InactivityLeakPenalty.IsPositive() {
		out = append(out, Diagnostic{
			Severity: SeverityCritical,
			Summary:  "inactivity leak penalty",
			Advice:   "the network had finality issues while the validator was offline; restore uptime immediately",
		})
	}

	out = append(out, captureVerdict(report.EfficiencyPct))
	return out
}

func captureVerdict(efficiency *decimal.Decimal) Diagnostic {
	if efficiency == nil {
		return Diagnostic{
			Severity: SeverityInfo,
			Summary:  "no duties in period",
			Advice:   "nothing was at stake, capture rate is undefined",
		}
	}
	rate := efficiency.StringFixed(2) + "%"
	switch {
	case efficiency.GreaterThanOrEqual(captureExceptional):
		return Diagnostic{SeverityInfo, "exceptional performance", "capture rate " + rate + ", no action needed"}
	case efficiency.GreaterThanOrEqual(captureGood):
		return Diagnostic{SeverityInfo, "good performance", "capture rate " + rate + ", minor optimizations possible"}
	case efficiency.GreaterThanOrEqual(captureTarget):
		return Diagnostic{SeverityWarn, "below target", "capture rate " + rate + ", investigate the missed duties above"}
	default:
		return Diagnostic{SeverityCritical, "poor performance", "capture rate " + rate + ", immediate attention required"}
	}
}
