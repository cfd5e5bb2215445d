package analyzer

import (
	"math/big"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/shopspring/decimal"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

// EpochRange filters records to an inclusive epoch window. A nil bound
// leaves that side open; the zero value covers the full input.
type EpochRange struct {
	Start *phase0.Epoch
	End   *phase0.Epoch
}

func NewEpochRange(start phase0.Epoch, end phase0.Epoch) EpochRange {
	return EpochRange{Start: &start, End: &end}
}

func (r EpochRange) contains(epoch phase0.Epoch) bool {
	if r.Start != nil && epoch < *r.Start {
		return false
	}
	if r.End != nil && epoch > *r.End {
		return false
	}
	return true
}

// RewardTotals accumulates reward records in integer wei. It mirrors
// the per-duty layout of RewardRecord so that no outcome is counted
// twice.
type RewardTotals struct {
	StartEpoch phase0.Epoch
	EndEpoch   phase0.Epoch // inclusive
	Records    int

	Reward  *big.Int
	Penalty *big.Int
	Missed  *big.Int

	Cl *big.Int
	El *big.Int

	InactivityLeak *big.Int
	MissedByDuty   map[spec.DutyKind]*big.Int

	validators map[phase0.ValidatorIndex]struct{}
}

func NewRewardTotals() *RewardTotals {
	missed := make(map[spec.DutyKind]*big.Int, len(spec.DutyKinds))
	for _, duty := range spec.DutyKinds {
		missed[duty] = new(big.Int)
	}
	return &RewardTotals{
		Reward:         new(big.Int),
		Penalty:        new(big.Int),
		Missed:         new(big.Int),
		Cl:             new(big.Int),
		El:             new(big.Int),
		InactivityLeak: new(big.Int),
		MissedByDuty:   missed,
		validators:     make(map[phase0.ValidatorIndex]struct{}),
	}
}

// Aggregate folds one record into the running totals.
func (t *RewardTotals) Aggregate(rec spec.RewardRecord) error {
	cl, el, err := SplitClEl(rec)
	if err != nil {
		return err
	}

	if t.Records == 0 || rec.Epoch < t.StartEpoch {
		t.StartEpoch = rec.Epoch
	}
	if t.Records == 0 || rec.Epoch > t.EndEpoch {
		t.EndEpoch = rec.Epoch
	}
	t.Records++
	t.validators[rec.ValidatorIndex] = struct{}{}

	t.Reward.Add(t.Reward, rec.TotalReward())
	t.Penalty.Add(t.Penalty, rec.TotalPenalty())
	t.Missed.Add(t.Missed, rec.TotalMissed())
	t.Cl.Add(t.Cl, cl)
	t.El.Add(t.El, el)
	addWei(t.InactivityLeak, rec.InactivityLeakPenalty)

	addWei(t.MissedByDuty[spec.DutyHead], rec.AttHeadMissed)
	addWei(t.MissedByDuty[spec.DutySource], rec.AttSourceMissed)
	addWei(t.MissedByDuty[spec.DutyTarget], rec.AttTargetMissed)
	addWei(t.MissedByDuty[spec.DutySync], rec.SyncMissed)
	addWei(t.MissedByDuty[spec.DutyProposalCl], rec.ProposalMissedCl)
	addWei(t.MissedByDuty[spec.DutyProposalEl], rec.ProposalMissedEl)
	return nil
}

func addWei(dst *big.Int, x *big.Int) {
	if x != nil {
		dst.Add(dst, x)
	}
}

func (t *RewardTotals) Validators() int {
	return len(t.validators)
}

// EfficiencyPct is reward / (reward + missed + penalty) * 100, or nil
// when nothing was at stake in the period.
func (t *RewardTotals) EfficiencyPct() *decimal.Decimal {
	denominator := new(big.Int).Add(t.Reward, t.Missed)
	denominator.Add(denominator, t.Penalty)
	if denominator.Sign() == 0 {
		return nil
	}
	pct := decimal.NewFromBigInt(t.Reward, 0).
		Div(decimal.NewFromBigInt(denominator, 0)).
		Mul(hundred)
	return &pct
}

// SplitClEl splits a record into consensus and execution layer
// amounts. Penalties only ever apply to the consensus layer.
func SplitClEl(rec spec.RewardRecord) (*big.Int, *big.Int, error) {
	if err := rec.Validate(); err != nil {
		return nil, nil, err
	}
	cl := rec.AttestationReward()
	addWei(cl, rec.SyncReward)
	addWei(cl, rec.ProposalClReward)
	cl.Sub(cl, rec.TotalPenalty())
	el := new(big.Int)
	addWei(el, rec.ProposalElReward)
	return cl, el, nil
}

// AggregateReport is the output-facing summary of a period. Monetary
// fields are ETH decimals; EfficiencyPct is nil when undefined.
type AggregateReport struct {
	PeriodStart spec.EpochTime `json:"period_start"`
	PeriodEnd   spec.EpochTime `json:"period_end"`
	Records     int            `json:"records"`
	Validators  int            `json:"validators"`

	TotalReward  decimal.Decimal `json:"total_reward_eth"`
	TotalPenalty decimal.Decimal `json:"total_penalty_eth"`
	TotalMissed  decimal.Decimal `json:"total_missed_eth"`

	ClTotal decimal.Decimal `json:"cl_total_eth"`
	ElTotal decimal.Decimal `json:"el_total_eth"`

	InactivityLeakPenalty decimal.Decimal `json:"inactivity_leak_penalty_eth"`

	EfficiencyPct *decimal.Decimal `json:"efficiency_pct"`

	MissedByDuty map[spec.DutyKind]decimal.Decimal `json:"missed_by_duty_eth"`
}

// Aggregate sums the records falling inside the epoch window and
// produces the period report. An empty selection yields a zero report
// with EfficiencyPct nil.
func Aggregate(records []spec.RewardRecord, window EpochRange) (AggregateReport, error) {
	totals := NewRewardTotals()
	for _, rec := range records {
		if !window.contains(rec.Epoch) {
			continue
		}
		if err := totals.Aggregate(rec); err != nil {
			return AggregateReport{}, err
		}
	}
	log.Debugf("aggregated %d of %d records", totals.Records, len(records))
	return totals.Report(window), nil
}

// Report converts the wei totals into the display report. The window
// bounds stamp the period when no records matched.
func (t *RewardTotals) Report(window EpochRange) AggregateReport {
	startEpoch, endEpoch := t.StartEpoch, t.EndEpoch
	if t.Records == 0 {
		if window.Start != nil {
			startEpoch = *window.Start
		}
		if window.End != nil {
			endEpoch = *window.End
		}
	}

	missed := make(map[spec.DutyKind]decimal.Decimal, len(spec.DutyKinds))
	for _, duty := range spec.DutyKinds {
		missed[duty] = WeiToEth(t.MissedByDuty[duty])
	}

	return AggregateReport{
		PeriodStart:           spec.NewEpochTime(startEpoch),
		PeriodEnd:             spec.NewEpochTime(endEpoch),
		Records:               t.Records,
		Validators:            t.Validators(),
		TotalReward:           WeiToEth(t.Reward),
		TotalPenalty:          WeiToEth(t.Penalty),
		TotalMissed:           WeiToEth(t.Missed),
		ClTotal:               WeiToEth(t.Cl),
		ElTotal:               WeiToEth(t.El),
		InactivityLeakPenalty: WeiToEth(t.InactivityLeak),
		EfficiencyPct:         t.EfficiencyPct(),
		MissedByDuty:          missed,
	}
}
