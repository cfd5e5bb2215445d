package spec

import (
	"math/big"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"
)

// RewardRecord is one validator's reward outcome for one epoch. All
// monetary fields are wei integers; conversion to ETH happens only at
// presentation time.
type RewardRecord struct {
	ValidatorIndex phase0.ValidatorIndex
	Epoch          phase0.Epoch

	AttHeadReward   *big.Int
	AttSourceReward *big.Int
	AttTargetReward *big.Int

	AttHeadMissed   *big.Int
	AttSourceMissed *big.Int
	AttTargetMissed *big.Int

	AttHeadPenalty        *big.Int
	AttSourcePenalty      *big.Int
	AttTargetPenalty      *big.Int
	InactivityLeakPenalty *big.Int

	SyncReward  *big.Int
	SyncMissed  *big.Int
	SyncPenalty *big.Int

	ProposalClReward *big.Int
	ProposalElReward *big.Int
	ProposalMissedCl *big.Int
	ProposalMissedEl *big.Int

	Finalized bool
}

// weiOrZero lets partially filled records behave as if absent fields
// were zero.
func weiOrZero(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}

func sumWei(xs ...*big.Int) *big.Int {
	total := new(big.Int)
	for _, x := range xs {
		total.Add(total, weiOrZero(x))
	}
	return total
}

func (r RewardRecord) AttestationReward() *big.Int {
	return sumWei(r.AttHeadReward, r.AttSourceReward, r.AttTargetReward)
}

func (r RewardRecord) AttestationMissed() *big.Int {
	return sumWei(r.AttHeadMissed, r.AttSourceMissed, r.AttTargetMissed)
}

func (r RewardRecord) AttestationPenalty() *big.Int {
	return sumWei(r.AttHeadPenalty, r.AttSourcePenalty, r.AttTargetPenalty)
}

func (r RewardRecord) TotalReward() *big.Int {
	return sumWei(r.AttestationReward(), r.SyncReward, r.ProposalClReward, r.ProposalElReward)
}

func (r RewardRecord) TotalPenalty() *big.Int {
	return sumWei(r.AttestationPenalty(), r.SyncPenalty, r.InactivityLeakPenalty)
}

func (r RewardRecord) TotalMissed() *big.Int {
	return sumWei(r.AttestationMissed(), r.SyncMissed, r.ProposalMissedCl, r.ProposalMissedEl)
}

// Validate rejects records carrying negative amounts. The upstream
// schema reports penalties as separate positive fields, so a negative
// value anywhere signals corrupted data.
func (r RewardRecord) Validate() error {
	fields := map[string]*big.Int{
		"attestation head reward":    r.AttHeadReward,
		"attestation source reward":  r.AttSourceReward,
		"attestation target reward":  r.AttTargetReward,
		"attestation head missed":    r.AttHeadMissed,
		"attestation source missed":  r.AttSourceMissed,
		"attestation target missed":  r.AttTargetMissed,
		"attestation head penalty":   r.AttHeadPenalty,
		"attestation source penalty": r.AttSourcePenalty,
		"attestation target penalty": r.AttTargetPenalty,
		"inactivity leak penalty":    r.InactivityLeakPenalty,
		"sync committee reward":      r.SyncReward,
		"sync committee missed":      r.SyncMissed,
		"sync committee penalty":     r.SyncPenalty,
		"proposal cl reward":         r.ProposalClReward,
		"proposal el reward":         r.ProposalElReward,
		"proposal missed cl reward":  r.ProposalMissedCl,
		"proposal missed el reward":  r.ProposalMissedEl,
	}
	for name, value := range fields {
		if value != nil && value.Sign() < 0 {
			return errors.Wrapf(ErrInconsistentData,
				"validator %d epoch %d: negative %s %s",
				r.ValidatorIndex, r.Epoch, name, value.String())
		}
	}
	return nil
}
