package model

import (
	"encoding/json"
	"io"
	"math/big"
	"sort"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

// ParseWei parses a wei amount from its API string form. The API
// serializes every monetary field as a decimal string; an empty or
// absent field counts as zero.
func ParseWei(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	wei, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(spec.ErrInconsistentData, "malformed wei amount %q", s)
	}
	return wei, nil
}

// DecodeRewardsList reads a rewards-list response and converts every
// entry into a RewardRecord. Entries without their own epoch inherit
// the response range start.
func DecodeRewardsList(r io.Reader) ([]spec.RewardRecord, ResultRange, error) {
	var resp RewardsListResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, ResultRange{}, errors.Wrap(spec.ErrInvalidInput, err.Error())
	}

	records := make([]spec.RewardRecord, 0, len(resp.Data))
	for i, entry := range resp.Data {
		rec, err := entry.ToRecord(resp.Range)
		if err != nil {
			return nil, ResultRange{}, errors.Wrapf(err, "rewards entry %d", i)
		}
		records = append(records, rec)
	}
	log.Debugf("decoded %d reward records", len(records))
	return records, resp.Range, nil
}

// ToRecord converts one API entry into the domain record. The API
// reports the proposal CL reward only as total minus the EL share.
func (e RewardEntry) ToRecord(rng ResultRange) (spec.RewardRecord, error) {
	epoch := rng.Epoch.Start
	if e.Epoch != nil {
		epoch = *e.Epoch
	}
	if epoch < 0 {
		return spec.RewardRecord{}, errors.Wrapf(spec.ErrInconsistentData, "negative epoch %d", epoch)
	}

	rec := spec.RewardRecord{
		ValidatorIndex: phase0.ValidatorIndex(e.Validator.Index),
		Epoch:          phase0.Epoch(epoch),
		Finalized:      e.Finality == "finalized",
	}

	var err error
	parse := func(s string) *big.Int {
		if err != nil {
			return nil
		}
		var wei *big.Int
		wei, err = ParseWei(s)
		return wei
	}

	rec.AttHeadReward = parse(e.Attestation.Head.Reward)
	rec.AttSourceReward = parse(e.Attestation.Source.Reward)
	rec.AttTargetReward = parse(e.Attestation.Target.Reward)
	rec.AttHeadMissed = parse(e.Attestation.Head.MissedReward)
	rec.AttSourceMissed = parse(e.Attestation.Source.MissedReward)
	rec.AttTargetMissed = parse(e.Attestation.Target.MissedReward)
	rec.AttHeadPenalty = parse(e.Attestation.Head.Penalty)
	rec.AttSourcePenalty = parse(e.Attestation.Source.Penalty)
	rec.AttTargetPenalty = parse(e.Attestation.Target.Penalty)
	rec.InactivityLeakPenalty = parse(e.Attestation.InactivityLeakPenalty)
	rec.SyncReward = parse(e.SyncCommittee.Reward)
	rec.SyncMissed = parse(e.SyncCommittee.MissedReward)
	rec.SyncPenalty = parse(e.SyncCommittee.Penalty)
	rec.ProposalElReward = parse(e.Proposal.ExecutionLayerReward)
	rec.ProposalMissedCl = parse(e.Proposal.MissedCLReward)
	rec.ProposalMissedEl = parse(e.Proposal.MissedELReward)

	proposalTotal := parse(e.Proposal.Total)
	if err != nil {
		return spec.RewardRecord{}, errors.Wrapf(err, "validator %d epoch %d", e.Validator.Index, epoch)
	}
	rec.ProposalClReward = new(big.Int).Sub(proposalTotal, rec.ProposalElReward)

	if err := rec.Validate(); err != nil {
		return spec.RewardRecord{}, err
	}
	return rec, nil
}

// DecodeBalanceHistory reads a balance-history response into one
// sample series per validator, each sorted ascending by epoch.
func DecodeBalanceHistory(r io.Reader) (map[phase0.ValidatorIndex][]spec.BalanceSample, error) {
	var resp BalanceHistoryResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, errors.Wrap(spec.ErrInvalidInput, err.Error())
	}

	series := make(map[phase0.ValidatorIndex][]spec.BalanceSample)
	for i, entry := range resp.Data {
		if entry.Epoch < 0 {
			return nil, errors.Wrapf(spec.ErrInconsistentData, "balance entry %d: negative epoch %d", i, entry.Epoch)
		}
		balance, err := ParseWei(entry.Balance)
		if err != nil {
			return nil, errors.Wrapf(err, "balance entry %d", i)
		}
		effective, err := ParseWei(entry.EffectiveBalance)
		if err != nil {
			return nil, errors.Wrapf(err, "balance entry %d", i)
		}
		idx := phase0.ValidatorIndex(entry.Validator.Index)
		series[idx] = append(series[idx], spec.BalanceSample{
			Epoch:            phase0.Epoch(entry.Epoch),
			CurrentBalance:   balance,
			EffectiveBalance: effective,
		})
	}
	for idx := range series {
		samples := series[idx]
		sort.Slice(samples, func(i, j int) bool { return samples[i].Epoch < samples[j].Epoch })
	}
	return series, nil
}

// DecodeNetworkOverview reads a network-overview response.
func DecodeNetworkOverview(r io.Reader) (NetworkOverview, error) {
	var resp NetworkOverviewResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return NetworkOverview{}, errors.Wrap(spec.ErrInvalidInput, err.Error())
	}
	return resp.Data, nil
}
