// Package model mirrors the beaconcha.in v2 API response schema. The
// caller fetches and page-merges the JSON; this package only decodes
// it into the domain records under pkg/spec.
package model

import (
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField(
		"module", "model",
	)
)

// RewardsListResponse is the body of POST /api/v2/ethereum/validators/rewards-list.
type RewardsListResponse struct {
	Data  []RewardEntry `json:"data"`
	Range ResultRange   `json:"range"`
}

type RewardEntry struct {
	Validator     ValidatorRef         `json:"validator"`
	Epoch         *int64               `json:"epoch,omitempty"`
	TotalReward   string               `json:"total_reward"`
	TotalPenalty  string               `json:"total_penalty"`
	TotalMissed   string               `json:"total_missed"`
	Attestation   AttestationRewards   `json:"attestation"`
	SyncCommittee SyncCommitteeRewards `json:"sync_committee"`
	Proposal      ProposalRewards      `json:"proposal"`
	Finality      string               `json:"finality,omitempty"`
}

type ValidatorRef struct {
	Index     uint64 `json:"index"`
	PublicKey string `json:"public_key,omitempty"`
}

type AttestationRewards struct {
	Total                 string          `json:"total"`
	Head                  RewardBreakdown `json:"head"`
	Source                RewardBreakdown `json:"source"`
	Target                RewardBreakdown `json:"target"`
	InactivityLeakPenalty string          `json:"inactivity_leak_penalty,omitempty"`
}

type RewardBreakdown struct {
	Total        string `json:"total"`
	Reward       string `json:"reward"`
	Penalty      string `json:"penalty"`
	MissedReward string `json:"missed_reward"`
}

type SyncCommitteeRewards struct {
	Total        string `json:"total"`
	Reward       string `json:"reward"`
	Penalty      string `json:"penalty"`
	MissedReward string `json:"missed_reward"`
}

type ProposalRewards struct {
	Total                      string `json:"total"`
	ExecutionLayerReward       string `json:"execution_layer_reward"`
	AttestationInclusionReward string `json:"attestation_inclusion_reward,omitempty"`
	SyncInclusionReward        string `json:"sync_inclusion_reward,omitempty"`
	SlashingInclusionReward    string `json:"slashing_inclusion_reward,omitempty"`
	MissedCLReward             string `json:"missed_cl_reward"`
	MissedELReward             string `json:"missed_el_reward"`
}

type ResultRange struct {
	Slot      BoundsRange `json:"slot"`
	Epoch     BoundsRange `json:"epoch"`
	Timestamp BoundsRange `json:"timestamp"`
}

type BoundsRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// BalanceHistoryResponse is the body of the balance-history endpoint.
type BalanceHistoryResponse struct {
	Data []BalanceEntry `json:"data"`
}

type BalanceEntry struct {
	Validator        ValidatorRef `json:"validator"`
	Epoch            int64        `json:"epoch"`
	Balance          string       `json:"balance"`
	EffectiveBalance string       `json:"effective_balance"`
}

// NetworkOverviewResponse is the body of the network-overview endpoint,
// used for queue estimates.
type NetworkOverviewResponse struct {
	Data NetworkOverview `json:"data"`
}

type NetworkOverview struct {
	ActiveValidators    uint64   `json:"active_validators"`
	BeaconchainEntering uint64   `json:"beaconchain_entering"`
	BeaconchainExiting  uint64   `json:"beaconchain_exiting"`
	WithdrawalQueue     uint64   `json:"withdrawal_queue"`
	ParticipationRate   *float64 `json:"participation_rate,omitempty"`
}
