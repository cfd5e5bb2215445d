package spec

/*
Mainnet beacon chain time
*/

const (
	GenesisTimestamp = 1606824023 // Dec 1, 2020, 12:00:23 UTC
	SecondsPerSlot   = 12
	SlotsPerEpoch    = 32
	SecondsPerEpoch  = SecondsPerSlot * SlotsPerEpoch // 384
	EpochsPerDay     = 225
	EpochsPerYear    = 82125 // ~365.25 * 225
)

/*
Validator churn
*/
const (
	MinPerEpochChurnLimit = 4
	ChurnLimitQuotient    = 65536
)

type DutyKind string

const (
	DutyHead       DutyKind = "head"
	DutySource     DutyKind = "source"
	DutyTarget     DutyKind = "target"
	DutySync       DutyKind = "sync"
	DutyProposalCl DutyKind = "proposal_cl"
	DutyProposalEl DutyKind = "proposal_el"
)

var DutyKinds = [6]DutyKind{
	DutyHead,
	DutySource,
	DutyTarget,
	DutySync,
	DutyProposalCl,
	DutyProposalEl,
}
