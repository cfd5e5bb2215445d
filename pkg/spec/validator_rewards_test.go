package spec_test

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Buttaa/beaconwatch/pkg/spec"
)

func TestRewardRecordTotals(t *testing.T) {
	rec := spec.RewardRecord{
		ValidatorIndex:   42,
		Epoch:            100,
		AttHeadReward:    big.NewInt(100),
		AttSourceReward:  big.NewInt(200),
		AttTargetReward:  big.NewInt(300),
		AttTargetMissed:  big.NewInt(50),
		AttHeadPenalty:   big.NewInt(10),
		SyncReward:       big.NewInt(1000),
		SyncPenalty:      big.NewInt(5),
		ProposalClReward: big.NewInt(5000),
		ProposalElReward: big.NewInt(7000),
		ProposalMissedEl: big.NewInt(70),
	}

	require.NoError(t, rec.Validate())
	require.Equal(t, big.NewInt(600), rec.AttestationReward())
	require.Equal(t, big.NewInt(50), rec.AttestationMissed())
	require.Equal(t, big.NewInt(10), rec.AttestationPenalty())
	require.Equal(t, big.NewInt(13600), rec.TotalReward())
	require.Equal(t, big.NewInt(15), rec.TotalPenalty())
	require.Equal(t, big.NewInt(120), rec.TotalMissed())
}

func TestRewardRecordNilWeiFields(t *testing.T) {
	// a zero-value record behaves as all-zero, not as a panic
	var rec spec.RewardRecord
	require.NoError(t, rec.Validate())
	require.Equal(t, 0, rec.TotalReward().Sign())
	require.Equal(t, 0, rec.TotalPenalty().Sign())
	require.Equal(t, 0, rec.TotalMissed().Sign())
}

func TestRewardRecordRejectsNegative(t *testing.T) {
	rec := spec.RewardRecord{
		AttSourceReward: big.NewInt(-1),
	}
	err := rec.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, spec.ErrInconsistentData))
}
