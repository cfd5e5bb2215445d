package utils

import (
	"testing"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/stretchr/testify/require"
)

func TestEpochRanges(t *testing.T) {
	testRanges := []string{"0:100", "A:100", "100:B", "100:0", "100"}

	r1, err := NewEpochRangeFromString(testRanges[0])
	require.NoError(t, err)
	require.Equal(t, phase0.Epoch(0), r1.Start)
	require.Equal(t, phase0.Epoch(100), r1.End)

	_, err = NewEpochRangeFromString(testRanges[1])
	require.Error(t, err)

	_, err = NewEpochRangeFromString(testRanges[2])
	require.Error(t, err)

	_, err = NewEpochRangeFromString(testRanges[3])
	require.Error(t, err)

	_, err = NewEpochRangeFromString(testRanges[4])
	require.Error(t, err)
}
