// Package analyzer derives reports from already-fetched reward and
// balance records. Every operation is a pure computation over its
// inputs: accumulation happens in integer wei and only the
// output-facing fields are converted to ETH decimals.
package analyzer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField(
		"module", "analyzer",
	)

	weiPerEth = new(big.Int).SetUint64(params.Ether)

	hundred = decimal.NewFromInt(100)
)

// WeiToEth converts a wei amount to ETH display units. Amounts stay
// exact: the decimal carries the full integer scaled by 10^-18.
func WeiToEth(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -18)
}

// EthToWei converts an ETH decimal (e.g. a CLI threshold flag) back to
// integer wei, truncating anything below 1 wei.
func EthToWei(eth decimal.Decimal) *big.Int {
	return eth.Mul(decimal.NewFromBigInt(weiPerEth, 0)).BigInt()
}
