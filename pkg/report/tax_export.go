package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/Buttaa/beaconwatch/pkg/analyzer"
	"github.com/Buttaa/beaconwatch/pkg/spec"
)

var taxExportHeader = []string{
	"validator_index",
	"epoch",
	"date",
	"timestamp_utc",
	"total_reward_eth",
	"total_penalty_eth",
	"net_reward_eth",
	"attestation_eth",
	"sync_committee_eth",
	"proposal_cl_eth",
	"proposal_el_eth",
	"finalized",
}

// WriteTaxExportCSV writes one row per reward record, stamped with the
// record's epoch time shifted into the requested fixed offset.
func WriteTaxExportCSV(w io.Writer, records []spec.RewardRecord, tzOffset time.Duration) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(taxExportHeader); err != nil {
		return errors.Wrap(err, "unable to write csv header")
	}

	location := time.FixedZone("export", int(tzOffset.Seconds()))
	for _, rec := range records {
		ts := spec.EpochToTimestamp(rec.Epoch)
		reward := analyzer.WeiToEth(rec.TotalReward())
		penalty := analyzer.WeiToEth(rec.TotalPenalty())

		row := []string{
			strconv.FormatUint(uint64(rec.ValidatorIndex), 10),
			strconv.FormatUint(uint64(rec.Epoch), 10),
			time.Unix(ts, 0).In(location).Format("2006-01-02 15:04:05"),
			strconv.FormatInt(ts, 10),
			reward.StringFixed(9),
			penalty.StringFixed(9),
			reward.Sub(penalty).StringFixed(9),
			analyzer.WeiToEth(rec.AttestationReward()).StringFixed(9),
			analyzer.WeiToEth(rec.SyncReward).StringFixed(9),
			analyzer.WeiToEth(rec.ProposalClReward).StringFixed(9),
			analyzer.WeiToEth(rec.ProposalElReward).StringFixed(9),
			strconv.FormatBool(rec.Finalized),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "unable to write csv row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "unable to flush csv")
}
