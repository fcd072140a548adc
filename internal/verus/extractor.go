package verus

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

// RewardExtractor derives staking-reward tuples from PoS blocks. Extraction
// is a pure function of the block and the configured filters: running it
// twice on the same block yields the same tuple set.
type RewardExtractor struct {
	excluded   map[string]struct{}
	allOutputs bool
}

// NewRewardExtractor builds an extractor. excluded lists consensus
// addresses that must never be attributed rewards; allOutputs widens
// extraction from the coinstake's first output to every output.
func NewRewardExtractor(excluded []string, allOutputs bool) *RewardExtractor {
	set := make(map[string]struct{}, len(excluded))
	for _, addr := range excluded {
		set[addr] = struct{}{}
	}
	return &RewardExtractor{excluded: set, allOutputs: allOutputs}
}

// Extract returns zero or more reward tuples for a PoS block. Non-PoS
// blocks and coinstakes without outputs yield nothing.
func (e *RewardExtractor) Extract(b *VerboseBlock) ([]model.StakeReward, error) {
	if Classify(b) != model.BlockPoS {
		return nil, nil
	}
	if len(b.Tx) == 0 {
		return nil, nil
	}

	coinstake := b.Tx[0]
	if len(coinstake.Vout) == 0 {
		return nil, nil
	}

	vouts := coinstake.Vout[:1]
	if e.allOutputs {
		vouts = coinstake.Vout
	}

	blockTime := b.BlockTime()
	var rewards []model.StakeReward
	for _, vout := range vouts {
		amount, err := coinsToSats(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d: %w", coinstake.Txid, vout.N, err)
		}
		if amount == 0 {
			continue
		}

		for _, addr := range vout.ScriptPubKey.Addresses {
			if _, ok := e.excluded[addr]; ok {
				continue
			}
			if !IsIdentityAddress(addr) {
				continue
			}

			rewards = append(rewards, model.StakeReward{
				IdentityAddress: addr,
				TxID:            coinstake.Txid,
				OutputIndex:     vout.N,
				BlockHeight:     uint64(b.Height),
				BlockHash:       b.Hash,
				BlockTime:       blockTime,
				AmountSats:      amount,
				Classifier:      model.ClassifierStakeReward,
				SourceAddress:   addr,
			})
		}
	}

	return rewards, nil
}

// coinsToSats converts a coin-denominated RPC value to smallest units with
// exact rounding. Negative values are rejected.
func coinsToSats(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, fmt.Errorf("convert amount %f: %w", value, err)
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return uint64(amt), nil
}
