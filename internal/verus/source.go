package verus

import (
	"context"
	"fmt"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/chain"
	"github.com/stakewatch/stakewatch-backend/internal/model"
	"github.com/stakewatch/stakewatch-backend/pkg/safe"
)

// StakeSource adapts the node RPC surface to the scanning contracts:
// it fetches blocks by height, classifies them, and extracts reward tuples.
type StakeSource struct {
	rpc       RPCClient
	extractor *RewardExtractor
}

// NewStakeSource creates a StakeSource.
func NewStakeSource(rpc RPCClient, extractor *RewardExtractor) *StakeSource {
	return &StakeSource{rpc: rpc, extractor: extractor}
}

// LatestHeight returns the current chain tip reported by the node.
func (s *StakeSource) LatestHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, &chain.PermanentError{Op: "getblockcount", Err: err}
	}
	return height, nil
}

// FetchBlock retrieves and classifies the block at height, extracting its
// reward tuples when it is a stake block.
func (s *StakeSource) FetchBlock(ctx context.Context, height uint64) (*model.ScannedBlock, error) {
	rpcHeight, err := safe.Int64(height)
	if err != nil {
		return nil, &chain.PermanentError{Op: "getblockhash", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := s.rpc.GetBlockHash(rpcHeight)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	block, err := s.rpc.GetBlockVerbose(hash.String())
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	if block.Height < 0 || uint64(block.Height) != height {
		return nil, &chain.PermanentError{
			Op:  "getblock",
			Err: fmt.Errorf("block %s reports height %d, want %d", block.Hash, block.Height, height),
		}
	}

	rewards, err := s.extractor.Extract(block)
	if err != nil {
		return nil, &chain.PermanentError{
			Op:  "extract",
			Err: fmt.Errorf("block %d: %w", height, err),
		}
	}

	return &model.ScannedBlock{
		Height:  height,
		Hash:    block.Hash,
		Time:    block.BlockTime(),
		Kind:    Classify(block),
		Rewards: rewards,
	}, nil
}

// IdentityCreation resolves the creation record of an identity from its
// on-chain history; the earliest entry is the creation event.
func (s *StakeSource) IdentityCreation(ctx context.Context, address string) (*model.IdentityCreation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := s.rpc.GetIdentityHistory(address)
	if err != nil {
		return nil, fmt.Errorf("get identity history for %s: %w", address, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("identity history for %s: %w", address, chain.ErrNotFound)
	}

	first := entries[0]
	if first.BlockHeight < 0 {
		return nil, &chain.PermanentError{
			Op:  "getidentityhistory",
			Err: fmt.Errorf("identity %s creation height %d is negative", address, first.BlockHeight),
		}
	}

	return &model.IdentityCreation{
		IdentityAddress: address,
		BaseName:        first.Identity.Name,
		BlockHeight:     uint64(first.BlockHeight),
		TxID:            first.Txid,
		BlockTime:       unixUTC(first.BlockTime),
	}, nil
}

// AddressUTXOs lists the currently unspent outputs of an address.
func (s *StakeSource) AddressUTXOs(ctx context.Context, address string) ([]model.AddressUTXO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results, err := s.rpc.GetAddressUTXOs(address)
	if err != nil {
		return nil, fmt.Errorf("get address utxos for %s: %w", address, err)
	}

	utxos := make([]model.AddressUTXO, 0, len(results))
	for _, res := range results {
		sats, err := safe.Uint64(res.Satoshis)
		if err != nil {
			return nil, &chain.PermanentError{
				Op:  "getaddressutxos",
				Err: fmt.Errorf("utxo %s:%d amount: %w", res.Txid, res.OutputIndex, err),
			}
		}
		height, err := safe.Uint64(res.Height)
		if err != nil {
			return nil, &chain.PermanentError{
				Op:  "getaddressutxos",
				Err: fmt.Errorf("utxo %s:%d height: %w", res.Txid, res.OutputIndex, err),
			}
		}
		utxos = append(utxos, model.AddressUTXO{
			IdentityAddress: address,
			TxID:            res.Txid,
			OutputIndex:     res.OutputIndex,
			AmountSats:      sats,
			CreationHeight:  height,
		})
	}
	return utxos, nil
}

func unixUTC(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}
