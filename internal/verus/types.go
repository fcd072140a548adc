// Package verus implements the node adapter for Verus-style identity
// chains: RPC access, PoS/PoW classification, and reward extraction.
package verus

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// RPCClient is the narrow node surface the scanning services need.
	RPCClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(height int64) (*chainhash.Hash, error)
		GetBlockVerbose(hash string) (*VerboseBlock, error)
		GetIdentityHistory(address string) ([]IdentityHistoryEntry, error)
		GetAddressUTXOs(address string) ([]AddressUTXOResult, error)
	}
)

// VerboseBlock is a decoded `getblock <hash> 2` response. ValidationType is
// reported by newer nodes only; PosRewardDest is present on stake blocks
// when the node exposes it.
type VerboseBlock struct {
	Hash           string  `json:"hash"`
	Height         int64   `json:"height"`
	Time           int64   `json:"time"`
	ValidationType string  `json:"validationtype"`
	PosRewardDest  string  `json:"posrewarddest"`
	Tx             []RawTx `json:"tx"`
}

// BlockTime returns the block timestamp in UTC.
func (b *VerboseBlock) BlockTime() time.Time {
	return time.Unix(b.Time, 0).UTC()
}

// RawTx is a decoded transaction within a verbose block.
type RawTx struct {
	Txid string `json:"txid"`
	Vout []Vout `json:"vout"`
}

// Vout is one transaction output.
type Vout struct {
	Value        float64      `json:"value"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// ScriptPubKey carries the decoded output script. A staking payout script
// may list more than one address.
type ScriptPubKey struct {
	Type      string   `json:"type"`
	Addresses []string `json:"addresses"`
}

// IdentityHistoryEntry is one lifecycle event from `getidentityhistory`,
// ordered oldest first; the first entry is the creation record.
type IdentityHistoryEntry struct {
	Identity    IdentityState `json:"identity"`
	BlockHeight int64         `json:"blockheight"`
	BlockTime   int64         `json:"blocktime"`
	Txid        string        `json:"txid"`
}

// IdentityState is the identity definition embedded in a history entry.
type IdentityState struct {
	Name            string `json:"name"`
	IdentityAddress string `json:"identityaddress"`
}

// AddressUTXOResult is one entry from `getaddressutxos`.
type AddressUTXOResult struct {
	Address     string `json:"address"`
	Txid        string `json:"txid"`
	OutputIndex uint32 `json:"outputIndex"`
	Satoshis    int64  `json:"satoshis"`
	Height      int64  `json:"height"`
}
