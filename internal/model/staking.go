// Package model defines domain models for staking-reward indexing.
package model

import "time"

// BlockKind describes how a block was validated.
type BlockKind string

var (
	// BlockPoS marks a proof-of-stake block.
	BlockPoS BlockKind = "pos"
	// BlockPoW marks a proof-of-work block.
	BlockPoW BlockKind = "pow"
)

// ClassifierStakeReward tags reward rows produced by coinstake extraction.
const ClassifierStakeReward = "stake_reward"

// StakeReward is one payout observed in one PoS block.
// (TxID, OutputIndex) is globally unique in the store.
type StakeReward struct {
	IdentityAddress string
	TxID            string
	OutputIndex     uint32
	BlockHeight     uint64
	BlockHash       string
	BlockTime       time.Time
	AmountSats      uint64
	Classifier      string
	SourceAddress   string
}

// Identity is an on-chain named identity, keyed by address. A stub row has
// an empty BaseName and nil creation fields until enrichment fills them in.
type Identity struct {
	IdentityAddress     string
	BaseName            string
	CreationBlockHeight *uint64
	CreationTxID        *string
	CreationTime        *time.Time
	LastRefreshedAt     time.Time
}

// IdentityCreation carries the creation record resolved from identity history.
type IdentityCreation struct {
	IdentityAddress string
	BaseName        string
	BlockHeight     uint64
	TxID            string
	BlockTime       time.Time
}

// ScannedBlock is the classified, extracted view of one chain block.
type ScannedBlock struct {
	Height  uint64
	Hash    string
	Time    time.Time
	Kind    BlockKind
	Rewards []StakeReward
}

// AddressUTXO is one row of the eligibility projection: a currently known
// output of an identity address, with maturity and cooldown state.
type AddressUTXO struct {
	IdentityAddress     string
	TxID                string
	OutputIndex         uint32
	AmountSats          uint64
	CreationHeight      uint64
	IsSpent             bool
	IsEligible          bool
	CooldownUntilHeight uint64
	LastSeenAt          time.Time
}
