package verus

import "github.com/stakewatch/stakewatch-backend/internal/model"

const (
	validationStake = "stake"
	validationWork  = "work"
)

// Classify decides whether a block is proof-of-stake or proof-of-work.
//
// The node-reported validation type is the primary signal. Older nodes and
// lower RPC verbosity levels omit it, so when the field is absent the block
// is treated as PoS only if its first transaction is coinstake-shaped (has
// at least one output) and the header names a stake-reward destination.
// Anything else is PoW.
func Classify(b *VerboseBlock) model.BlockKind {
	switch b.ValidationType {
	case validationStake:
		return model.BlockPoS
	case validationWork:
		return model.BlockPoW
	}

	if len(b.Tx) == 0 {
		return model.BlockPoW
	}
	if len(b.Tx[0].Vout) > 0 && b.PosRewardDest != "" {
		return model.BlockPoS
	}
	return model.BlockPoW
}
