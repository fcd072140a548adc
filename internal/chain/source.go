package chain

import (
	"context"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

// BlockSource provides classified, reward-extracted blocks for scanning.
type BlockSource interface {
	LatestHeight(ctx context.Context) (uint64, error)
	FetchBlock(ctx context.Context, height uint64) (*model.ScannedBlock, error)
}

// IdentitySource resolves identity creation records from the node.
type IdentitySource interface {
	IdentityCreation(ctx context.Context, address string) (*model.IdentityCreation, error)
}

// UTXOSource lists the current unspent outputs of an address.
type UTXOSource interface {
	AddressUTXOs(ctx context.Context, address string) ([]model.AddressUTXO, error)
}
