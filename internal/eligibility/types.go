// Package eligibility maintains the per-address UTXO projection used to
// judge staking readiness: maturity, spentness, and cooldown.
package eligibility

import (
	"context"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// UTXOSource provides the chain tip and per-address unspent outputs.
	UTXOSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		AddressUTXOs(ctx context.Context, address string) ([]model.AddressUTXO, error)
	}

	// ProjectionStore is the persistence surface for the projection.
	ProjectionStore interface {
		IdentityAddresses(ctx context.Context) ([]string, error)
		UpsertAddressUTXOs(ctx context.Context, utxos []model.AddressUTXO) error
		MarkSpentBefore(ctx context.Context, address string, cutoff time.Time) error
	}

	// Metrics records metrics for refresh passes.
	Metrics interface {
		ObserveRefresh(err error, addresses int, started time.Time)
		ObserveAddress(err error, started time.Time)
	}
)
