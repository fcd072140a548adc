// Package scan implements the scan driver: range planning over the derived
// checkpoint, batched rate-limited block sweeps, and bounded per-block
// retry with skip accounting.
package scan

import (
	"context"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource provides classified, reward-extracted blocks.
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.ScannedBlock, error)
	}

	// RewardStore is the persistence surface the driver writes through.
	RewardStore interface {
		UpsertRewards(ctx context.Context, rewards []model.StakeReward) (int64, error)
		ReattributeRewards(ctx context.Context, rewards []model.StakeReward) (int64, error)
		RewardHeightBounds(ctx context.Context) (minHeight, maxHeight uint64, exists bool, err error)
	}

	// IdentityKeeper guarantees identity rows exist before rewards reference
	// them, and enriches stubs on a best-effort basis.
	IdentityKeeper interface {
		EnsureExists(ctx context.Context, addresses []string) error
		Enrich(ctx context.Context, address string)
	}

	// Metrics records metrics for driver activity.
	Metrics interface {
		ObservePlanRanges(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64, started time.Time)
		AddRewards(count int)
		IncSkippedHeights()
	}
)
