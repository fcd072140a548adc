package scan

import (
	"context"
	"fmt"
)

// Range is an inclusive span of block heights.
type Range struct {
	Start uint64
	End   uint64
}

// Count returns the number of heights in the range.
func (r Range) Count() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}

// Planner computes the next ranges to scan from the derived checkpoint:
// the min/max heights already persisted versus the historical floor and the
// current chain tip.
type Planner struct {
	store  RewardStore
	source BlockSource
	floor  uint64
}

// NewPlanner creates a Planner. floor is the earliest height at which
// staking rewards and identities exist on the chain.
func NewPlanner(store RewardStore, source BlockSource, floor uint64) *Planner {
	return &Planner{store: store, source: source, floor: floor}
}

// NextRanges returns the ordered ranges a run must cover. The leading gap
// (historical backfill below the stored minimum) always comes before the
// trailing gap (stored maximum to tip), so backfill completes before tip
// chasing and the target cannot recede indefinitely.
func (p *Planner) NextRanges(ctx context.Context) ([]Range, error) {
	tip, err := p.source.LatestHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest height: %w", err)
	}
	if tip < p.floor {
		return nil, nil
	}

	minHeight, maxHeight, exists, err := p.store.RewardHeightBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("reward height bounds: %w", err)
	}

	if !exists {
		return []Range{{Start: p.floor, End: tip}}, nil
	}

	var ranges []Range
	if minHeight > p.floor {
		ranges = append(ranges, Range{Start: p.floor, End: minHeight - 1})
	}
	if maxHeight < tip {
		ranges = append(ranges, Range{Start: maxHeight + 1, End: tip})
	}
	return ranges, nil
}
