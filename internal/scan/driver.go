package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/stakewatch/stakewatch-backend/internal/chain"
	"github.com/stakewatch/stakewatch-backend/internal/clock"
	"github.com/stakewatch/stakewatch-backend/internal/model"
	mysqlrepo "github.com/stakewatch/stakewatch-backend/internal/repository/mysql"
	"github.com/stakewatch/stakewatch-backend/pkg/workerpool"
)

// Config tunes a Driver. Zero values fall back to defaults.
type Config struct {
	HistoricalFloor uint64
	BatchSize       int
	FetchWorkers    int
	RPCRatePerSec   int
	InterBatchDelay time.Duration
	ProgressEvery   time.Duration
	Reattribute     bool
	Backoff         BackoffPolicy
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.FetchWorkers <= 0 {
		c.FetchWorkers = 4
	}
	if c.RPCRatePerSec <= 0 {
		c.RPCRatePerSec = 20
	}
	if c.InterBatchDelay <= 0 {
		c.InterBatchDelay = time.Second
	}
	if c.ProgressEvery <= 0 {
		c.ProgressEvery = 15 * time.Second
	}
	if c.Backoff == (BackoffPolicy{}) {
		c.Backoff = DefaultBackoffPolicy()
	}
	return c
}

// Driver orchestrates one scan run: plan ranges from the derived
// checkpoint, sweep them in batches through a bounded fetch pool, persist
// in height order, and keep going past individual unreadable blocks.
type Driver struct {
	cfg     Config
	source  BlockSource
	store   RewardStore
	keeper  IdentityKeeper
	planner *Planner
	metrics Metrics
	tracker *Tracker
	logger  *zap.Logger
	rl      ratelimit.Limiter
	sleep   func(context.Context, time.Duration) error
}

// NewDriver builds a Driver with the given collaborators.
func NewDriver(
	cfg Config,
	source BlockSource,
	store RewardStore,
	keeper IdentityKeeper,
	metrics Metrics,
	tracker *Tracker,
	logger *zap.Logger,
) (*Driver, error) {
	if metrics == nil {
		return nil, errors.New("driver metrics is required")
	}
	if tracker == nil {
		tracker = NewTracker()
	}
	cfg = cfg.withDefaults()

	return &Driver{
		cfg:     cfg,
		source:  source,
		store:   store,
		keeper:  keeper,
		planner: NewPlanner(store, source, cfg.HistoricalFloor),
		metrics: metrics,
		tracker: tracker,
		logger:  logger,
		rl:      ratelimit.New(cfg.RPCRatePerSec),
		sleep:   clock.SleepWithContext,
	}, nil
}

// Tracker exposes the progress tracker for the admin surface.
func (d *Driver) Tracker() *Tracker {
	return d.tracker
}

// Run performs one full scan run and returns when the store covers
// [historical floor, tip] or the context is canceled. Re-entrant: a run
// over partially persisted data simply resumes from the computed ranges.
func (d *Driver) Run(ctx context.Context) error {
	started := time.Now()
	ranges, err := d.planner.NextRanges(ctx)
	d.metrics.ObservePlanRanges(err, started)
	if err != nil {
		return fmt.Errorf("plan ranges: %w", err)
	}

	var total uint64
	for _, r := range ranges {
		total += r.Count()
	}
	d.tracker.StartRun(total)

	if len(ranges) == 0 {
		d.logger.Info("store already covers floor to tip; nothing to scan")
		d.tracker.Finish(false)
		return nil
	}

	d.logger.Info("starting scan run",
		zap.Int("ranges", len(ranges)),
		zap.Uint64("heights", total))

	for _, r := range ranges {
		d.tracker.BeginRange(r)
		d.logger.Info("scanning range",
			zap.Uint64("start", r.Start),
			zap.Uint64("end", r.End))
		if err := d.scanRange(ctx, r); err != nil {
			if errors.Is(err, context.Canceled) {
				d.tracker.Stop()
			} else {
				d.tracker.Finish(true)
			}
			return err
		}
		d.tracker.RangeDone()
	}

	status := d.tracker.Snapshot()
	d.tracker.Finish(false)
	d.logger.Info("scan run complete",
		zap.Uint64("heights", status.HeightsDone),
		zap.Uint64("rewards_found", status.RewardsFound),
		zap.Uint64("rewards_inserted", status.RewardsInserted),
		zap.Int("skipped", len(status.Skipped)),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

func (d *Driver) scanRange(ctx context.Context, r Range) error {
	lastReport := time.Now()

	for start := r.Start; ; {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := start + uint64(d.cfg.BatchSize) - 1
		if end > r.End {
			end = r.End
		}
		heights := make([]uint64, 0, end-start+1)
		for h := start; h <= end; h++ {
			heights = append(heights, h)
		}

		batchStart := time.Now()
		err := d.processBatch(ctx, heights)
		d.metrics.ObserveProcessBatch(err, len(heights), batchStart)
		if err != nil {
			return err
		}

		if time.Since(lastReport) >= d.cfg.ProgressEvery {
			status := d.tracker.Snapshot()
			d.logger.Info("scan progress",
				zap.String("range", status.CurrentRange),
				zap.Uint64("heights_done", status.HeightsDone),
				zap.Uint64("heights_total", status.HeightsTotal),
				zap.Uint64("rewards_found", status.RewardsFound),
				zap.Float64("blocks_per_sec", status.BlocksPerSec),
				zap.String("eta", status.ETA))
			lastReport = time.Now()
		}

		if end == r.End {
			return nil
		}
		start = end + 1

		if err := d.sleep(ctx, d.cfg.InterBatchDelay); err != nil {
			return err
		}
	}
}

// processBatch fetches a batch of consecutive heights through the worker
// pool, then persists results strictly in height order. The unique key on
// (txid, output_index) makes out-of-order persistence safe, but in-order
// keeps progress and logs coherent.
func (d *Driver) processBatch(ctx context.Context, heights []uint64) error {
	blocks := make([]*model.ScannedBlock, len(heights))
	fetchErrs := make([]error, len(heights))

	indices := make([]int, len(heights))
	for i := range heights {
		indices[i] = i
	}

	err := workerpool.Process(ctx, d.cfg.FetchWorkers, indices, func(ctx context.Context, i int) error {
		block, fetchErr := d.fetchWithRetry(ctx, heights[i])
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Retry budget exhausted or permanent failure: the height is
			// skipped, not the run.
			fetchErrs[i] = fetchErr
			return nil
		}
		blocks[i] = block
		return nil
	}, nil)
	if err != nil {
		return err
	}

	for i, height := range heights {
		heightStart := time.Now()

		if fetchErrs[i] != nil {
			d.skipHeight(height, fetchErrs[i])
			d.metrics.ObserveProcessHeight(fetchErrs[i], height, heightStart)
			continue
		}

		// A graceful stop must not leave a half-applied block: the identity
		// and reward rows of the in-flight block are written even if the
		// run context was just canceled.
		inserted, perr := d.persistBlock(context.WithoutCancel(ctx), blocks[i])
		d.metrics.ObserveProcessHeight(perr, height, heightStart)
		if perr != nil {
			return fmt.Errorf("persist block %d: %w", height, perr)
		}

		d.tracker.HeightDone(uint64(len(blocks[i].Rewards)), uint64(inserted))
		d.metrics.AddRewards(len(blocks[i].Rewards))

		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) fetchWithRetry(ctx context.Context, height uint64) (*model.ScannedBlock, error) {
	var block *model.ScannedBlock

	err := backoff.Retry(func() error {
		d.rl.Take()
		b, err := d.source.FetchBlock(ctx, height)
		if err != nil {
			if chain.IsTransient(err) {
				d.logger.Debug("transient fetch failure, retrying",
					zap.Uint64("height", height), zap.Error(err))
				return err
			}
			return backoff.Permanent(err)
		}
		block = b
		return nil
	}, backoff.WithContext(d.cfg.Backoff.newBackOff(), ctx))
	if err != nil {
		return nil, err
	}
	return block, nil
}

// persistBlock applies one block as a unit of work: identity stubs first,
// reward rows second. A foreign-key miss forces one more stub upsert and a
// single retry before the block fails the run.
func (d *Driver) persistBlock(ctx context.Context, block *model.ScannedBlock) (int64, error) {
	if len(block.Rewards) == 0 {
		return 0, nil
	}

	addresses := uniqueAddresses(block.Rewards)
	if err := d.keeper.EnsureExists(ctx, addresses); err != nil {
		return 0, err
	}

	inserted, err := d.upsert(ctx, block.Rewards)
	if errors.Is(err, mysqlrepo.ErrIdentityMissing) {
		d.logger.Warn("identity rows missing on reward upsert, forcing creation and retrying",
			zap.Uint64("height", block.Height))
		if ensureErr := d.keeper.EnsureExists(ctx, addresses); ensureErr != nil {
			return 0, ensureErr
		}
		inserted, err = d.upsert(ctx, block.Rewards)
	}
	if err != nil {
		return 0, err
	}

	for _, addr := range addresses {
		d.keeper.Enrich(ctx, addr)
	}
	return inserted, nil
}

func (d *Driver) upsert(ctx context.Context, rewards []model.StakeReward) (int64, error) {
	if d.cfg.Reattribute {
		return d.store.ReattributeRewards(ctx, rewards)
	}
	return d.store.UpsertRewards(ctx, rewards)
}

func (d *Driver) skipHeight(height uint64, err error) {
	d.tracker.Skip(height, err)
	d.metrics.IncSkippedHeights()
	d.logger.Warn("skipping unreadable block",
		zap.Uint64("height", height),
		zap.Error(err))
}

func uniqueAddresses(rewards []model.StakeReward) []string {
	seen := make(map[string]struct{}, len(rewards))
	addresses := make([]string, 0, len(rewards))
	for _, reward := range rewards {
		if _, ok := seen[reward.IdentityAddress]; ok {
			continue
		}
		seen[reward.IdentityAddress] = struct{}{}
		addresses = append(addresses, reward.IdentityAddress)
	}
	return addresses
}
