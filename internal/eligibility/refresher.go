package eligibility

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stakewatch/stakewatch-backend/internal/clock"
	"github.com/stakewatch/stakewatch-backend/internal/model"
	"github.com/stakewatch/stakewatch-backend/pkg/batcher"
	"github.com/stakewatch/stakewatch-backend/pkg/workerpool"
)

// Config tunes the Refresher. Zero values fall back to defaults.
type Config struct {
	Interval         time.Duration
	MinConfirmations uint64
	CooldownBlocks   uint64
	Workers          int
	FlushSize        int
	FlushInterval    time.Duration
	FlushRatePerSec  int
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = 10 * time.Minute
	}
	if c.MinConfirmations == 0 {
		c.MinConfirmations = 150
	}
	if c.CooldownBlocks == 0 {
		c.CooldownBlocks = 150
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.FlushSize <= 0 {
		c.FlushSize = 500
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = 5 * time.Second
	}
	if c.FlushRatePerSec <= 0 {
		c.FlushRatePerSec = 10
	}
	return c
}

// Refresher periodically rebuilds the eligibility projection: for every
// known identity it snapshots the current UTXOs, recomputes maturity and
// cooldown against the tip, and marks rows absent from the snapshot spent.
type Refresher struct {
	cfg     Config
	source  UTXOSource
	store   ProjectionStore
	metrics Metrics
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
}

// NewRefresher builds a Refresher.
func NewRefresher(cfg Config, source UTXOSource, store ProjectionStore, metrics Metrics, logger *zap.Logger) (*Refresher, error) {
	if metrics == nil {
		return nil, errors.New("refresher metrics is required")
	}
	return &Refresher{
		cfg:     cfg.withDefaults(),
		source:  source,
		store:   store,
		metrics: metrics,
		logger:  logger,
		sleep:   clock.SleepWithContext,
	}, nil
}

// Run refreshes the projection on the configured interval until the
// context is canceled. A failed pass logs and waits for the next tick.
func (r *Refresher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.RefreshOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("refresh pass failed", zap.Error(err))
		}
		if err := r.sleep(ctx, r.cfg.Interval); err != nil {
			return err
		}
	}
}

// RefreshOnce performs a single projection pass.
func (r *Refresher) RefreshOnce(ctx context.Context) (err error) {
	started := time.Now()
	// last_seen_at is stored at whole-second resolution, so the stamp and
	// the spent-marking bound must share one truncated value. A fractional
	// cutoff would order after its own rounded stamp and mark the fresh
	// snapshot spent.
	cutoff := started.UTC().Truncate(time.Second)

	addresses, tip, err := r.prepare(ctx)
	defer func() {
		r.metrics.ObserveRefresh(err, len(addresses), started)
	}()
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return nil
	}

	var mu sync.Mutex
	failed := make(map[string]struct{})

	flush := batcher.New[model.AddressUTXO](
		r.logger.Named("utxoBatcher"),
		func(ctx context.Context, utxos []model.AddressUTXO) error {
			upsertErr := r.store.UpsertAddressUTXOs(ctx, utxos)
			if upsertErr != nil {
				// A dropped batch leaves stale last_seen_at stamps behind;
				// its addresses must not be spent-marked this pass.
				mu.Lock()
				for _, utxo := range utxos {
					failed[utxo.IdentityAddress] = struct{}{}
				}
				mu.Unlock()
			}
			return upsertErr
		},
		r.cfg.FlushSize,
		r.cfg.FlushInterval,
		r.cfg.FlushRatePerSec,
	)
	flush.Start(ctx)

	poolErr := workerpool.Process(ctx, r.cfg.Workers, addresses, func(ctx context.Context, address string) error {
		addrStarted := time.Now()
		utxos, fetchErr := r.source.AddressUTXOs(ctx, address)
		r.metrics.ObserveAddress(fetchErr, addrStarted)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// One unreadable address must not abort the pass, but its rows
			// must not be marked spent from a snapshot we never took.
			mu.Lock()
			failed[address] = struct{}{}
			mu.Unlock()
			r.logger.Warn("address utxo fetch failed",
				zap.String("address", address),
				zap.Error(fetchErr))
			return nil
		}

		for _, utxo := range utxos {
			utxo.IsSpent = false
			utxo.IsEligible = utxo.CreationHeight+r.cfg.MinConfirmations <= tip
			utxo.CooldownUntilHeight = utxo.CreationHeight + r.cfg.CooldownBlocks
			utxo.LastSeenAt = cutoff
			if addErr := flush.Add(ctx, utxo); addErr != nil {
				return addErr
			}
		}
		return nil
	}, nil)

	// Stop flushes whatever is buffered before spent-marking below.
	flush.Stop()
	if poolErr != nil {
		return poolErr
	}

	for _, address := range addresses {
		if _, skip := failed[address]; skip {
			continue
		}
		if err = r.store.MarkSpentBefore(ctx, address, cutoff); err != nil {
			return err
		}
	}

	r.logger.Info("eligibility projection refreshed",
		zap.Int("addresses", len(addresses)),
		zap.Int("failed_addresses", len(failed)),
		zap.Uint64("tip", tip),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

func (r *Refresher) prepare(ctx context.Context) ([]string, uint64, error) {
	tip, err := r.source.LatestHeight(ctx)
	if err != nil {
		return nil, 0, err
	}
	addresses, err := r.store.IdentityAddresses(ctx)
	if err != nil {
		return nil, 0, err
	}
	return addresses, tip, nil
}
