// Package identity keeps the identity catalog consistent with what the
// scanner observes on chain.
package identity

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the identity persistence surface.
	Store interface {
		EnsureIdentities(ctx context.Context, addresses []string) error
		SetIdentityCreation(ctx context.Context, creation model.IdentityCreation) error
	}

	// CreationSource resolves creation records from the chain.
	CreationSource interface {
		IdentityCreation(ctx context.Context, address string) (*model.IdentityCreation, error)
	}

	// Metrics records metrics for enrichment calls.
	Metrics interface {
		ObserveEnrich(err error, started time.Time)
	}
)

// Resolver upserts identity stubs and enriches them with creation metadata
// resolved from identity history. Enrichment is best effort: any failure is
// logged and swallowed, because reward correctness never depends on a
// resolved name or creation date.
type Resolver struct {
	store   Store
	source  CreationSource
	metrics Metrics
	logger  *zap.Logger

	mu       sync.Mutex
	enriched map[string]struct{}
}

// NewResolver creates a Resolver.
func NewResolver(store Store, source CreationSource, metrics Metrics, logger *zap.Logger) *Resolver {
	return &Resolver{
		store:    store,
		source:   source,
		metrics:  metrics,
		logger:   logger,
		enriched: make(map[string]struct{}),
	}
}

// EnsureExists idempotently upserts stub rows for the addresses.
func (r *Resolver) EnsureExists(ctx context.Context, addresses []string) error {
	return r.store.EnsureIdentities(ctx, addresses)
}

// Enrich resolves and persists the creation record for an address. Each
// address is attempted at most once per process; failures only log.
func (r *Resolver) Enrich(ctx context.Context, address string) {
	r.mu.Lock()
	if _, done := r.enriched[address]; done {
		r.mu.Unlock()
		return
	}
	r.enriched[address] = struct{}{}
	r.mu.Unlock()

	started := time.Now()
	err := r.enrich(ctx, address)
	if r.metrics != nil {
		r.metrics.ObserveEnrich(err, started)
	}
	if err != nil {
		r.logger.Warn("identity enrichment failed",
			zap.String("address", address),
			zap.Error(err))
	}
}

func (r *Resolver) enrich(ctx context.Context, address string) error {
	creation, err := r.source.IdentityCreation(ctx, address)
	if err != nil {
		return err
	}
	return r.store.SetIdentityCreation(ctx, *creation)
}
