// Command scanner runs one staking-reward scan over the chain: it resumes
// from the derived checkpoint, closes the historical backfill gap, chases
// the tip, and exits. SIGINT/SIGTERM or POST /stop on the admin endpoint
// request a graceful stop that completes the in-flight block.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/stakewatch/stakewatch-backend/internal/admin"
	"github.com/stakewatch/stakewatch-backend/internal/identity"
	"github.com/stakewatch/stakewatch-backend/internal/metrics"
	mysqlrepo "github.com/stakewatch/stakewatch-backend/internal/repository/mysql"
	"github.com/stakewatch/stakewatch-backend/internal/scan"
	"github.com/stakewatch/stakewatch-backend/internal/verus"
)

type config struct {
	MySQLDSN          string        `long:"mysql-dsn" env:"SCANNER_MYSQL_DSN" description:"MySQL DSN"`
	RPCURL            string        `long:"rpc-url" env:"SCANNER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:27486"`
	RPCUser           string        `long:"rpc-user" env:"SCANNER_RPC_USER" description:"node RPC username"`
	RPCPassword       string        `long:"rpc-password" env:"SCANNER_RPC_PASSWORD" description:"node RPC password"`
	AdminAddr         string        `long:"admin-addr" env:"SCANNER_ADMIN_ADDR" description:"admin HTTP listen address" default:":8080"`
	HistoricalFloor   uint64        `long:"historical-floor" env:"SCANNER_HISTORICAL_FLOOR" description:"earliest height with identities and staking" default:"800200"`
	BatchSize         int           `long:"batch-size" env:"SCANNER_BATCH_SIZE" description:"heights per batch" default:"100"`
	FetchWorkers      int           `long:"fetch-workers" env:"SCANNER_FETCH_WORKERS" description:"parallel block fetches" default:"4"`
	RPCRatePerSec     int           `long:"rpc-rate" env:"SCANNER_RPC_RATE" description:"RPC calls per second" default:"20"`
	InterBatchDelay   time.Duration `long:"inter-batch-delay" env:"SCANNER_INTER_BATCH_DELAY" description:"pause between batches" default:"1s"`
	MaxRetries        uint64        `long:"max-retries" env:"SCANNER_MAX_RETRIES" description:"per-block retry budget for transient RPC failures" default:"4"`
	ExcludedAddresses []string      `long:"excluded-address" env:"SCANNER_EXCLUDED_ADDRESSES" env-delim:"," description:"consensus addresses never attributed rewards"`
	ExtractAllOutputs bool          `long:"extract-all-outputs" env:"SCANNER_EXTRACT_ALL_OUTPUTS" description:"extract rewards from every coinstake output instead of the first"`
	Reattribute       bool          `long:"reattribute" env:"SCANNER_REATTRIBUTE" description:"correction mode: overwrite attribution of existing reward rows"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.MySQLDSN == "" {
		logger.Fatal("MySQL DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("scanner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := mysqlrepo.New(cfg.MySQLDSN, metrics.Repository{})
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository", zap.Error(closeErr))
		}
	}()

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	client := verus.NewClient(rpc, metrics.RPCClient{})
	defer client.Shutdown()

	extractor := verus.NewRewardExtractor(cfg.ExcludedAddresses, cfg.ExtractAllOutputs)
	source := verus.NewStakeSource(client, extractor)
	resolver := identity.NewResolver(repo, source, metrics.Identity{}, logger.Named("identity"))

	backoffPolicy := scan.DefaultBackoffPolicy()
	backoffPolicy.MaxRetries = cfg.MaxRetries

	driver, err := scan.NewDriver(
		scan.Config{
			HistoricalFloor: cfg.HistoricalFloor,
			BatchSize:       cfg.BatchSize,
			FetchWorkers:    cfg.FetchWorkers,
			RPCRatePerSec:   cfg.RPCRatePerSec,
			InterBatchDelay: cfg.InterBatchDelay,
			Reattribute:     cfg.Reattribute,
			Backoff:         backoffPolicy,
		},
		source,
		repo,
		resolver,
		metrics.Scanner{},
		scan.NewTracker(),
		logger.Named("scanner"),
	)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	adminSrv := admin.NewServer(cfg.AdminAddr, driver.Tracker().Snapshot, cancel, logger.Named("admin"))
	adminErr := make(chan error, 1)
	go func() {
		adminErr <- adminSrv.Run(runCtx)
	}()

	err = driver.Run(runCtx)
	cancel()
	if serveErr := <-adminErr; serveErr != nil {
		logger.Error("admin server failed", zap.Error(serveErr))
	}

	if errors.Is(err, context.Canceled) {
		logger.Info("scan stopped cleanly")
		return nil
	}
	return err
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(connCfg, nil)
}
