// Command utxo-refresher periodically rebuilds the UTXO eligibility
// projection for every known identity address.
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

	"github.com/stakewatch/stakewatch-backend/internal/eligibility"
	"github.com/stakewatch/stakewatch-backend/internal/metrics"
	mysqlrepo "github.com/stakewatch/stakewatch-backend/internal/repository/mysql"
	"github.com/stakewatch/stakewatch-backend/internal/verus"
)

type config struct {
	MySQLDSN         string        `long:"mysql-dsn" env:"UTXO_REFRESHER_MYSQL_DSN" description:"MySQL DSN"`
	RPCURL           string        `long:"rpc-url" env:"UTXO_REFRESHER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:27486"`
	RPCUser          string        `long:"rpc-user" env:"UTXO_REFRESHER_RPC_USER" description:"node RPC username"`
	RPCPassword      string        `long:"rpc-password" env:"UTXO_REFRESHER_RPC_PASSWORD" description:"node RPC password"`
	Interval         time.Duration `long:"interval" env:"UTXO_REFRESHER_INTERVAL" description:"time between refresh passes" default:"10m"`
	MinConfirmations uint64        `long:"min-confirmations" env:"UTXO_REFRESHER_MIN_CONFIRMATIONS" description:"confirmations before a UTXO is stake-eligible" default:"150"`
	CooldownBlocks   uint64        `long:"cooldown-blocks" env:"UTXO_REFRESHER_COOLDOWN_BLOCKS" description:"blocks a fresh UTXO waits before staking" default:"150"`
	Workers          int           `long:"workers" env:"UTXO_REFRESHER_WORKERS" description:"parallel address fetches" default:"4"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("utxo refresher failed", zap.Error(err))
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

	source := verus.NewStakeSource(client, verus.NewRewardExtractor(nil, false))

	refresher, err := eligibility.NewRefresher(
		eligibility.Config{
			Interval:         cfg.Interval,
			MinConfirmations: cfg.MinConfirmations,
			CooldownBlocks:   cfg.CooldownBlocks,
			Workers:          cfg.Workers,
		},
		source,
		repo,
		metrics.Eligibility{},
		logger.Named("eligibility"),
	)
	if err != nil {
		return err
	}
	return refresher.Run(ctx)
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
